package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Save writes records as indented JSON, creating parent directories as
// needed. An empty slice writes an empty JSON array.
func Save(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("manifest: create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}

// Load reads one manifest file. A file holding a single record object
// instead of an array loads as a one-element set.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		var single Record
		if objErr := json.Unmarshal(data, &single); objErr != nil {
			return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
		}
		records = []Record{single}
	}
	return records, nil
}

// LoadDir merges every *.json manifest in dir, in filename order.
func LoadDir(dir string) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("manifest: glob %s: %w", dir, err)
	}
	sort.Strings(paths)
	var merged []Record
	for _, p := range paths {
		records, err := Load(p)
		if err != nil {
			return nil, err
		}
		merged = append(merged, records...)
	}
	return merged, nil
}

// Stats summarizes a record set for reporting.
type Stats struct {
	Total        int
	ByDifficulty map[string]int
	ByShape      map[string]int
	ByKind       map[string]int
}

// Summarize counts records per difficulty, shape and kind.
func Summarize(records []Record) Stats {
	s := Stats{
		Total:        len(records),
		ByDifficulty: map[string]int{},
		ByShape:      map[string]int{},
		ByKind:       map[string]int{},
	}
	for _, r := range records {
		s.ByDifficulty[string(r.Difficulty)]++
		s.ByShape[string(r.Shape)]++
		s.ByKind[string(r.Kind)]++
	}
	return s
}
