// Package fetch downloads question sets from remote generator endpoints.
// The first record is kept next to the archive as a plain JSON sample for
// quick inspection; the rest is zipped. Endpoints are slow one-shot
// generators, so downloads carry a generous timeout and no retries.
package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrBadStatus reports a non-2xx response from the endpoint.
type ErrBadStatus struct {
	StatusCode int
	URL        string
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("fetch: unexpected status %d for %s", e.StatusCode, e.URL)
}

// Source names one remote question set, parsed out of its URL. The fields
// become the stem of the files written for the set.
type Source struct {
	Name       string // last path segment
	Difficulty string // difficulty query parameter, may be empty
	Topic      string // topic query parameter, may be empty
}

var (
	sourceNameRe = regexp.MustCompile(`/([^/?#]+)(?:[?#]|$)`)
	difficultyRe = regexp.MustCompile(`[?&]difficulty=([^&#]*)`)
	topicRe      = regexp.MustCompile(`[?&]topic=([^&#]*)`)
	unsafeRe     = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// ParseSource extracts the set name and the difficulty and topic parameters
// from rawURL. Values are unescaped and reduced to filename-safe characters.
func ParseSource(rawURL string) (Source, error) {
	m := sourceNameRe.FindStringSubmatch(rawURL)
	if m == nil {
		return Source{}, fmt.Errorf("fetch: no set name in URL %q", rawURL)
	}
	src := Source{Name: cleanPart(m[1])}
	if m := difficultyRe.FindStringSubmatch(rawURL); m != nil {
		src.Difficulty = cleanPart(m[1])
	}
	if m := topicRe.FindStringSubmatch(rawURL); m != nil {
		src.Topic = cleanPart(m[1])
	}
	if src.Name == "" {
		return Source{}, fmt.Errorf("fetch: no set name in URL %q", rawURL)
	}
	return src, nil
}

func cleanPart(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		s = unescaped
	}
	return strings.Trim(unsafeRe.ReplaceAllString(s, "_"), "_")
}

func (s Source) stem() string {
	parts := []string{s.Name}
	if s.Difficulty != "" {
		parts = append(parts, s.Difficulty)
	}
	if s.Topic != "" {
		parts = append(parts, s.Topic)
	}
	return strings.Join(parts, "_")
}

// SampleFile is the filename of the standalone first record.
func (s Source) SampleFile() string { return s.stem() + "_first_response.json" }

// ArchiveFile is the filename of the zipped remainder.
func (s Source) ArchiveFile() string { return s.stem() + "_remaining_responses.zip" }

// archiveEntry is the name of the JSON file inside the zip.
const archiveEntry = "remaining_responses.json"

// Result reports what one fetch produced.
type Result struct {
	Source      Source
	Checksum    string // sha256 of the raw payload, hex encoded
	Records     int
	SamplePath  string
	ArchivePath string
}

// Fetcher downloads question sets.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// New returns a Fetcher using client for its requests. A nil client gets a
// sixty second timeout, sized for the slowest generator endpoints.
func New(client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{client: client, logger: logger}
}

// Fetch downloads the question set at rawURL into outDir: the first record
// as <stem>_first_response.json and the remainder zipped as
// <stem>_remaining_responses.zip. The payload must be a JSON array with at
// least one record.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, outDir string) (*Result, error) {
	src, err := ParseSource(rawURL)
	if err != nil {
		return nil, err
	}

	payload, err := f.download(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(payload)
	checksum := hex.EncodeToString(sum[:])
	f.logger.Info("question set downloaded",
		zap.String("url", rawURL),
		zap.Int("bytes", len(payload)),
		zap.String("sha256", checksum),
	)

	var records []json.RawMessage
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("fetch: parse response: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("fetch: endpoint returned an empty question set")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("fetch: create output dir: %w", err)
	}

	samplePath := filepath.Join(outDir, src.SampleFile())
	sample, err := json.MarshalIndent(records[0], "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fetch: marshal sample: %w", err)
	}
	if err := os.WriteFile(samplePath, append(sample, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("fetch: write sample: %w", err)
	}

	archivePath := filepath.Join(outDir, src.ArchiveFile())
	if err := writeArchive(archivePath, records[1:]); err != nil {
		return nil, err
	}

	f.logger.Info("question set archived",
		zap.String("sample", samplePath),
		zap.String("archive", archivePath),
		zap.Int("records", len(records)),
	)
	return &Result{
		Source:      src,
		Checksum:    checksum,
		Records:     len(records),
		SamplePath:  samplePath,
		ArchivePath: archivePath,
	}, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrBadStatus{StatusCode: resp.StatusCode, URL: rawURL}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: read response: %w", err)
	}
	return data, nil
}

// writeArchive zips the remaining records as one JSON entry. An exhausted
// set still gets an archive holding an empty array, so downstream tooling
// can treat every fetch uniformly.
func writeArchive(path string, remaining []json.RawMessage) error {
	data, err := json.MarshalIndent(remaining, "", "  ")
	if err != nil {
		return fmt.Errorf("fetch: marshal remainder: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(archiveEntry)
	if err != nil {
		return fmt.Errorf("fetch: create archive entry: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("fetch: write archive entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("fetch: close archive: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("fetch: write archive: %w", err)
	}
	return nil
}
