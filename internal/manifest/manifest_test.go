package manifest

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
)

func sampleRecord() Record {
	return Record{
		Question: "What is the area of the given shape?",
		Options: map[string]string{
			"A": "21", "B": "25", "C": "28", "D": "30", "E": "19",
		},
		Answer:     "B",
		Difficulty: geometry.TierEasy,
		Image:      "images/easy/Q0.png",
		Shape:      geometry.ShapeSquare,
		Kind:       geometry.KindArea,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "questions.json")
	want := []Record{sampleRecord()}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("loaded %d records", len(got))
	}
	if got[0].Answer != "B" || got[0].Options["B"] != "25" {
		t.Errorf("round trip mangled the record: %+v", got[0])
	}
}

func TestSave_EmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty manifest = %q, want []", data)
	}
}

func TestSave_OptionsKeysSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	if err := Save(path, []Record{sampleRecord()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	text := string(data)
	last := -1
	for _, label := range []string{`"A"`, `"B"`, `"C"`, `"D"`, `"E"`} {
		idx := strings.Index(text, label)
		if idx < 0 {
			t.Fatalf("label %s missing from output", label)
		}
		if idx < last {
			t.Errorf("label %s out of order", label)
		}
		last = idx
	}
}

func TestLoadDir_MergesInFilenameOrder(t *testing.T) {
	dir := t.TempDir()
	first := sampleRecord()
	second := sampleRecord()
	second.Question = "What is the perimeter of the given shape?"
	second.Kind = geometry.KindPerimeter

	if err := Save(filepath.Join(dir, "a.json"), []Record{first}); err != nil {
		t.Fatalf("Save a: %v", err)
	}
	if err := Save(filepath.Join(dir, "b.json"), []Record{second}); err != nil {
		t.Fatalf("Save b: %v", err)
	}

	got, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("merged %d records, want 2", len(got))
	}
	if got[0].Kind != geometry.KindArea || got[1].Kind != geometry.KindPerimeter {
		t.Errorf("merge order wrong: %s then %s", got[0].Kind, got[1].Kind)
	}
}

func TestLoad_SingleObjectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	body := `{
  "question": "What is the area of the given shape?",
  "options": {"A": "21", "B": "25", "C": "28", "D": "30", "E": "19"},
  "answer": "B",
  "difficulty": "easy",
  "image": "images/easy/Q0.png",
  "shape": "square",
  "kind": "area"
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Answer != "B" {
		t.Errorf("single object load: %+v", got)
	}
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFromQuestion(t *testing.T) {
	eng := quizgen.New(quizgen.DefaultConfig())
	q, err := eng.Generate(rand.New(rand.NewSource(3)), quizgen.GenerateInput{
		Shape: geometry.ShapeCircle, Tier: geometry.TierMedium, Kind: geometry.KindArea,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := FromQuestion(q, "images/medium/Q7.png")
	if r.Question != q.Text {
		t.Errorf("question text diverged")
	}
	if r.Answer != q.CorrectLabel {
		t.Errorf("answer = %q, want label %q", r.Answer, q.CorrectLabel)
	}
	if len(r.Options) != 5 {
		t.Errorf("got %d options", len(r.Options))
	}
	if r.Image != "images/medium/Q7.png" {
		t.Errorf("image = %q", r.Image)
	}
	value, ok := r.CorrectValue()
	if !ok {
		t.Fatal("answer label does not resolve")
	}
	want, _ := q.OptionValue(q.CorrectLabel)
	if value != want {
		t.Errorf("correct value %q, want %q", value, want)
	}
}

func TestSummarize(t *testing.T) {
	records := []Record{sampleRecord(), sampleRecord()}
	records[1].Difficulty = geometry.TierMedium
	records[1].Shape = geometry.ShapeCircle
	records[1].Kind = geometry.KindPerimeter

	s := Summarize(records)
	if s.Total != 2 {
		t.Errorf("total = %d", s.Total)
	}
	if s.ByDifficulty["easy"] != 1 || s.ByDifficulty["medium"] != 1 {
		t.Errorf("difficulty counts %+v", s.ByDifficulty)
	}
	if s.ByShape["square"] != 1 || s.ByShape["circle"] != 1 {
		t.Errorf("shape counts %+v", s.ByShape)
	}
	if s.ByKind["area"] != 1 || s.ByKind["perimeter"] != 1 {
		t.Errorf("kind counts %+v", s.ByKind)
	}
}
