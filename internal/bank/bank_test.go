package bank

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bank.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeRecord(text string, tier geometry.Tier, shape geometry.Shape, kind geometry.Kind, image string) manifest.Record {
	return manifest.Record{
		Question: text,
		Options: map[string]string{
			"A": "21", "B": "25", "C": "28", "D": "30", "E": "19",
		},
		Answer:     "B",
		Difficulty: tier,
		Image:      image,
		Shape:      shape,
		Kind:       kind,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionImport_SkipsDuplicates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := []manifest.Record{
		makeRecord("What is the area of the given shape?",
			geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "images/easy/Q1.png"),
		makeRecord("What is the perimeter of the given shape?",
			geometry.TierMedium, geometry.ShapeCircle, geometry.KindPerimeter, "images/medium/Q2.png"),
	}

	added, dups, err := s.Questions().Import(ctx, records, 0)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 2 || dups != 0 {
		t.Errorf("first import added=%d dups=%d", added, dups)
	}

	added, dups, err = s.Questions().Import(ctx, records, 0)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if added != 0 || dups != 2 {
		t.Errorf("re-import added=%d dups=%d", added, dups)
	}

	n, err := s.Questions().Count(ctx, Filter{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("bank holds %d questions, want 2", n)
	}
}

func TestRecordOf_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := makeRecord("How many lines of symmetry does this shape contain?",
		geometry.TierMedium, geometry.ShapeHexagon, geometry.KindSymmetry, "images/medium/Q4.png")

	if _, _, err := s.Questions().Import(ctx, []manifest.Record{rec}, 0); err != nil {
		t.Fatalf("Import: %v", err)
	}
	stored, err := s.Questions().List(ctx, Filter{}, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("List returned %d questions, want 1", len(stored))
	}

	got := RecordOf(stored[0])
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("RecordOf round trip mismatch:\ngot  %+v\nwant %+v", got, rec)
	}
}

func TestQuestionImport_RejectsIncompleteOptions(t *testing.T) {
	s := openTestStore(t)
	rec := makeRecord("Broken", geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "x.png")
	delete(rec.Options, "E")
	if _, _, err := s.Questions().Import(context.Background(), []manifest.Record{rec}, 0); err == nil {
		t.Fatal("expected an error for a missing option")
	}
}

func TestQuestionList_FilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := []manifest.Record{
		makeRecord("q1", geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "i1.png"),
		makeRecord("q2", geometry.TierEasy, geometry.ShapeCircle, geometry.KindArea, "i2.png"),
		makeRecord("q3", geometry.TierDifficult, geometry.ShapeSquare, geometry.KindSymmetry, "i3.png"),
	}
	if _, _, err := s.Questions().Import(ctx, records, 0); err != nil {
		t.Fatalf("Import: %v", err)
	}

	easy, err := s.Questions().List(ctx, Filter{Difficulty: "easy"}, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(easy) != 2 {
		t.Errorf("easy filter matched %d, want 2", len(easy))
	}

	squares, err := s.Questions().List(ctx, Filter{Shape: "square", Kind: "symmetry"}, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(squares) != 1 || squares[0].QuestionText != "q3" {
		t.Errorf("combined filter matched %+v", squares)
	}

	limited, err := s.Questions().List(ctx, Filter{}, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d", len(limited))
	}
}

func TestQuestionRandom(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := []manifest.Record{
		makeRecord("q1", geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "i1.png"),
		makeRecord("q2", geometry.TierMedium, geometry.ShapeCircle, geometry.KindArea, "i2.png"),
	}
	if _, _, err := s.Questions().Import(ctx, records, 0); err != nil {
		t.Fatalf("Import: %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		q, err := s.Questions().Random(ctx, rng, Filter{Shape: "circle"})
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		if q.Shape != "circle" {
			t.Errorf("draw ignored the filter: %+v", q)
		}
	}

	_, err := s.Questions().Random(ctx, rng, Filter{Shape: "trapezium"})
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty draw error = %v, want ErrNoQuestions", err)
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	attempts := []AttemptData{
		{QuestionID: 1, Chosen: "B", Correct: true, TimeMs: 900, Difficulty: "easy", Shape: "square", Kind: "area"},
		{QuestionID: 1, Chosen: "A", Correct: false, TimeMs: 1500, Difficulty: "easy", Shape: "square", Kind: "area"},
		{QuestionID: 2, Chosen: "C", Correct: true, TimeMs: 400, Difficulty: "medium", Shape: "circle", Kind: "perimeter"},
	}
	for _, a := range attempts {
		if err := s.Attempts().Record(ctx, a); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	stats, err := s.Attempts().Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Overall.Total != 3 || stats.Overall.Correct != 2 {
		t.Errorf("overall = %+v", stats.Overall)
	}
	if acc := stats.ByDifficulty["easy"]; acc.Total != 2 || acc.Correct != 1 {
		t.Errorf("easy accuracy = %+v", acc)
	}
	if got := stats.ByDifficulty["easy"].Rate(); got != 0.5 {
		t.Errorf("easy rate = %v", got)
	}
	if acc := stats.ByShape["circle"]; acc.Total != 1 || acc.Correct != 1 {
		t.Errorf("circle accuracy = %+v", acc)
	}
}

func TestRunRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Runs().Record(ctx, RunData{
		Seed: 42, Total: 30, Skipped: 1, ManifestPath: "out/questions.json",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if created.ID == 0 {
		t.Error("run did not get an ID")
	}
	if created.UID == "" {
		t.Error("run did not get a UID")
	}

	runs, err := s.Runs().List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 || runs[0].Seed != 42 || runs[0].Skipped != 1 {
		t.Errorf("listed runs %+v", runs)
	}
}

func TestQuestionReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := []manifest.Record{
		makeRecord("q1", geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "i1.png"),
	}
	if _, _, err := s.Questions().Import(ctx, records, 0); err != nil {
		t.Fatalf("Import: %v", err)
	}
	n, err := s.Questions().Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if n != 1 {
		t.Errorf("reset removed %d, want 1", n)
	}
	count, _ := s.Questions().Count(ctx, Filter{})
	if count != 0 {
		t.Errorf("bank still holds %d questions", count)
	}
}

func TestFingerprint(t *testing.T) {
	a := makeRecord("q", geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "i.png")
	b := makeRecord("q", geometry.TierEasy, geometry.ShapeSquare, geometry.KindArea, "other.png")
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("image path should not change the fingerprint")
	}
	c := makeRecord("q", geometry.TierMedium, geometry.ShapeSquare, geometry.KindArea, "i.png")
	if Fingerprint(a) == Fingerprint(c) {
		t.Error("difficulty should change the fingerprint")
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "bank.db")
	t.Setenv("GEOMETRIQ_DB", want)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
