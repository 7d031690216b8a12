package worksheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
)

// writeTestFigure writes a small opaque PNG standing in for a rendered shape.
func writeTestFigure(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create image dir: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 24, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode figure: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write figure: %v", err)
	}
}

func readPDF(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("%s does not start with a PDF header", path)
	}
	return data
}

func TestWrite_ProducesWorksheet(t *testing.T) {
	records := append(sampleSet(geometry.ShapeSquare, 3), sampleSet(geometry.ShapeCircle, 3)...)
	path := filepath.Join(t.TempDir(), "worksheet.pdf")

	if err := Write(path, records, Options{Title: "Unit 3 Review"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := readPDF(t, path)
	if len(data) < 1000 {
		t.Errorf("worksheet is %d bytes, suspiciously small", len(data))
	}
}

func TestWrite_EmbedsFiguresWhenPresent(t *testing.T) {
	dir := t.TempDir()
	writeTestFigure(t, filepath.Join(dir, "images", "easy", "Q1.png"))

	records := sampleSet(geometry.ShapeSquare, 3)
	for i := range records {
		records[i].Image = "images/easy/Q1.png"
	}

	plainPath := filepath.Join(dir, "plain.pdf")
	if err := Write(plainPath, records, Options{}); err != nil {
		t.Fatalf("Write without figures: %v", err)
	}
	figPath := filepath.Join(dir, "figures.pdf")
	if err := Write(figPath, records, Options{ImageDir: dir}); err != nil {
		t.Fatalf("Write with figures: %v", err)
	}

	plain := readPDF(t, plainPath)
	withFigures := readPDF(t, figPath)
	if len(withFigures) <= len(plain) {
		t.Errorf("figure embedding did not grow the PDF: %d <= %d bytes", len(withFigures), len(plain))
	}
}

func TestWrite_SkipsMissingFigures(t *testing.T) {
	dir := t.TempDir()
	records := sampleSet(geometry.ShapeSquare, 2)
	// Image paths point at files that were never rendered.
	path := filepath.Join(dir, "worksheet.pdf")

	if err := Write(path, records, Options{ImageDir: dir}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	readPDF(t, path)
}

func TestWrite_CreatesParentDirs(t *testing.T) {
	records := sampleSet(geometry.ShapeSquare, 1)
	path := filepath.Join(t.TempDir(), "out", "sheets", "worksheet.pdf")

	if err := Write(path, records, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	readPDF(t, path)
}

func TestWrite_NoRecords(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "worksheet.pdf"), nil, Options{})
	if err == nil {
		t.Fatal("Write accepted an empty record set")
	}
	if !strings.Contains(err.Error(), "no questions") {
		t.Errorf("error = %q, want it to name the missing questions", err)
	}
}

func TestWriteFlashcards_ProducesCards(t *testing.T) {
	// Twelve cards span two grid pages plus the answer pages.
	records := append(sampleSet(geometry.ShapeSquare, 6), sampleSet(geometry.ShapeCircle, 6)...)
	path := filepath.Join(t.TempDir(), "flashcards.pdf")

	if err := WriteFlashcards(path, records, ""); err != nil {
		t.Fatalf("WriteFlashcards: %v", err)
	}

	data := readPDF(t, path)
	if len(data) < 1000 {
		t.Errorf("flashcards file is %d bytes, suspiciously small", len(data))
	}
}

func TestWriteFlashcards_NoRecords(t *testing.T) {
	err := WriteFlashcards(filepath.Join(t.TempDir(), "flashcards.pdf"), nil, "")
	if err == nil {
		t.Fatal("WriteFlashcards accepted an empty record set")
	}
}

func TestSampleThenWrite(t *testing.T) {
	records := append(sampleSet(geometry.ShapeSquare, 10), sampleSet(geometry.ShapeCircle, 10)...)
	picked := Sample(records, SampleOptions{PerShape: 3, Total: 6}, rand.New(rand.NewSource(9)))
	if len(picked) != 6 {
		t.Fatalf("Sample returned %d records, want 6", len(picked))
	}

	path := filepath.Join(t.TempDir(), "worksheet.pdf")
	if err := Write(path, picked, Options{Title: "Shapes Checkpoint"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	readPDF(t, path)
}
