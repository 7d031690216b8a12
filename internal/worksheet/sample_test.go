package worksheet

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
)

func sampleRecord(shape geometry.Shape, n int) manifest.Record {
	return manifest.Record{
		Question: fmt.Sprintf("%s question %d", shape, n),
		Options: map[string]string{
			"A": "21", "B": "25", "C": "28", "D": "30", "E": "19",
		},
		Answer:     "B",
		Difficulty: geometry.TierEasy,
		Image:      fmt.Sprintf("images/easy/Q%d.png", n+1),
		Shape:      shape,
		Kind:       geometry.KindArea,
	}
}

func sampleSet(shape geometry.Shape, n int) []manifest.Record {
	records := make([]manifest.Record, n)
	for i := range records {
		records[i] = sampleRecord(shape, i)
	}
	return records
}

func countByShape(records []manifest.Record) map[geometry.Shape]int {
	counts := make(map[geometry.Shape]int)
	for _, rec := range records {
		counts[rec.Shape]++
	}
	return counts
}

func TestSample_PerShapeCap(t *testing.T) {
	records := append(sampleSet(geometry.ShapeSquare, 10), sampleSet(geometry.ShapeCircle, 10)...)

	got := Sample(records, SampleOptions{PerShape: 2, Total: 50}, rand.New(rand.NewSource(1)))

	if len(got) != 4 {
		t.Fatalf("Sample returned %d records, want 4", len(got))
	}
	counts := countByShape(got)
	if counts[geometry.ShapeSquare] != 2 || counts[geometry.ShapeCircle] != 2 {
		t.Errorf("per-shape counts = %v, want 2 each", counts)
	}
}

func TestSample_PerShapeCapIsHard(t *testing.T) {
	// A nearly empty circle bucket must not be topped up with extra
	// squares past the square cap.
	records := append(sampleSet(geometry.ShapeSquare, 10), sampleSet(geometry.ShapeCircle, 1)...)

	got := Sample(records, SampleOptions{PerShape: 2, Total: 8}, rand.New(rand.NewSource(1)))

	if len(got) != 3 {
		t.Fatalf("Sample returned %d records, want 3", len(got))
	}
	counts := countByShape(got)
	if counts[geometry.ShapeSquare] != 2 {
		t.Errorf("square count = %d, want 2", counts[geometry.ShapeSquare])
	}
	if counts[geometry.ShapeCircle] != 1 {
		t.Errorf("circle count = %d, want 1", counts[geometry.ShapeCircle])
	}
}

func TestSample_TotalCapTruncates(t *testing.T) {
	records := sampleSet(geometry.ShapeSquare, 10)

	got := Sample(records, SampleOptions{PerShape: 10, Total: 5}, rand.New(rand.NewSource(1)))

	if len(got) != 5 {
		t.Fatalf("Sample returned %d records, want 5", len(got))
	}
}

func TestSample_DefaultCaps(t *testing.T) {
	records := sampleSet(geometry.ShapeSquare, 10)

	got := Sample(records, SampleOptions{}, rand.New(rand.NewSource(1)))

	if len(got) != DefaultPerShape {
		t.Fatalf("Sample returned %d records, want %d", len(got), DefaultPerShape)
	}
}

func TestSample_ShapePrefixFilter(t *testing.T) {
	records := append(sampleSet(geometry.ShapeSquare, 3), sampleSet(geometry.ShapePentagon, 3)...)
	records = append(records, sampleSet(geometry.ShapeHexagon, 3)...)

	tests := []struct {
		name       string
		prefix     string
		wantShapes map[geometry.Shape]bool
		wantLen    int
	}{
		{
			name:       "uppercase prefix matches regular polygons",
			prefix:     "REG",
			wantShapes: map[geometry.Shape]bool{geometry.ShapePentagon: true, geometry.ShapeHexagon: true},
			wantLen:    6,
		},
		{
			name:       "prefix matches single shape",
			prefix:     "sq",
			wantShapes: map[geometry.Shape]bool{geometry.ShapeSquare: true},
			wantLen:    3,
		},
		{
			name:       "empty prefix keeps everything",
			prefix:     "",
			wantShapes: map[geometry.Shape]bool{geometry.ShapeSquare: true, geometry.ShapePentagon: true, geometry.ShapeHexagon: true},
			wantLen:    9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(records, SampleOptions{ShapePrefix: tt.prefix, PerShape: 5, Total: 50}, rand.New(rand.NewSource(1)))
			if len(got) != tt.wantLen {
				t.Fatalf("Sample returned %d records, want %d", len(got), tt.wantLen)
			}
			for _, rec := range got {
				if !tt.wantShapes[rec.Shape] {
					t.Errorf("Sample kept shape %q, want only %v", rec.Shape, tt.wantShapes)
				}
			}
		})
	}
}

func TestSample_SameSeedSameSelection(t *testing.T) {
	records := append(sampleSet(geometry.ShapeSquare, 8), sampleSet(geometry.ShapeCircle, 8)...)
	records = append(records, sampleSet(geometry.ShapeRectangle, 8)...)
	opts := SampleOptions{PerShape: 3, Total: 7}

	first := Sample(records, opts, rand.New(rand.NewSource(42)))
	second := Sample(records, opts, rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed selected different questions:\n%v\n%v", first, second)
	}
}

func TestSample_DropsDuplicateQuestions(t *testing.T) {
	rec := sampleRecord(geometry.ShapeSquare, 0)
	twin := rec // identical content under a different image path
	twin.Image = "images/easy/Q9.png"
	variant := sampleRecord(geometry.ShapeSquare, 0)
	variant.Options = map[string]string{
		"A": "12", "B": "25", "C": "28", "D": "30", "E": "19",
	}
	records := []manifest.Record{rec, twin, variant}

	got := Sample(records, SampleOptions{PerShape: 10, Total: 10}, rand.New(rand.NewSource(1)))

	if len(got) != 2 {
		t.Fatalf("Sample returned %d records, want 2 (duplicate dropped, option variant kept)", len(got))
	}
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	records := append(sampleSet(geometry.ShapeSquare, 5), sampleSet(geometry.ShapeCircle, 5)...)
	snapshot := make([]manifest.Record, len(records))
	copy(snapshot, records)

	Sample(records, SampleOptions{}, rand.New(rand.NewSource(1)))

	if !reflect.DeepEqual(records, snapshot) {
		t.Error("Sample reordered the caller's records")
	}
}
