package quizgen

import (
	"math/rand"
	"strconv"
	"testing"
)

func TestAssembleOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		options, correctLabel, err := AssembleOptions(25, []int{21, 23, 28, 31}, rng)
		if err != nil {
			t.Fatalf("AssembleOptions: %v", err)
		}
		if len(options) != 5 {
			t.Fatalf("got %d options", len(options))
		}
		for j, opt := range options {
			if opt.Label != Labels[j] {
				t.Errorf("option %d labeled %q, want %q", j, opt.Label, Labels[j])
			}
		}
		found := false
		for _, opt := range options {
			if opt.Label == correctLabel {
				found = true
				if opt.Value != "25" {
					t.Errorf("label %s holds %q, want \"25\"", correctLabel, opt.Value)
				}
			}
		}
		if !found {
			t.Fatalf("correct label %q not assigned", correctLabel)
		}
	}
}

func TestAssembleOptions_AllLabelsLandEventually(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	hits := map[string]bool{}
	for i := 0; i < 500; i++ {
		_, label, err := AssembleOptions(10, []int{7, 8, 12, 14}, rng)
		if err != nil {
			t.Fatalf("AssembleOptions: %v", err)
		}
		hits[label] = true
	}
	for _, l := range Labels {
		if !hits[l] {
			t.Errorf("correct answer never landed on %s across 500 shuffles", l)
		}
	}
}

func TestAssembleOptions_WrongDistractorCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, _, err := AssembleOptions(25, []int{21, 23, 28}, rng); err == nil {
		t.Fatal("expected error for 3 distractors")
	}
	if _, _, err := AssembleOptions(25, []int{21, 23, 28, 31, 33}, rng); err == nil {
		t.Fatal("expected error for 5 distractors")
	}
}

func TestAssembleOptions_Deterministic(t *testing.T) {
	first, firstLabel, err := AssembleOptions(50, []int{44, 47, 52, 58}, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("AssembleOptions: %v", err)
	}
	second, secondLabel, err := AssembleOptions(50, []int{44, 47, 52, 58}, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("AssembleOptions: %v", err)
	}
	if firstLabel != secondLabel {
		t.Errorf("labels diverged: %s vs %s", firstLabel, secondLabel)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("option %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestOptionValue(t *testing.T) {
	q := &Question{Options: []Option{
		{Label: "A", Value: "1"}, {Label: "B", Value: "2"}, {Label: "C", Value: "3"},
		{Label: "D", Value: "4"}, {Label: "E", Value: "5"},
	}}
	for i, l := range Labels {
		got, ok := q.OptionValue(l)
		if !ok || got != strconv.Itoa(i+1) {
			t.Errorf("OptionValue(%s) = %q, %v", l, got, ok)
		}
	}
	if _, ok := q.OptionValue("Z"); ok {
		t.Error("OptionValue(Z) should not resolve")
	}
}
