package player

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
)

type fakeAttempts struct {
	data []bank.AttemptData
}

func (f *fakeAttempts) Record(_ context.Context, d bank.AttemptData) error {
	f.data = append(f.data, d)
	return nil
}

func (f *fakeAttempts) Stats(_ context.Context) (*bank.AttemptStats, error) {
	return &bank.AttemptStats{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func makeItem(text string, tier geometry.Tier, id int) Item {
	return Item{
		QuestionID: id,
		Record: manifest.Record{
			Question: text,
			Options: map[string]string{
				"A": "21", "B": "25", "C": "28", "D": "30", "E": "19",
			},
			Answer:     "B",
			Difficulty: tier,
			Image:      "images/easy/Q1.png",
			Shape:      geometry.ShapeSquare,
			Kind:       geometry.KindArea,
		},
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return updated.(Model)
}

func TestNew_BuildsChoiceInLabelOrder(t *testing.T) {
	m := New([]Item{makeItem("q1", geometry.TierEasy, 7)}, nil)

	if len(m.choice.Options) != 5 {
		t.Fatalf("choice has %d options, want 5", len(m.choice.Options))
	}
	if m.choice.Options[0] != "21" || m.choice.Options[4] != "19" {
		t.Errorf("options out of label order: %v", m.choice.Options)
	}
	if m.choice.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1 (answer B)", m.choice.CorrectIndex)
	}
}

func TestUpdate_AnswerFlowRecordsAttempts(t *testing.T) {
	repo := &fakeAttempts{}
	m := sized(t, New([]Item{
		makeItem("q1", geometry.TierEasy, 7),
		makeItem("q2", geometry.TierMedium, 8),
	}, repo))

	// Move to option B and submit: correct.
	updated, _ := m.Update(keyPress('j'))
	m = updated.(Model)
	updated, _ = m.Update(specialKey(tea.KeyEnter))
	m = updated.(Model)

	if !m.choice.Submitted {
		t.Fatal("choice not submitted after enter")
	}
	if len(repo.data) != 1 {
		t.Fatalf("recorded %d attempts, want 1", len(repo.data))
	}
	if repo.data[0].QuestionID != 7 || repo.data[0].Chosen != "B" || !repo.data[0].Correct {
		t.Errorf("attempt = %+v, want question 7 chosen B correct", repo.data[0])
	}
	if repo.data[0].Shape != "square" || repo.data[0].Difficulty != "easy" {
		t.Errorf("attempt facets = %+v", repo.data[0])
	}

	// Any key advances to the second question.
	updated, _ = m.Update(keyPress(' '))
	m = updated.(Model)
	if m.index != 1 || m.choice.Submitted {
		t.Fatalf("after advance index=%d submitted=%v, want fresh question 2", m.index, m.choice.Submitted)
	}

	// Number key picks option A directly: wrong.
	updated, _ = m.Update(keyPress('1'))
	m = updated.(Model)
	if len(repo.data) != 2 {
		t.Fatalf("recorded %d attempts, want 2", len(repo.data))
	}
	if repo.data[1].Chosen != "A" || repo.data[1].Correct {
		t.Errorf("attempt = %+v, want chosen A incorrect", repo.data[1])
	}

	// Advancing past the last question lands on the summary.
	updated, _ = m.Update(keyPress(' '))
	m = updated.(Model)
	if m.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary", m.phase)
	}
	if got := m.correctCount(); got != 1 {
		t.Errorf("correctCount = %d, want 1", got)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := sized(t, New([]Item{makeItem("q1", geometry.TierEasy, 1)}, nil))

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestUpdate_SummaryEnterQuits(t *testing.T) {
	m := sized(t, New([]Item{makeItem("q1", geometry.TierEasy, 1)}, nil))

	updated, _ := m.Update(keyPress('2')) // correct answer
	m = updated.(Model)
	updated, _ = m.Update(keyPress(' ')) // to summary
	m = updated.(Model)

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on summary produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("enter on summary produced %T, want tea.QuitMsg", cmd())
	}
}

func TestUpdate_NilRepoPlaysWithoutRecording(t *testing.T) {
	m := sized(t, New([]Item{makeItem("q1", geometry.TierEasy, 0)}, nil))

	updated, _ := m.Update(keyPress('2'))
	m = updated.(Model)
	if !m.choice.Submitted || !m.choice.IsCorrect() {
		t.Fatalf("number key did not submit the correct answer")
	}
	if len(m.results) != 1 || !m.results[0] {
		t.Errorf("results = %v, want one correct", m.results)
	}
}

func TestViewQuestion_ShowsFigureHintAndFeedback(t *testing.T) {
	m := sized(t, New([]Item{makeItem("What is the area of the given shape?", geometry.TierEasy, 1)}, nil))

	view := m.viewQuestion()
	if !strings.Contains(view, "What is the area of the given shape?") {
		t.Error("question text missing from view")
	}
	if !strings.Contains(view, "figure: images/easy/Q1.png") {
		t.Error("figure hint missing from view")
	}
	if !strings.Contains(view, "Question 1 of 1") {
		t.Error("counter missing from view")
	}

	updated, _ := m.Update(keyPress('1')) // wrong answer
	m = updated.(Model)
	view = m.viewQuestion()
	if !strings.Contains(view, "Incorrect. The answer is B (25).") {
		t.Error("feedback line missing after a wrong answer")
	}
}

func TestViewSummary_ShowsTallies(t *testing.T) {
	m := sized(t, New([]Item{
		makeItem("q1", geometry.TierEasy, 1),
		makeItem("q2", geometry.TierEasy, 2),
		makeItem("q3", geometry.TierDifficult, 3),
	}, nil))

	for _, key := range []rune{'2', ' ', '1', ' ', '2', ' '} {
		updated, _ := m.Update(keyPress(key))
		m = updated.(Model)
	}
	if m.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary", m.phase)
	}

	view := m.viewSummary()
	if !strings.Contains(view, "Questions: 3") || !strings.Contains(view, "Correct: 2") {
		t.Errorf("summary stats wrong:\n%s", view)
	}
	if !strings.Contains(view, "easy 1/2") || !strings.Contains(view, "difficult 1/1") {
		t.Errorf("tier tallies wrong:\n%s", view)
	}
}

func TestRun_NoItems(t *testing.T) {
	if err := Run(nil, nil); err == nil {
		t.Fatal("Run accepted an empty item list")
	}
}

func TestItemsFromRecords(t *testing.T) {
	records := []manifest.Record{makeItem("q1", geometry.TierEasy, 0).Record}
	items := ItemsFromRecords(records)
	if len(items) != 1 || items[0].QuestionID != 0 || items[0].Record.Question != "q1" {
		t.Errorf("items = %+v", items)
	}
}
