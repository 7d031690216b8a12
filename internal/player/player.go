// Package player runs the terminal practice mode: one multiple-choice
// question at a time with instant feedback, ending on a summary screen.
// Questions come from the bank or straight from a manifest file; attempts
// are recorded when a bank repo is supplied.
package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/quizgen"
	"github.com/abhisek/geometriq/internal/ui/components"
	"github.com/abhisek/geometriq/internal/ui/layout"
)

// Item is one playable question. QuestionID is the bank row when the
// question was drawn from the bank, zero when playing a manifest.
type Item struct {
	Record     manifest.Record
	QuestionID int
}

// ItemsFromRecords wraps manifest records for play without bank identities.
func ItemsFromRecords(records []manifest.Record) []Item {
	items := make([]Item, len(records))
	for i, rec := range records {
		items[i] = Item{Record: rec}
	}
	return items
}

type phase int

const (
	phaseQuiz phase = iota
	phaseSummary
)

// Model is the root practice model.
type Model struct {
	items    []Item
	attempts bank.AttemptRepo // nil skips attempt recording

	choice        components.MultiChoice
	bar           progress.Model
	index         int
	results       []bool
	phase         phase
	width, height int
	started       time.Time
	questionStart time.Time
	finished      time.Duration
}

// New builds the model for a question run. The caller guarantees at least
// one item.
func New(items []Item, attempts bank.AttemptRepo) Model {
	now := time.Now()
	return Model{
		items:         items,
		attempts:      attempts,
		choice:        newChoice(items[0]),
		bar:           progress.New(progress.WithDefaultBlend(), progress.WithoutPercentage()),
		started:       now,
		questionStart: now,
	}
}

// newChoice builds the selector for an item, options in label order.
func newChoice(it Item) components.MultiChoice {
	options := make([]string, 0, len(quizgen.Labels))
	correct := 0
	for i, label := range quizgen.Labels {
		options = append(options, it.Record.Options[label])
		if label == it.Record.Answer {
			correct = i
		}
	}
	return components.NewMultiChoice(it.Record.Question, options, correct)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 16
		if barWidth > 48 {
			barWidth = 48
		}
		if barWidth < 8 {
			barWidth = 8
		}
		m.bar = progress.New(
			progress.WithDefaultBlend(),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	if m.phase == phaseSummary {
		if key == "enter" || key == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	// Feedback shown: any key advances.
	if m.choice.Submitted {
		return m.advance()
	}

	// Number keys choose and submit in one stroke.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(m.choice.Options) {
			m.choice = m.choice.Choose(idx)
			m.recordAttempt()
		}
		return m, nil
	}

	wasSubmitted := m.choice.Submitted
	m.choice, _ = m.choice.Update(msg)
	if !wasSubmitted && m.choice.Submitted {
		m.recordAttempt()
	}
	return m, nil
}

// recordAttempt tallies the submitted answer and persists it when a bank
// repo is attached.
func (m *Model) recordAttempt() {
	correct := m.choice.IsCorrect()
	m.results = append(m.results, correct)

	if m.attempts == nil {
		return
	}
	it := m.items[m.index]
	_ = m.attempts.Record(context.Background(), bank.AttemptData{
		QuestionID: it.QuestionID,
		Chosen:     m.choice.ChosenLabel(),
		Correct:    correct,
		TimeMs:     int(time.Since(m.questionStart).Milliseconds()),
		Difficulty: string(it.Record.Difficulty),
		Shape:      string(it.Record.Shape),
		Kind:       string(it.Record.Kind),
	})
}

// advance moves to the next question, or to the summary after the last one.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.index+1 >= len(m.items) {
		m.phase = phaseSummary
		m.finished = time.Since(m.started)
		return m, nil
	}
	m.index++
	m.choice = newChoice(m.items[m.index])
	m.questionStart = time.Now()
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var title, content string
	if m.phase == phaseSummary {
		title = "Summary"
		content = m.viewSummary()
	} else {
		title = "Practice"
		content = m.viewQuestion()
	}

	header := layout.RenderHeader(title, fmt.Sprintf("Score %d", m.correctCount()), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) keyHints() []layout.KeyHint {
	if m.phase == phaseSummary {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Exit"},
		}
	}
	if m.choice.Submitted {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "1-5", Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Q", Description: "Quit"},
	}
}

func (m Model) correctCount() int {
	n := 0
	for _, ok := range m.results {
		if ok {
			n++
		}
	}
	return n
}

// Run plays items in a fullscreen Bubble Tea program.
func Run(items []Item, attempts bank.AttemptRepo) error {
	if len(items) == 0 {
		return errors.New("player: no questions to play")
	}
	p := tea.NewProgram(New(items, attempts))
	_, err := p.Run()
	return err
}
