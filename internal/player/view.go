package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/ui/components"
	"github.com/abhisek/geometriq/internal/ui/theme"
)

// viewQuestion renders the active question: counter, progress bar, the
// selector, and feedback plus figure hint once submitted.
func (m Model) viewQuestion() string {
	it := m.items[m.index]
	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", m.index+1, len(m.items)))
	facet := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s / %s", it.Record.Shape, it.Record.Difficulty))

	gap := m.width - lipgloss.Width(counter) - lipgloss.Width(facet) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(counter + strings.Repeat(" ", gap) + facet + "\n\n")

	done := m.index
	if m.choice.Submitted {
		done++
	}
	b.WriteString("  " + m.bar.ViewAs(float64(done)/float64(len(m.items))) + "\n\n")

	choiceView := m.choice.View()
	for _, line := range strings.Split(choiceView, "\n") {
		b.WriteString("  " + line + "\n")
	}

	if m.choice.Submitted {
		b.WriteString("\n")
		if m.choice.IsCorrect() {
			b.WriteString("  " + theme.Correct.Render("Correct!") + "\n")
		} else {
			label := components.Label(m.choice.CorrectIndex)
			value := m.choice.Options[m.choice.CorrectIndex]
			b.WriteString("  " + theme.Incorrect.Render(
				fmt.Sprintf("Incorrect. The answer is %s (%s).", label, value)) + "\n")
		}
	}

	if it.Record.Image != "" {
		b.WriteString("\n  " + theme.Hint.Render("figure: "+it.Record.Image) + "\n")
	}

	return b.String()
}

// viewSummary renders the end-of-run screen.
func (m Model) viewSummary() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(m.width).Render("Practice complete!"))
	b.WriteString("\n\n")

	mins := int(m.finished.Minutes())
	secs := int(m.finished.Seconds()) % 60
	b.WriteString(theme.Subtitle.Width(m.width).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	total := len(m.results)
	correct := m.correctCount()
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}
	stats := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		total, correct, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	tiers := m.tierTallies()
	var parts []string
	for _, tier := range geometry.AllTiers() {
		t := tiers[tier]
		if t.total == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d/%d", tier, t.correct, t.total))
	}
	if len(parts) > 0 {
		b.WriteString(theme.Subtitle.Width(m.width).
			Render(strings.Join(parts, "      ")))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Subtitle.Width(m.width).Render("Press Enter to exit"))
	return b.String()
}

type tally struct {
	total   int
	correct int
}

// tierTallies groups answered questions by difficulty.
func (m Model) tierTallies() map[geometry.Tier]tally {
	tiers := make(map[geometry.Tier]tally)
	for i, ok := range m.results {
		tier := m.items[i].Record.Difficulty
		t := tiers[tier]
		t.total++
		if ok {
			t.correct++
		}
		tiers[tier] = t
	}
	return tiers
}
