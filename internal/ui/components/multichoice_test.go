package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testChoice() MultiChoice {
	return NewMultiChoice("What is the area?", []string{"21", "25", "28", "30", "19"}, 1)
}

func TestMultiChoice_Navigation(t *testing.T) {
	m := testChoice()

	m, _ = m.Update(keyPress('j'))
	m, _ = m.Update(keyPress('j'))
	if m.Selected != 2 {
		t.Errorf("Selected = %d after two downs, want 2", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("Selected = %d after up, want 1", m.Selected)
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(specialKey(tea.KeyDown))
	}
	if m.Selected != len(m.Options)-1 {
		t.Errorf("Selected = %d, want clamped to last option", m.Selected)
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(specialKey(tea.KeyUp))
	}
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want clamped to 0", m.Selected)
	}
}

func TestMultiChoice_SubmitOnEnter(t *testing.T) {
	m := testChoice()

	m, _ = m.Update(keyPress('j'))
	m, _ = m.Update(specialKey(tea.KeyEnter))

	if !m.Submitted {
		t.Fatal("not submitted after enter")
	}
	if m.ChosenIndex != 1 {
		t.Errorf("ChosenIndex = %d, want 1", m.ChosenIndex)
	}
	if !m.IsCorrect() {
		t.Error("IsCorrect() = false for the correct option")
	}
	if got := m.ChosenLabel(); got != "B" {
		t.Errorf("ChosenLabel() = %q, want B", got)
	}
}

func TestMultiChoice_IgnoresKeysAfterSubmit(t *testing.T) {
	m := testChoice()
	m, _ = m.Update(specialKey(tea.KeyEnter))

	m, _ = m.Update(keyPress('j'))
	m, _ = m.Update(specialKey(tea.KeyEnter))

	if m.Selected != 0 || m.ChosenIndex != 0 {
		t.Errorf("selection moved after submit: Selected=%d ChosenIndex=%d", m.Selected, m.ChosenIndex)
	}
	if m.IsCorrect() {
		t.Error("IsCorrect() = true for a wrong option")
	}
}

func TestMultiChoice_Choose(t *testing.T) {
	m := testChoice().Choose(3)
	if !m.Submitted || m.ChosenIndex != 3 {
		t.Errorf("Choose(3): Submitted=%v ChosenIndex=%d", m.Submitted, m.ChosenIndex)
	}
	if got := m.ChosenLabel(); got != "D" {
		t.Errorf("ChosenLabel() = %q, want D", got)
	}

	// Out-of-range picks and re-picks are no-ops.
	if n := m.Choose(0); n.ChosenIndex != 3 {
		t.Errorf("Choose after submit changed ChosenIndex to %d", n.ChosenIndex)
	}
	fresh := testChoice()
	if n := fresh.Choose(9); n.Submitted {
		t.Error("Choose(9) submitted an option that does not exist")
	}
	if n := fresh.Choose(-1); n.Submitted {
		t.Error("Choose(-1) submitted an option that does not exist")
	}
}

func TestMultiChoice_ChosenLabelBeforeSubmit(t *testing.T) {
	if got := testChoice().ChosenLabel(); got != "" {
		t.Errorf("ChosenLabel() = %q before submit, want empty", got)
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := testChoice()
	view := m.View()

	if !strings.Contains(view, "What is the area?") {
		t.Error("view missing question text")
	}
	for _, opt := range m.Options {
		if !strings.Contains(view, opt) {
			t.Errorf("view missing option %q", opt)
		}
	}
	if !strings.Contains(view, "▸ A)") {
		t.Error("view missing cursor on the first option")
	}

	m, _ = m.Update(specialKey(tea.KeyEnter))
	if strings.Contains(m.View(), "▸") {
		t.Error("cursor still shown after submit")
	}
}

func TestLabel(t *testing.T) {
	if Label(0) != "A" || Label(4) != "E" {
		t.Errorf("Label mapping wrong: %s %s", Label(0), Label(4))
	}
}
