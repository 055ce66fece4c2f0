package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRune(m *Model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestTypingRequiresFocus(t *testing.T) {
	m := New("filter")

	typeRune(&m, 'a')
	if got := m.Value(); got != "" {
		t.Fatalf("value = %q, want empty while blurred", got)
	}

	m.Focus()
	typeRune(&m, 'a')
	typeRune(&m, 'b')
	if got := m.Value(); got != "ab" {
		t.Fatalf("value = %q, want %q", got, "ab")
	}

	m.Blur()
	typeRune(&m, 'c')
	if got := m.Value(); got != "ab" {
		t.Fatalf("value = %q, want unchanged after blur", got)
	}
}

func TestSetValueThenTypeAppendsAtCursorEnd(t *testing.T) {
	m := New("filter")
	m.Focus()

	m.SetValue("mar")
	m.CursorEnd()
	typeRune(&m, 'y')

	if got := m.Value(); got != "mary" {
		t.Fatalf("value = %q, want %q", got, "mary")
	}
}
