// Package input wraps bubbles/textinput as the picker's search box. It is
// a dumb text box: filtering and selection semantics belong to the
// controller that owns the picker, so the surface here is just the handful
// of calls the widget makes.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the picker's search box.
type Model struct {
	box textinput.Model
}

// New creates a search input with the given placeholder text.
func New(placeholder string) Model {
	box := textinput.New()
	box.Placeholder = placeholder
	box.Prompt = "/ "
	box.Width = 40
	return Model{box: box}
}

// SetWidth sizes the input, reserving room for the prompt.
func (m *Model) SetWidth(w int) {
	m.box.Width = w - 2
}

// Focus starts accepting keystrokes.
func (m *Model) Focus() {
	m.box.Focus()
}

// Blur stops accepting keystrokes.
func (m *Model) Blur() {
	m.box.Blur()
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.box.Value()
}

// SetValue replaces the input text.
func (m *Model) SetValue(s string) {
	m.box.SetValue(s)
}

// CursorEnd moves the cursor past the last character.
func (m *Model) CursorEnd() {
	m.box.CursorEnd()
}

// Update feeds a message to the text box. Keystrokes are ignored while
// blurred.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.box, cmd = m.box.Update(msg)
	return cmd
}

// View renders the input line.
func (m *Model) View() string {
	return m.box.View()
}
