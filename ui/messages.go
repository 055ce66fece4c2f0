package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/christianampe/pick"
)

// --- Picker Messages (widget -> host) ---

// OpenedMsg reports that a picker's selection surface opened.
type OpenedMsg struct {
	Picker string // widget id from Config.ID
}

// SelectedMsg reports a completed pick. The surface has already been
// dismissed when this message is delivered.
type SelectedMsg struct {
	Picker      string // widget id from Config.ID
	ID          string // selected option's identity
	Description string // selected option's description
}

// DismissedMsg reports that a picker's surface closed without a pick.
type DismissedMsg struct {
	Picker string // widget id from Config.ID
}

func openedCmd(picker string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{Picker: picker}
	}
}

func selectedCmd(picker string, opt pick.Option) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{
			Picker:      picker,
			ID:          opt.OptionID(),
			Description: opt.OptionDescription(),
		}
	}
}

func dismissedCmd(picker string) tea.Cmd {
	return func() tea.Msg {
		return DismissedMsg{Picker: picker}
	}
}
