// Package style defines the lipgloss styles used by the picker widget.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the picker widget.
type Styles struct {
	// Trigger (closed state)
	TriggerLabel       lipgloss.Style // picker title on the trigger line
	TriggerValue       lipgloss.Style // current selection's description
	TriggerPlaceholder lipgloss.Style // shown when nothing is selected
	TriggerFocused     lipgloss.Style // title when the trigger has focus

	// Modal
	Border lipgloss.Style // modal box border
	Title  lipgloss.Style // modal header line
	Prompt lipgloss.Style // search input prompt

	// Rows
	RowNormal     lipgloss.Style
	RowSelected   lipgloss.Style
	Match         lipgloss.Style // matched query characters
	MatchSelected lipgloss.Style // matched characters on the cursor row

	// Misc
	Empty lipgloss.Style // "No matches" placeholder
	Hint  lipgloss.Style // key-hint footer
	Muted lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		TriggerLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		TriggerValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		TriggerPlaceholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		TriggerFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		RowNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		RowSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")),
		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		MatchSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Background(lipgloss.Color("62")).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Catppuccin Mocha palette.
const (
	mochaBase     = lipgloss.Color("#1e1e2e")
	mochaSurface1 = lipgloss.Color("#45475a")
	mochaOverlay0 = lipgloss.Color("#6c7086")
	mochaSubtext0 = lipgloss.Color("#a6adc8")
	mochaText     = lipgloss.Color("#cdd6f4")
	mochaLavender = lipgloss.Color("#b4befe")
	mochaMauve    = lipgloss.Color("#cba6f7")
	mochaPink     = lipgloss.Color("#f5c2e7")
)

// MochaStyles returns a Catppuccin Mocha themed configuration.
func MochaStyles() Styles {
	return Styles{
		TriggerLabel: lipgloss.NewStyle().
			Foreground(mochaSubtext0),
		TriggerValue: lipgloss.NewStyle().
			Foreground(mochaText),
		TriggerPlaceholder: lipgloss.NewStyle().
			Foreground(mochaOverlay0),
		TriggerFocused: lipgloss.NewStyle().
			Foreground(mochaLavender).
			Bold(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mochaMauve).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(mochaBase).
			Background(mochaMauve),
		Prompt: lipgloss.NewStyle().
			Foreground(mochaSubtext0),

		RowNormal: lipgloss.NewStyle().
			Foreground(mochaText),
		RowSelected: lipgloss.NewStyle().
			Background(mochaSurface1).
			Foreground(mochaText),
		Match: lipgloss.NewStyle().
			Foreground(mochaPink).
			Bold(true),
		MatchSelected: lipgloss.NewStyle().
			Foreground(mochaPink).
			Background(mochaSurface1).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(mochaOverlay0),
		Hint: lipgloss.NewStyle().
			Foreground(mochaOverlay0),
		Muted: lipgloss.NewStyle().
			Foreground(mochaOverlay0),
	}
}

// ForTheme returns the named theme's styles. Unknown names fall back to the
// default theme.
func ForTheme(name string) Styles {
	switch name {
	case "mocha":
		return MochaStyles()
	default:
		return DefaultStyles()
	}
}
