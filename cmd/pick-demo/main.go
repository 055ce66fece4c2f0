// Command pick-demo hosts two independent pickers in one Bubble Tea
// program: an assignee picker over generated contacts and a theme picker
// that restyles the UI on selection. Tab switches focus, y copies the
// focused selection to the clipboard, c clears it, q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/christianampe/pick"
	"github.com/christianampe/pick/config"
	"github.com/christianampe/pick/debug"
	"github.com/christianampe/pick/ui"
	"github.com/christianampe/pick/ui/style"
)

var contactNames = []string{
	"John Smith", "Mary Kim", "Maria Lopez", "Chen Wei", "Aisha Patel",
	"Tom Brown", "Elena Petrova", "Sam O'Neil", "Yuki Tanaka", "Omar Haddad",
}

func contacts() []pick.Item {
	items := make([]pick.Item, len(contactNames))
	for i, name := range contactNames {
		items[i] = pick.Item{ID: uuid.NewString(), Description: name}
	}
	return items
}

func themes() []pick.Item {
	return []pick.Item{
		{ID: "default", Description: "Default (ANSI 256)"},
		{ID: "mocha", Description: "Catppuccin Mocha"},
	}
}

type model struct {
	cfg    config.Config
	logger *log.Logger

	assignee ui.Model[pick.Item]
	theme    ui.Model[pick.Item]
	focus    int // 0 = assignee, 1 = theme

	// Written by controller subscriptions, which fire synchronously inside
	// Update; a pointer so both closures and the value-copied model agree.
	status *string

	width int
}

func newModel(cfg config.Config, logger *log.Logger) model {
	matcher := pick.MatchSubstring
	if cfg.Fuzzy {
		matcher = pick.MatchFuzzy
	}

	assigneeCtrl := pick.New[pick.Item](pick.Config{
		Title:       "Assignee",
		Placeholder: cfg.Placeholder,
		Matcher:     matcher,
		OnOpen:      func() { logger.Println("assignee picker opened") },
	})
	assigneeCtrl.SetOptions(contacts())

	themeCtrl := pick.New[pick.Item](pick.Config{
		Title:       "Theme",
		Placeholder: cfg.Placeholder,
		Matcher:     matcher,
		OnOpen:      func() { logger.Println("theme picker opened") },
	})
	themeCtrl.SetOptions(themes())

	status := new(string)
	*status = "ready"
	watch := func(name string, c *pick.Controller[pick.Item]) {
		c.Subscribe(func(change pick.Change) {
			*status = fmt.Sprintf("%s: %s changed, %d visible", name, change, len(c.Visible()))
		})
	}
	watch("assignee", assigneeCtrl)
	watch("theme", themeCtrl)

	styles := style.ForTheme(cfg.Theme)
	m := model{
		cfg:    cfg,
		logger: logger,
		status: status,
	}
	m.assignee = ui.New(ui.Config[pick.Item]{ID: "assignee", MaxVisible: cfg.MaxVisible}, assigneeCtrl).
		SetStyles(styles).
		Focus()
	m.theme = ui.New(ui.Config[pick.Item]{ID: "theme", MaxVisible: cfg.MaxVisible}, themeCtrl).
		SetStyles(styles)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) anyOpen() bool {
	return m.assignee.Controller().Presentation() == pick.Open ||
		m.theme.Controller().Presentation() == pick.Open
}

func (m model) focused() *pick.Controller[pick.Item] {
	if m.focus == 1 {
		return m.theme.Controller()
	}
	return m.assignee.Controller()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := 44
		if msg.Width > 0 && msg.Width-4 < w {
			w = msg.Width - 4
		}
		m.assignee = m.assignee.SetWidth(w)
		m.theme = m.theme.SetWidth(w)
		return m, nil

	case ui.OpenedMsg:
		m.logger.Printf("picker %s opened", msg.Picker)
		return m, nil

	case ui.DismissedMsg:
		m.logger.Printf("picker %s dismissed", msg.Picker)
		return m, nil

	case ui.SelectedMsg:
		m.logger.Printf("picker %s selected %s (%s)", msg.Picker, msg.Description, msg.ID)
		if msg.Picker == "theme" {
			return m.applyTheme(msg.ID), nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.anyOpen() {
		if key.Matches(msg, ui.DefaultKeyMap().Yank) {
			m.yank()
			return m, nil
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.assignee = m.assignee.Focus()
				m.theme = m.theme.Blur()
			} else {
				m.assignee = m.assignee.Blur()
				m.theme = m.theme.Focus()
			}
			return m, nil
		case "c":
			m.focused().ClearSelection()
			return m, nil
		}
	}

	// The open picker owns the keyboard; with nothing open, keys go to
	// the focused trigger.
	var cmd tea.Cmd
	switch {
	case m.assignee.Controller().Presentation() == pick.Open || (!m.anyOpen() && m.focus == 0):
		m.assignee, cmd = m.assignee.Update(msg)
	default:
		m.theme, cmd = m.theme.Update(msg)
	}
	return m, cmd
}

func (m model) applyTheme(name string) model {
	m.cfg.Theme = name
	styles := style.ForTheme(name)
	m.assignee = m.assignee.SetStyles(styles)
	m.theme = m.theme.SetStyles(styles)

	if err := config.Save(m.cfg); err != nil {
		m.logger.Printf("save config: %v", err)
	}
	return m
}

func (m *model) yank() {
	opt, ok := m.focused().Selection()
	if !ok {
		*m.status = "nothing selected to copy"
		return
	}
	if err := clipboard.WriteAll(opt.OptionDescription()); err != nil {
		*m.status = fmt.Sprintf("clipboard: %v", err)
		m.logger.Printf("clipboard write: %v", err)
		return
	}
	*m.status = fmt.Sprintf("copied %q", opt.OptionDescription())
}

func (m model) View() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("pick demo\n\n")
	b.WriteString(m.assignee.Trigger() + "\n")
	b.WriteString(m.theme.Trigger() + "\n\n")
	b.WriteString(muted.Render("status: "+*m.status) + "\n")
	b.WriteString(muted.Render("tab focus · enter open · y copy · c clear · q quit"))
	base := b.String()

	// At most one surface is open; both composites are passthroughs
	// otherwise.
	base = m.assignee.Overlay(base)
	return m.theme.Overlay(base)
}

func main() {
	fuzzy := flag.Bool("fuzzy", false, "use fuzzy matching instead of substring")
	theme := flag.String("theme", "", "style theme (default, mocha)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pick-demo: %v\n", err)
		os.Exit(1)
	}
	if *fuzzy {
		cfg.Fuzzy = true
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	logger := debug.NewLogger()
	logger.Println("pick-demo starting")

	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pick-demo: %v\n", err)
		os.Exit(1)
	}
}
