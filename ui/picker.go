// Package ui renders a pick.Controller as a Bubble Tea widget: a trigger
// line while closed, a modal search-and-select box while open. The widget
// is an embedded component, not a program root; hosts route tea.KeyMsg
// values to Update and compose View (or Overlay) into their own output.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/christianampe/pick"
	"github.com/christianampe/pick/ui/components/input"
	"github.com/christianampe/pick/ui/components/list"
	"github.com/christianampe/pick/ui/style"
)

// Config holds widget configuration. Selection semantics live entirely in
// the controller passed to New; Config carries presentation concerns only.
type Config[T pick.Option] struct {
	ID         string         // identifies this widget in emitted messages
	MaxVisible int            // list window size (default 8)
	EmptyText  string         // shown when nothing matches (default "No matches")
	Renderer   RowRenderer[T] // row renderer (default DefaultRenderer)
}

// Model wraps a controller and renders it. All selection state lives in the
// controller; the widget owns only the cursor, the input box, and focus.
type Model[T pick.Option] struct {
	config     Config[T]
	controller *pick.Controller[T]
	keys       KeyMap
	styles     style.Styles
	input      *input.Model
	list       *list.Model[T]
	focused    bool
	width      int
}

// New creates a widget over the given controller. The widget subscribes to
// the controller, so candidate or query changes made by the host are
// reflected in the list without any extra plumbing.
func New[T pick.Option](config Config[T], controller *pick.Controller[T]) Model[T] {
	if config.ID == "" {
		config.ID = "picker"
	}
	if config.Renderer == nil {
		config.Renderer = DefaultRenderer[T]
	}

	styles := style.DefaultStyles()
	box := input.New(controller.Placeholder())
	in := &box
	lst := list.New(
		list.Config{MaxVisible: config.MaxVisible, EmptyText: config.EmptyText},
		styles,
		rowFunc(config.Renderer, controller, styles),
	)
	lst.SetItems(controller.Visible())

	controller.Subscribe(func(change pick.Change) {
		if change == pick.VisibleChanged {
			lst.SetItems(controller.Visible())
		}
	})

	m := Model[T]{
		config:     config,
		controller: controller,
		keys:       DefaultKeyMap(),
		styles:     styles,
		input:      in,
		list:       lst,
	}
	return m.SetWidth(44)
}

// rowFunc adapts a RowRenderer to the list's render signature. The closure
// reads the query through the controller so match highlighting tracks it.
func rowFunc[T pick.Option](r RowRenderer[T], c *pick.Controller[T], s style.Styles) list.RenderFunc[T] {
	return func(opt T, selected bool, width int) string {
		return r(opt, RowContext{
			Selected: selected,
			Width:    width,
			Query:    c.Query(),
			Styles:   s,
		})
	}
}

// Controller returns the wrapped controller.
func (m Model[T]) Controller() *pick.Controller[T] {
	return m.controller
}

// ID returns the widget id carried by emitted messages.
func (m Model[T]) ID() string {
	return m.config.ID
}

// Focus marks the trigger focused so the activation key opens the picker.
func (m Model[T]) Focus() Model[T] {
	m.focused = true
	return m
}

// Blur removes trigger focus. An open surface stays open; only Dismiss and
// Select close it.
func (m Model[T]) Blur() Model[T] {
	m.focused = false
	return m
}

// Focused reports whether the trigger has focus.
func (m Model[T]) Focused() bool {
	return m.focused
}

// SetWidth sets the modal's outer width, including the border.
func (m Model[T]) SetWidth(w int) Model[T] {
	m.width = w
	m.input.SetWidth(w - 4)
	m.list.SetWidth(w - 4)
	return m
}

// SetStyles swaps the style set, on the next render of every row.
func (m Model[T]) SetStyles(s style.Styles) Model[T] {
	m.styles = s
	m.list.SetStyles(s)
	m.list.SetRender(rowFunc(m.config.Renderer, m.controller, s))
	return m
}

// SetKeyMap replaces the key bindings.
func (m Model[T]) SetKeyMap(k KeyMap) Model[T] {
	m.keys = k
	return m
}

// Update handles key messages. While closed, only the activation key on a
// focused trigger does anything; while open, the widget owns every key it
// receives.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.controller.Presentation() == pick.Open {
		return m.updateOpen(keyMsg)
	}
	if m.focused && key.Matches(keyMsg, m.keys.Open) {
		return m.open()
	}
	return m, nil
}

func (m Model[T]) open() (Model[T], tea.Cmd) {
	m.controller.Show()

	// The query survives dismiss/reopen; reflect it in the input.
	m.input.SetValue(m.controller.Query())
	m.input.CursorEnd()
	m.input.Focus()
	m.list.SetRenderKey(m.controller.Query())

	return m, openedCmd(m.config.ID)
}

func (m Model[T]) updateOpen(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.controller.Dismiss()
		m.input.Blur()
		return m, dismissedCmd(m.config.ID)

	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		// Select dismisses the surface itself; nothing to select means
		// the modal stays up.
		opt, ok := m.controller.Select(m.list.Cursor())
		if !ok {
			return m, nil
		}
		m.input.Blur()
		return m, selectedCmd(m.config.ID, opt)
	}

	before := m.input.Value()
	cmd := m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.controller.SetQuery(v)
		m.list.SetRenderKey(v)
	}
	return m, cmd
}

// View renders the trigger line while closed and the modal box while open.
func (m Model[T]) View() string {
	if m.controller.Presentation() == pick.Open {
		return m.modalView()
	}
	return m.triggerView()
}

// Overlay composites the modal centered over the host's base view. While
// closed it returns the base untouched, so hosts can call it
// unconditionally from their own View.
func (m Model[T]) Overlay(base string) string {
	if m.controller.Presentation() != pick.Open {
		return base
	}
	return Overlay(base, m.modalView())
}

// Trigger renders the trigger line regardless of presentation state, for
// hosts that keep their layout stable and float the modal with Overlay.
func (m Model[T]) Trigger() string {
	return m.triggerView()
}

func (m Model[T]) triggerView() string {
	label := m.styles.TriggerLabel
	if m.focused {
		label = m.styles.TriggerFocused
	}

	value := m.styles.TriggerPlaceholder.Render("—")
	if opt, ok := m.controller.Selection(); ok {
		value = m.styles.TriggerValue.Render(opt.OptionDescription())
	}

	return label.Render(m.controller.Title()+":") + " " + value
}

func (m Model[T]) modalView() string {
	lines := []string{
		m.styles.Title.Render(" " + m.controller.Title() + " "),
		m.input.View(),
		m.list.View(),
		m.styles.Hint.Render(m.hints()),
	}
	return m.styles.Border.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model[T]) hints() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
