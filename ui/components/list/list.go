// Package list implements the windowed option list inside the picker modal.
package list

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/christianampe/pick"
	"github.com/christianampe/pick/ui/style"
)

// RenderFunc renders one option row at the given width. The cursor row is
// rendered with selected set.
type RenderFunc[T pick.Option] func(opt T, selected bool, width int) string

// Config holds list configuration.
type Config struct {
	MaxVisible int    // Maximum number of visible rows
	EmptyText  string // Text to show when there are no rows (default: "No matches")
}

// Model is a windowed cursor over the picker's visible options. It owns
// cursor and scroll state only; which options are visible is the
// controller's business.
type Model[T pick.Option] struct {
	items     []T
	cursor    int
	scrollOff int
	config    Config
	styles    style.Styles
	width     int
	render    RenderFunc[T]

	// Rendered rows keyed by option id, width, cursor flag, and render key.
	// Cursor movement re-renders two rows; the rest hit the cache.
	cache     *lru.Cache[string, string]
	renderKey string
}

// New creates a list with the given configuration.
func New[T pick.Option](config Config, styles style.Styles, render RenderFunc[T]) *Model[T] {
	if config.MaxVisible == 0 {
		config.MaxVisible = 8
	}
	if config.EmptyText == "" {
		config.EmptyText = "No matches"
	}
	cache, _ := lru.New[string, string](256)
	return &Model[T]{
		config: config,
		styles: styles,
		render: render,
		cache:  cache,
	}
}

// SetItems replaces the rows. The cursor clamps into the new range and the
// scroll window follows it.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(0, len(items)-1)
	}
	m.adjustScroll()
}

// SetWidth updates the row width.
func (m *Model[T]) SetWidth(w int) {
	if w == m.width {
		return
	}
	m.width = w
	m.cache.Purge()
}

// Width returns the current row width.
func (m *Model[T]) Width() int {
	return m.width
}

// SetStyles swaps the style set.
func (m *Model[T]) SetStyles(styles style.Styles) {
	m.styles = styles
	m.cache.Purge()
}

// SetRender swaps the row renderer.
func (m *Model[T]) SetRender(render RenderFunc[T]) {
	m.render = render
	m.cache.Purge()
}

// SetRenderKey sets the extra cache discriminator for state the renderer
// reads besides the option itself (the search query, in practice).
func (m *Model[T]) SetRenderKey(key string) {
	m.renderKey = key
}

// CursorUp moves the cursor up with wraparound.
func (m *Model[T]) CursorUp() {
	if len(m.items) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.items) - 1
	}
	m.adjustScroll()
}

// CursorDown moves the cursor down with wraparound.
func (m *Model[T]) CursorDown() {
	if len(m.items) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
	m.adjustScroll()
}

func (m *Model[T]) adjustScroll() {
	// The item set can shrink under a scrolled window (every keystroke of a
	// narrowing query does this); pull the window back so it stays full.
	if maxOff := len(m.items) - m.config.MaxVisible; m.scrollOff > maxOff {
		m.scrollOff = max(0, maxOff)
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	} else if m.cursor >= m.scrollOff+m.config.MaxVisible {
		m.scrollOff = m.cursor - m.config.MaxVisible + 1
	}
}

// Reset moves the cursor and scroll window back to the top.
func (m *Model[T]) Reset() {
	m.cursor = 0
	m.scrollOff = 0
}

// Cursor returns the cursor position as an index into the rows.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// Count returns the number of rows.
func (m *Model[T]) Count() int {
	return len(m.items)
}

// IsEmpty returns true if there are no rows.
func (m *Model[T]) IsEmpty() bool {
	return len(m.items) == 0
}

// Height returns the number of lines View will produce.
func (m *Model[T]) Height() int {
	h := len(m.items)
	if h > m.config.MaxVisible {
		h = m.config.MaxVisible
	}
	if h == 0 {
		h = 1 // empty-text placeholder
	}
	return h
}

// View renders the visible window of rows.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return m.styles.Empty.Render("  " + m.config.EmptyText)
	}

	start := m.scrollOff
	end := start + m.config.MaxVisible
	if end > len(m.items) {
		end = len(m.items)
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, m.row(m.items[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) row(opt T, selected bool) string {
	key := fmt.Sprintf("%s|%d|%t|%s", opt.OptionID(), m.width, selected, m.renderKey)
	if line, ok := m.cache.Get(key); ok {
		return line
	}
	line := m.render(opt, selected, m.width)
	m.cache.Add(key, line)
	return line
}
