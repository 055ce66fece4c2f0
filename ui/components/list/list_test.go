package list

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christianampe/pick"
	"github.com/christianampe/pick/ui/style"
)

func items(n int) []pick.Item {
	out := make([]pick.Item, n)
	for i := range out {
		out[i] = pick.Item{ID: fmt.Sprint(i), Description: fmt.Sprintf("option %d", i)}
	}
	return out
}

func plainRender(opt pick.Item, selected bool, width int) string {
	if selected {
		return opt.OptionID() + "*"
	}
	return opt.OptionID()
}

func newList(maxVisible int) *Model[pick.Item] {
	return New(Config{MaxVisible: maxVisible}, style.DefaultStyles(), plainRender)
}

func TestCursorWraparound(t *testing.T) {
	m := newList(3)
	m.SetItems(items(3))

	m.CursorUp()
	require.Equal(t, 2, m.Cursor(), "up from the top wraps to the last row")

	m.CursorDown()
	require.Equal(t, 0, m.Cursor(), "down from the bottom wraps to the first row")
}

func TestCursorNoopWhenEmpty(t *testing.T) {
	m := newList(3)
	m.CursorUp()
	m.CursorDown()
	require.Equal(t, 0, m.Cursor())
}

func TestScrollWindowFollowsCursor(t *testing.T) {
	m := newList(3)
	m.SetItems(items(10))

	for i := 0; i < 5; i++ {
		m.CursorDown()
	}
	require.Equal(t, 5, m.Cursor())
	require.Equal(t, "3\n4\n5*", m.View(), "window shows rows 3..5 with cursor on 5")

	for i := 0; i < 4; i++ {
		m.CursorUp()
	}
	require.Equal(t, "1*\n2\n3", m.View(), "window scrolls back up")
}

func TestScrollWindowClampsWhenItemsShrink(t *testing.T) {
	m := newList(3)
	m.SetItems(items(10))
	for i := 0; i < 5; i++ {
		m.CursorDown()
	}
	require.Equal(t, "3\n4\n5*", m.View())

	// Narrowing the rows under a scrolled window must pull the window
	// back up, not leave it hanging past the end.
	m.SetItems(items(4))
	require.Equal(t, 3, m.Cursor())
	view := m.View()
	require.Len(t, strings.Split(view, "\n"), 3, "window must stay full while enough rows remain")
	require.Equal(t, "1\n2\n3*", view)
}

func TestCursorClampsWhenItemsShrink(t *testing.T) {
	m := newList(5)
	m.SetItems(items(10))
	for i := 0; i < 8; i++ {
		m.CursorDown()
	}

	m.SetItems(items(3))
	require.Equal(t, 2, m.Cursor())

	m.SetItems(nil)
	require.Equal(t, 0, m.Cursor())
	require.True(t, m.IsEmpty())
}

func TestEmptyViewShowsPlaceholder(t *testing.T) {
	m := New(Config{MaxVisible: 3, EmptyText: "nothing here"}, style.DefaultStyles(), plainRender)
	require.Contains(t, m.View(), "nothing here")

	def := newList(3)
	require.Contains(t, def.View(), "No matches")
}

func TestHeight(t *testing.T) {
	m := newList(4)
	require.Equal(t, 1, m.Height(), "empty list renders the placeholder line")

	m.SetItems(items(2))
	require.Equal(t, 2, m.Height())

	m.SetItems(items(9))
	require.Equal(t, 4, m.Height(), "height caps at the window size")
}

func TestRowCacheHitsAndDiscriminators(t *testing.T) {
	calls := 0
	counting := func(opt pick.Item, selected bool, width int) string {
		calls++
		return opt.OptionID()
	}
	m := New(Config{MaxVisible: 5}, style.DefaultStyles(), counting)
	m.SetItems(items(3))

	m.View()
	require.Equal(t, 3, calls)

	m.View()
	require.Equal(t, 3, calls, "second render served from cache")

	m.SetRenderKey("mary")
	m.View()
	require.Equal(t, 6, calls, "render key change misses the cache")

	m.SetWidth(60)
	m.View()
	require.Equal(t, 9, calls, "width change purges the cache")
}

func TestViewMarksCursorRowOnly(t *testing.T) {
	m := newList(5)
	m.SetItems(items(3))
	m.CursorDown()

	require.Equal(t, 1, strings.Count(m.View(), "*"))
	require.Contains(t, m.View(), "1*")
}
