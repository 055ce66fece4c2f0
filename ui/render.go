package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/christianampe/pick"
	"github.com/christianampe/pick/ui/style"
)

// RowContext carries everything a row renderer may read besides the option
// itself.
type RowContext struct {
	Selected bool   // cursor is on this row
	Width    int    // target row width in cells
	Query    string // current search query, for match highlighting
	Styles   style.Styles
}

// RowRenderer maps an option to a renderable row.
type RowRenderer[T pick.Option] func(opt T, ctx RowContext) string

// DefaultRenderer renders a cursor prefix and the option description,
// highlighting the query hit and padding the row to full width so the
// cursor background spans it.
func DefaultRenderer[T pick.Option](opt T, ctx RowContext) string {
	prefix := "  "
	if ctx.Selected {
		prefix = "> "
	}

	row := ctx.Styles.RowNormal
	match := ctx.Styles.Match
	if ctx.Selected {
		row = ctx.Styles.RowSelected
		match = ctx.Styles.MatchSelected
	}

	desc := opt.OptionDescription()
	if ctx.Width > 2 {
		desc = runewidth.Truncate(desc, ctx.Width-2, "…")
	}

	pad := ""
	if ctx.Width > 0 {
		if gap := ctx.Width - runewidth.StringWidth(prefix+desc); gap > 0 {
			pad = strings.Repeat(" ", gap)
		}
	}

	start, end, ok := matchRange(desc, ctx.Query)
	if !ok {
		return row.Render(prefix + desc + pad)
	}
	return row.Render(prefix+desc[:start]) +
		match.Render(desc[start:end]) +
		row.Render(desc[end:]+pad)
}

// matchRange locates the first case-insensitive hit of query in desc as a
// byte range into desc itself. Truncation may have cut the hit off; no hit
// means no highlight, never an error.
func matchRange(desc, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	lowQuery := strings.ToLower(query)
	idx := strings.Index(strings.ToLower(desc), lowQuery)
	if idx < 0 {
		return 0, 0, false
	}

	// Lowercasing can change a rune's byte length (İ lowers to a two-rune
	// sequence), so the lowered offsets are mapped back onto desc by
	// walking both strings in step rather than reused as-is.
	hitEnd := idx + len(lowQuery)
	lo := 0
	for i, r := range desc {
		if !ok && lo == idx {
			start = i
			ok = true
		}
		if ok && lo >= hitEnd {
			return start, i, true
		}
		lo += len(strings.ToLower(string(r)))
	}
	if ok {
		return start, len(desc), true
	}
	return 0, 0, false
}
