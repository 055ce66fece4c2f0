package ui

import (
	"strings"
	"testing"

	"github.com/christianampe/pick"
	"github.com/christianampe/pick/ui/style"
)

func TestMatchRange(t *testing.T) {
	tests := []struct {
		desc, query string
		start, end  int
		ok          bool
	}{
		{"John Smith", "smi", 5, 8, true},
		{"John Smith", "JOHN", 0, 4, true},
		{"John Smith", "zzz", 0, 0, false},
		{"John Smith", "", 0, 0, false},
		// İ (2 bytes) lowers to i+combining dot (3 bytes): the range must
		// stay aligned with the original string, not the lowered copy.
		{"İstanbul Office", "stan", 2, 6, true},
		{"İstanbul Office", "office", 10, 16, true},
		{"İstanbul", "bul", 6, 9, true},
	}

	for _, tt := range tests {
		start, end, ok := matchRange(tt.desc, tt.query)
		if start != tt.start || end != tt.end || ok != tt.ok {
			t.Fatalf("matchRange(%q, %q) = (%d, %d, %t), want (%d, %d, %t)",
				tt.desc, tt.query, start, end, ok, tt.start, tt.end, tt.ok)
		}
	}
}

func TestDefaultRendererCursorPrefix(t *testing.T) {
	opt := pick.Item{ID: "0", Description: "John Smith"}
	ctx := RowContext{Width: 20, Styles: style.DefaultStyles()}

	plain := DefaultRenderer(opt, ctx)
	if !strings.Contains(plain, "  John Smith") {
		t.Fatalf("unselected row = %q, want two-space prefix", plain)
	}

	ctx.Selected = true
	cursor := DefaultRenderer(opt, ctx)
	if !strings.Contains(cursor, "> John Smith") {
		t.Fatalf("cursor row = %q, want %q prefix", cursor, "> ")
	}
}

func TestDefaultRendererTruncatesToWidth(t *testing.T) {
	opt := pick.Item{ID: "0", Description: "an unreasonably long option description"}
	ctx := RowContext{Width: 12, Styles: style.DefaultStyles()}

	row := DefaultRenderer(opt, ctx)
	if !strings.Contains(row, "…") {
		t.Fatalf("row = %q, want truncation ellipsis", row)
	}
	if strings.Contains(row, "description") {
		t.Fatalf("row = %q, want tail truncated away", row)
	}
}
