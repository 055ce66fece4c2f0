package ui

import (
	"strings"
	"testing"
)

func TestOverlayCentersOnBase(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("..........\n", 5), "\n")

	got := Overlay(base, "XX")

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if lines[2] != "....XX...." {
		t.Fatalf("center line = %q, want %q", lines[2], "....XX....")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if lines[i] != ".........." {
			t.Fatalf("line %d = %q, want untouched", i, lines[i])
		}
	}
}

func TestOverlayEmptyReturnsBase(t *testing.T) {
	base := "one\ntwo"
	if got := Overlay(base, ""); got != base {
		t.Fatalf("Overlay(base, \"\") = %q, want base", got)
	}
}

func TestOverlayWiderThanBaseClampsLeft(t *testing.T) {
	got := Overlay("..\n..\n..", "WIDE")

	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[1], "WIDE") {
		t.Fatalf("line 1 = %q, want overlay at column 0", lines[1])
	}
}

func TestOverlayAtDropsRowsOutsideBase(t *testing.T) {
	got := overlayAt("aa\nbb", "X\nY\nZ", 0, 1, 2)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0] != "aa" {
		t.Fatalf("line 0 = %q, want %q", lines[0], "aa")
	}
	if !strings.HasPrefix(lines[1], "X") {
		t.Fatalf("line 1 = %q, want overlay row X", lines[1])
	}
}

func TestOverlayAtPadsShortBaseLines(t *testing.T) {
	got := overlayAt("aaaaaa\nb", "XX", 4, 1, 6)

	lines := strings.Split(got, "\n")
	if lines[1] != "b   XX" {
		t.Fatalf("line 1 = %q, want %q", lines[1], "b   XX")
	}
}

func TestSplitLinesNeverEmpty(t *testing.T) {
	if got := splitLines(""); len(got) != 1 || got[0] != "" {
		t.Fatalf("splitLines(\"\") = %v, want one empty line", got)
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth([]string{"a", "abc", "ab"}); got != 3 {
		t.Fatalf("maxLineWidth = %d, want 3", got)
	}
}
