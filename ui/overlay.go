package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites the picker's modal over a base view, centered on it.
// Host programs call this from View while the picker is open; the base is
// returned untouched when the overlay is empty.
func Overlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	baseLines := splitLines(base)
	width := maxLineWidth(baseLines)
	overlayLines := splitLines(overlay)

	x := (width - maxLineWidth(overlayLines)) / 2
	y := (len(baseLines) - len(overlayLines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlayAt(base, overlay, x, y, width)
}

// overlayAt stamps overlay onto base at cell position (x, y). Both are
// treated as line grids; overlay rows falling outside the base are dropped.
func overlayAt(base, overlay string, x, y, width int) string {
	baseLines := splitLines(base)
	for i, line := range splitLines(overlay) {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padTo(baseLines[row], width)

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		pos := x + ansi.StringWidth(line)
		right := ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// splitLines splits on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padTo pads s with spaces so its visual width equals width.
func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
