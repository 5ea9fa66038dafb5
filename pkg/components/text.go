// Package components provides the low-level render primitives the
// dashboard panels are assembled from: width-aware text helpers, sub-cell
// meters for the gauge cluster, and block sparklines for the hourly chart.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate cuts a styled string to at most width display cells, appending
// an ellipsis when anything was dropped. ANSI sequences do not count
// toward the width.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight pads a styled string with spaces to exactly width display cells.
// Strings already at or past the width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft right-aligns a styled string in width display cells.
func PadLeft(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// Center centers a styled string in width display cells.
func Center(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
