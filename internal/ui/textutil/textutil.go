// Package textutil provides unicode-aware text helpers for fitting labels into cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended when text is cut.
const TruncateEllipsis = "…"

// Truncate cuts s to at most maxWidth terminal columns, ending in an ellipsis
// when anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// SpreadLine places left and right at the edges of a width-column line.
// Only left is returned when both do not fit. Both may carry ANSI styling.
func SpreadLine(left, right string, width int) string {
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	if lw+rw+1 > width {
		return left
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}
