package ui

import (
	"callassist/internal/layout"
	"callassist/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Card chrome: border rows/columns and horizontal padding around slot content.
const (
	cardBorder  = 2
	cardPadding = 2
)

// contentSize returns the area inside a card of outer size r that is left
// for the panel body after the header row.
func contentSize(r Rect) (width, height int) {
	width = r.W - cardBorder - cardPadding
	height = r.H - cardBorder - 1
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// renderCard draws one slot: a bordered card with the panel's title and a
// drag grip in the header row, then body. The style reflects drag and focus.
func renderCard(r Rect, view layout.SlotView, focused bool, body string) string {
	if r.W <= cardBorder || r.H <= cardBorder {
		return ""
	}
	style := Styles.Card
	switch {
	case view.Dragging:
		style = Styles.Dragging
	case focused:
		style = Styles.Focused
	}

	innerW := r.W - cardBorder - cardPadding
	grip := Styles.Hint.Render("⠿ drag")
	if view.Dragging {
		grip = Styles.Selected.Render("⠿ moving")
	}
	header := textutil.SpreadLine(Styles.Header.Render(view.Panel.String()), grip, innerW)

	return style.
		Width(r.W - cardBorder).
		Height(r.H - cardBorder).
		MaxHeight(r.H).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
