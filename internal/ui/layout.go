package ui

import "callassist/internal/layout"

// Rows reserved above and below the grid.
const (
	headerRows = 1
	footerRows = 1
)

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HeaderContains reports whether (x, y) is on the card's top border or
// header row, the drag handle of a slot.
func (r Rect) HeaderContains(x, y int) bool {
	return r.Contains(x, y) && y <= r.Y+1
}

// Grid holds the screen regions for one terminal size. Slots are fixed
// positions; which panel appears in each is decided by the layout registry.
type Grid struct {
	Sidebar Rect
	Slots   [len(layout.Slots)]Rect
}

// NewGrid splits width x height into the sidebar column and the three slots:
// Left takes half of the remaining width, TopRight and BottomRight split the
// right half vertically.
func NewGrid(width, height, sidebarWidth int) Grid {
	top := headerRows
	h := height - headerRows - footerRows
	if h < 0 {
		h = 0
	}
	if sidebarWidth > width {
		sidebarWidth = width
	}
	if sidebarWidth < 0 {
		sidebarWidth = 0
	}

	var g Grid
	g.Sidebar = Rect{X: 0, Y: top, W: sidebarWidth, H: h}

	x := sidebarWidth
	rest := width - sidebarWidth
	leftW := rest / 2
	rightW := rest - leftW
	topH := h / 2

	g.Slots[layout.Left] = Rect{X: x, Y: top, W: leftW, H: h}
	g.Slots[layout.TopRight] = Rect{X: x + leftW, Y: top, W: rightW, H: topH}
	g.Slots[layout.BottomRight] = Rect{X: x + leftW, Y: top + topH, W: rightW, H: h - topH}
	return g
}

// SlotAt returns the slot under (x, y).
func (g Grid) SlotAt(x, y int) (layout.SlotID, bool) {
	for _, s := range layout.Slots {
		if g.Slots[s].Contains(x, y) {
			return s, true
		}
	}
	return 0, false
}

// HandleAt returns the slot whose drag handle is under (x, y).
func (g Grid) HandleAt(x, y int) (layout.SlotID, bool) {
	for _, s := range layout.Slots {
		if g.Slots[s].HeaderContains(x, y) {
			return s, true
		}
	}
	return 0, false
}
