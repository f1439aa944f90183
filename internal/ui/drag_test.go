package ui

import (
	"testing"

	"callassist/internal/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrid is 100x30 with a 20-column sidebar:
// Left x=[20,60) y=[1,29), TopRight x=[60,100) y=[1,15), BottomRight x=[60,100) y=[15,29).
func testGrid() Grid {
	return NewGrid(100, 30, 20)
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestNewGrid_Regions(t *testing.T) {
	g := testGrid()
	assert.Equal(t, Rect{X: 0, Y: 1, W: 20, H: 28}, g.Sidebar)
	assert.Equal(t, Rect{X: 20, Y: 1, W: 40, H: 28}, g.Slots[layout.Left])
	assert.Equal(t, Rect{X: 60, Y: 1, W: 40, H: 14}, g.Slots[layout.TopRight])
	assert.Equal(t, Rect{X: 60, Y: 15, W: 40, H: 14}, g.Slots[layout.BottomRight])
}

func TestGrid_SlotAtAndHandleAt(t *testing.T) {
	g := testGrid()

	s, ok := g.SlotAt(30, 20)
	require.True(t, ok)
	assert.Equal(t, layout.Left, s)

	s, ok = g.SlotAt(99, 15)
	require.True(t, ok)
	assert.Equal(t, layout.BottomRight, s)

	_, ok = g.SlotAt(5, 5)
	assert.False(t, ok, "sidebar is not a slot")
	_, ok = g.SlotAt(50, 0)
	assert.False(t, ok, "header row is not a slot")

	s, ok = g.HandleAt(70, 16)
	require.True(t, ok)
	assert.Equal(t, layout.BottomRight, s)
	_, ok = g.HandleAt(70, 17)
	assert.False(t, ok, "body rows are not drag handles")
}

func TestNewGrid_NoSidebar(t *testing.T) {
	g := NewGrid(80, 24, 0)
	assert.Equal(t, 0, g.Sidebar.W)
	assert.Equal(t, Rect{X: 0, Y: 1, W: 40, H: 22}, g.Slots[layout.Left])
}

func TestDragTracker_PressMoveRelease(t *testing.T) {
	g := testGrid()
	var d DragTracker

	assert.Empty(t, d.Handle(press(30, 1), g))
	assert.False(t, d.Active(), "press alone does not start a drag")

	events := d.Handle(motion(31, 2), g)
	assert.Equal(t, []layout.Event{layout.DragStart{Slot: layout.Left}}, events)
	assert.True(t, d.Active())

	assert.Empty(t, d.Handle(motion(40, 10), g), "still over origin")

	events = d.Handle(motion(70, 20), g)
	assert.Equal(t, []layout.Event{layout.HoverEnter{Slot: layout.BottomRight}}, events)
	assert.Empty(t, d.Handle(motion(71, 21), g), "hover fires once per entry")

	events = d.Handle(motion(70, 5), g)
	assert.Equal(t, []layout.Event{layout.HoverEnter{Slot: layout.TopRight}}, events)

	events = d.Handle(release(70, 5), g)
	assert.Equal(t, []layout.Event{layout.DragEnd{}}, events)
	assert.False(t, d.Active())
}

func TestDragTracker_PressOutsideHandleDoesNothing(t *testing.T) {
	g := testGrid()
	var d DragTracker
	d.Handle(press(30, 10), g)
	assert.Empty(t, d.Handle(motion(70, 20), g))
	assert.Empty(t, d.Handle(release(70, 20), g))
}

func TestDragTracker_ClickWithoutMotion(t *testing.T) {
	g := testGrid()
	var d DragTracker
	d.Handle(press(30, 1), g)
	assert.Empty(t, d.Handle(release(30, 1), g))
	assert.Empty(t, d.Handle(motion(70, 20), g), "released press does not arm later motion")
}

func TestDragTracker_LeavingAndReenteringSlot(t *testing.T) {
	g := testGrid()
	var d DragTracker
	d.Handle(press(70, 1), g)
	d.Handle(motion(70, 2), g)

	assert.Empty(t, d.Handle(motion(5, 5), g), "over sidebar")
	events := d.Handle(motion(70, 5), g)
	assert.Equal(t, []layout.Event{layout.HoverEnter{Slot: layout.TopRight}}, events)
}

func TestDragTracker_Cancel(t *testing.T) {
	g := testGrid()
	var d DragTracker
	assert.Empty(t, d.Cancel())

	d.Handle(press(30, 1), g)
	d.Handle(motion(70, 20), g)
	assert.Equal(t, []layout.Event{layout.DragCancel{}}, d.Cancel())
	assert.False(t, d.Active())
}

func TestDragTracker_WheelIgnored(t *testing.T) {
	g := testGrid()
	var d DragTracker
	wheel := tea.MouseMsg{X: 30, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	assert.Empty(t, d.Handle(wheel, g))
	assert.Empty(t, d.Handle(motion(70, 20), g))
}

func TestFocusManager_Rotation(t *testing.T) {
	f := NewFocusManager(true)
	assert.Equal(t, FocusLeft, f.Current)

	var changes []Focus
	f.OnChange = func(from, to Focus) { changes = append(changes, to) }

	assert.Equal(t, FocusTopRight, f.Next())
	assert.Equal(t, FocusBottomRight, f.Next())
	assert.Equal(t, FocusSidebar, f.Next())
	assert.Equal(t, FocusBottomRight, f.Prev())
	assert.Equal(t, []Focus{FocusTopRight, FocusBottomRight, FocusSidebar, FocusBottomRight}, changes)
}

func TestFocusManager_SidebarRemoval(t *testing.T) {
	f := NewFocusManager(true)
	require.True(t, f.SetFocus(FocusSidebar))
	f.SetSidebar(false)
	assert.Equal(t, FocusLeft, f.Current)
	assert.False(t, f.SetFocus(FocusSidebar))
}

func TestFocus_Slot(t *testing.T) {
	for _, s := range layout.Slots {
		got, ok := FocusForSlot(s).Slot()
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := FocusSidebar.Slot()
	assert.False(t, ok)
	assert.Equal(t, "TopRight", FocusTopRight.String())
}
