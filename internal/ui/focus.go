package ui

import "callassist/internal/layout"

// Focus identifies what receives keyboard input: the sidebar or one of the
// grid slots. Focus belongs to a slot, not to the panel shown in it.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusLeft
	FocusTopRight
	FocusBottomRight
)

// FocusForSlot returns the Focus value of a grid slot.
func FocusForSlot(s layout.SlotID) Focus {
	return Focus(int(s) + 1)
}

// Slot returns the grid slot for f. ok is false for the sidebar.
func (f Focus) Slot() (layout.SlotID, bool) {
	if f == FocusSidebar {
		return 0, false
	}
	return layout.SlotID(int(f) - 1), true
}

func (f Focus) String() string {
	if s, ok := f.Slot(); ok {
		return s.String()
	}
	return "Sidebar"
}

// FocusManager tracks and rotates focus.
type FocusManager struct {
	Current  Focus
	Order    []Focus // Tab order for focus rotation
	OnChange func(from, to Focus)
}

// NewFocusManager returns a manager focused on the Left slot. The sidebar
// joins the tab order when withSidebar is set.
func NewFocusManager(withSidebar bool) *FocusManager {
	f := &FocusManager{Current: FocusLeft}
	f.SetSidebar(withSidebar)
	return f
}

// SetSidebar adds or removes the sidebar from the tab order. Focus leaves
// the sidebar when it is removed.
func (f *FocusManager) SetSidebar(on bool) {
	f.Order = []Focus{FocusLeft, FocusTopRight, FocusBottomRight}
	if on {
		f.Order = append([]Focus{FocusSidebar}, f.Order...)
	} else if f.Current == FocusSidebar {
		f.SetFocus(FocusLeft)
	}
}

// Next advances focus to the next target in order.
func (f *FocusManager) Next() Focus {
	return f.step(1)
}

// Prev moves focus to the previous target in order.
func (f *FocusManager) Prev() Focus {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) Focus {
	n := len(f.Order)
	if n == 0 {
		return f.Current
	}
	idx := f.index(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := ((idx+delta)%n + n) % n
	f.SetFocus(f.Order[next])
	return f.Current
}

// SetFocus moves focus to target. Returns false if target is not in order.
func (f *FocusManager) SetFocus(target Focus) bool {
	if f.index(target) < 0 {
		return false
	}
	from := f.Current
	f.Current = target
	if f.OnChange != nil && from != target {
		f.OnChange(from, target)
	}
	return true
}

func (f *FocusManager) index(target Focus) int {
	for i, o := range f.Order {
		if o == target {
			return i
		}
	}
	return -1
}
