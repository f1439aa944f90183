package layout

// Event is an input to Controller.Handle.
type Event interface {
	isEvent()
}

// DragStart begins dragging the panel that occupies Slot.
type DragStart struct {
	Slot SlotID
}

// HoverEnter reports that the pointer moved onto Slot during a drag.
type HoverEnter struct {
	Slot SlotID
}

// DragEnd reports a drop (pointer release).
type DragEnd struct{}

// DragCancel reports an aborted drag (focus lost, esc).
type DragCancel struct{}

// SwapRequest exchanges two slots outside of a drag (keyboard bindings).
type SwapRequest struct {
	Source SlotID
	Target SlotID
}

func (DragStart) isEvent()   {}
func (HoverEnter) isEvent()  {}
func (DragEnd) isEvent()     {}
func (DragCancel) isEvent()  {}
func (SwapRequest) isEvent() {}
