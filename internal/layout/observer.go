package layout

// Observer receives controller lifecycle callbacks. Calls happen inside
// Controller.Handle, after the layout has been updated.
type Observer interface {
	DragStarted(state DragState)
	Swapped(src, dst SlotID, before, after Map)
	DragEnded(state DragState, cancelled bool, swaps int)
}

// MultiObserver fans out callbacks to several observers.
// Nil observers are skipped.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver returns an observer forwarding to every non-nil observer.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall runs fn, recovering from panics so one observer cannot break the
// drag for the others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// DragStarted forwards to all observers.
func (m *MultiObserver) DragStarted(state DragState) {
	for _, obs := range m.observers {
		safeCall(func() { obs.DragStarted(state) })
	}
}

// Swapped forwards to all observers.
func (m *MultiObserver) Swapped(src, dst SlotID, before, after Map) {
	for _, obs := range m.observers {
		safeCall(func() { obs.Swapped(src, dst, before, after) })
	}
}

// DragEnded forwards to all observers.
func (m *MultiObserver) DragEnded(state DragState, cancelled bool, swaps int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.DragEnded(state, cancelled, swaps) })
	}
}
