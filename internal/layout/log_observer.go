package layout

import "log"

// LogObserver writes drag lifecycle lines to a logger.
type LogObserver struct {
	Logger *log.Logger
}

var _ Observer = (*LogObserver)(nil)

func (o *LogObserver) printf(format string, args ...any) {
	if o.Logger == nil {
		log.Printf(format, args...)
		return
	}
	o.Logger.Printf(format, args...)
}

// DragStarted implements Observer.
func (o *LogObserver) DragStarted(state DragState) {
	o.printf("layout: drag start panel=%s slot=%s", state.Panel, state.Origin)
}

// Swapped implements Observer.
func (o *LogObserver) Swapped(src, dst SlotID, before, after Map) {
	o.printf("layout: swap %s<->%s %s -> %s", src, dst, formatMap(before), formatMap(after))
}

// DragEnded implements Observer.
func (o *LogObserver) DragEnded(state DragState, cancelled bool, swaps int) {
	o.printf("layout: drag end panel=%s slot=%s cancelled=%v swaps=%d", state.Panel, state.Origin, cancelled, swaps)
}

func formatMap(m Map) string {
	return "{" + m[Left].String() + " " + m[TopRight].String() + " " + m[BottomRight].String() + "}"
}
