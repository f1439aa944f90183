package layout

// PanelState is the per-slot drag state exposed to renderers.
type PanelState int

const (
	PanelIdle PanelState = iota
	PanelDragging
)

func (s PanelState) String() string {
	switch s {
	case PanelIdle:
		return "Idle"
	case PanelDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// DragState describes an in-progress drag. Origin tracks the slot the dragged
// panel currently occupies, which moves with every hover swap.
type DragState struct {
	Panel  PanelKind
	Origin SlotID
}

// SlotView is what a renderer needs to draw one slot.
type SlotView struct {
	Slot     SlotID
	Panel    PanelKind
	Dragging bool
}

// Controller translates drag events into Registry swaps.
// It is not safe for concurrent use; feed it from a single event loop.
type Controller struct {
	registry *Registry
	drag     *DragState
	swaps    int
	Observer Observer
}

// NewController returns an idle controller writing to reg.
func NewController(reg *Registry) *Controller {
	return &Controller{registry: reg}
}

// Registry returns the registry the controller writes to.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Handle applies ev and reports whether the layout changed.
func (c *Controller) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case DragStart:
		if c.drag != nil {
			return false
		}
		c.drag = &DragState{Panel: c.registry.At(ev.Slot), Origin: ev.Slot}
		c.swaps = 0
		if c.Observer != nil {
			c.Observer.DragStarted(*c.drag)
		}
		return false
	case HoverEnter:
		if c.drag == nil || c.registry.At(ev.Slot) == c.drag.Panel {
			return false
		}
		return c.swap(c.drag.Origin, ev.Slot)
	case DragEnd:
		c.finish(false)
		return false
	case DragCancel:
		c.finish(true)
		return false
	case SwapRequest:
		if c.drag != nil {
			return false
		}
		return c.swap(ev.Source, ev.Target)
	}
	return false
}

func (c *Controller) swap(src, dst SlotID) bool {
	before := c.registry.Map()
	if !c.registry.Swap(src, dst) {
		return false
	}
	if c.drag != nil {
		c.drag.Origin = dst
		c.swaps++
	}
	if c.Observer != nil {
		c.Observer.Swapped(src, dst, before, c.registry.Map())
	}
	return true
}

func (c *Controller) finish(cancelled bool) {
	if c.drag == nil {
		return
	}
	state, swaps := *c.drag, c.swaps
	c.drag = nil
	c.swaps = 0
	if c.Observer != nil {
		c.Observer.DragEnded(state, cancelled, swaps)
	}
}

// Dragging returns the active drag, if any.
func (c *Controller) Dragging() (DragState, bool) {
	if c.drag == nil {
		return DragState{}, false
	}
	return *c.drag, true
}

// IsDragging reports whether panel is the drag source.
func (c *Controller) IsDragging(panel PanelKind) bool {
	return c.drag != nil && c.drag.Panel == panel
}

// State returns the drag state of the panel occupying slot.
func (c *Controller) State(slot SlotID) PanelState {
	if c.IsDragging(c.registry.At(slot)) {
		return PanelDragging
	}
	return PanelIdle
}

// Slot returns the render view for slot.
func (c *Controller) Slot(slot SlotID) SlotView {
	p := c.registry.At(slot)
	return SlotView{Slot: slot, Panel: p, Dragging: c.IsDragging(p)}
}
