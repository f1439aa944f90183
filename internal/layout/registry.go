package layout

// Registry holds the current Map. Swap is its only mutation.
type Registry struct {
	current  Map
	OnChange func(before, after Map)
}

// NewRegistry returns a registry at DefaultMap.
func NewRegistry() *Registry {
	return &Registry{current: DefaultMap()}
}

// Map returns the current arrangement.
func (r *Registry) Map() Map {
	return r.current
}

// At returns the panel currently occupying slot.
func (r *Registry) At(slot SlotID) PanelKind {
	return r.current.At(slot)
}

// SlotOf returns the slot currently holding panel.
func (r *Registry) SlotOf(panel PanelKind) SlotID {
	// current is only ever DefaultMap or a Swapped copy of it.
	slot, _ := r.current.SlotOf(panel)
	return slot
}

// Swap exchanges the panels at src and dst and reports whether anything
// changed. src == dst is a no-op and does not fire OnChange.
func (r *Registry) Swap(src, dst SlotID) bool {
	if src == dst {
		return false
	}
	before := r.current
	r.current = before.Swapped(src, dst)
	if r.OnChange != nil {
		r.OnChange(before, r.current)
	}
	return true
}
