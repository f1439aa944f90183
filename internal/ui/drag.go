package ui

import (
	"callassist/internal/layout"

	tea "github.com/charmbracelet/bubbletea"
)

// DragTracker turns raw mouse messages into layout events.
//
// A left press on a slot header arms a drag. The first motion with the
// button held emits DragStart, then HoverEnter each time the pointer enters
// a slot. Release emits DragEnd. A press that is released without moving is a
// click and emits nothing.
type DragTracker struct {
	armed    bool
	active   bool
	origin   layout.SlotID
	hover    layout.SlotID
	hovering bool
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}

// Handle translates msg against the current grid geometry.
func (d *DragTracker) Handle(msg tea.MouseMsg, g Grid) []layout.Event {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if d.active {
			// Missed release; treat the new press as a drop.
			d.reset()
			return []layout.Event{layout.DragEnd{}}
		}
		if slot, ok := g.HandleAt(msg.X, msg.Y); ok {
			d.armed = true
			d.origin = slot
		}
		return nil

	case tea.MouseActionMotion:
		if !d.armed && !d.active {
			return nil
		}
		var events []layout.Event
		if !d.active {
			d.active = true
			d.armed = false
			d.hover, d.hovering = d.origin, true
			events = append(events, layout.DragStart{Slot: d.origin})
		}
		slot, ok := g.SlotAt(msg.X, msg.Y)
		if !ok {
			d.hovering = false
			return events
		}
		if !d.hovering || slot != d.hover {
			d.hover, d.hovering = slot, true
			events = append(events, layout.HoverEnter{Slot: slot})
		}
		return events

	case tea.MouseActionRelease:
		wasActive := d.active
		d.reset()
		if wasActive {
			return []layout.Event{layout.DragEnd{}}
		}
	}
	return nil
}

// Cancel aborts any drag, e.g. when the terminal loses focus.
func (d *DragTracker) Cancel() []layout.Event {
	wasActive := d.active
	d.reset()
	if wasActive {
		return []layout.Event{layout.DragCancel{}}
	}
	return nil
}

func (d *DragTracker) reset() {
	d.armed = false
	d.active = false
	d.hovering = false
}
