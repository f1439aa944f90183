// Package layout owns the three-slot panel arrangement and the drag
// interaction that rearranges it.
//
// A Map assigns each SlotID exactly one PanelKind. The only mutation is a
// swap of two slots, which keeps that assignment one-to-one. The Controller
// turns drag events into swaps and is the single writer of the Registry.
package layout

// PanelKind identifies a content panel.
type PanelKind int

const (
	Transcript PanelKind = iota
	Analysis
	Chat
)

// Panels lists every PanelKind.
var Panels = [...]PanelKind{Transcript, Analysis, Chat}

func (p PanelKind) String() string {
	switch p {
	case Transcript:
		return "Transcript"
	case Analysis:
		return "Analysis"
	case Chat:
		return "Chat"
	default:
		return "Unknown"
	}
}

// SlotID identifies a fixed position in the grid.
type SlotID int

const (
	Left SlotID = iota
	TopRight
	BottomRight
)

// Slots lists every SlotID in grid order.
var Slots = [...]SlotID{Left, TopRight, BottomRight}

func (s SlotID) String() string {
	switch s {
	case Left:
		return "Left"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Map is a total mapping from slot to panel, indexed by SlotID.
type Map [len(Slots)]PanelKind

// DefaultMap returns the startup arrangement.
func DefaultMap() Map {
	return Map{
		Left:        Transcript,
		TopRight:    Analysis,
		BottomRight: Chat,
	}
}

// At returns the panel occupying slot.
func (m Map) At(slot SlotID) PanelKind {
	return m[slot]
}

// SlotOf returns the slot holding panel. ok is false only for a Map that is
// not Valid; maps held by a Registry always match exactly once.
func (m Map) SlotOf(panel PanelKind) (slot SlotID, ok bool) {
	for _, s := range Slots {
		if m[s] == panel {
			return s, true
		}
	}
	return 0, false
}

// Swapped returns a copy of m with the panels at a and b exchanged.
func (m Map) Swapped(a, b SlotID) Map {
	m[a], m[b] = m[b], m[a]
	return m
}

// Valid reports whether every panel appears in exactly one slot.
func (m Map) Valid() bool {
	var seen [len(Panels)]int
	for _, s := range Slots {
		p := m[s]
		if p < 0 || int(p) >= len(Panels) {
			return false
		}
		seen[p]++
	}
	for _, n := range seen {
		if n != 1 {
			return false
		}
	}
	return true
}
