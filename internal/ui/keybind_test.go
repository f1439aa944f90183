package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC s 1", tea.Quit)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space s 1") == nil {
		t.Error("expected space s 1 to normalize to SPC s 1")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
	if !reg.HasPrefix("SPC s") {
		t.Error("expected SPC s to be a prefix")
	}
	if reg.HasPrefix("SPC s 1") {
		t.Error("SPC s 1 is a leaf")
	}
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC s 2", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	for _, k := range []string{" ", "s"} {
		consumed, cmd := h.Handle(keyMsg(k))
		if !consumed || cmd != nil {
			t.Fatalf("%q: consumed=%v cmd=%v", k, consumed, cmd)
		}
		if !h.LeaderWaiting {
			t.Fatalf("%q: expected leader waiting", k)
		}
	}
	consumed, cmd := h.Handle(keyMsg("2"))
	if !consumed || cmd == nil {
		t.Fatalf("2: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	h.Handle(keyMsg(" "))
	consumed, _ := h.Handle(keyMsg("esc"))
	if !consumed || h.LeaderWaiting {
		t.Errorf("esc: consumed=%v waiting=%v", consumed, h.LeaderWaiting)
	}
	if consumed, _ := h.Handle(keyMsg("esc")); consumed {
		t.Error("esc outside leader mode should pass through")
	}
}

func TestKeyHandler_UnknownLeaderKeyResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC q", tea.Quit)
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil || h.LeaderWaiting {
		t.Errorf("z: consumed=%v cmd=%v waiting=%v", consumed, cmd != nil, h.LeaderWaiting)
	}
}

func TestKeyHandler_UnboundSingleKeyPassesThrough(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	if consumed, _ := h.Handle(keyMsg("j")); consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestLeaderHints_SubmenuAndLeaves(t *testing.T) {
	reg := NewKeybindRegistry()
	registerAppKeybinds(reg)

	top := reg.LeaderHints("")
	if top["s"] != "Swap with" {
		t.Errorf("s: got %q", top["s"])
	}
	if top["b"] != "Toggle sidebar" {
		t.Errorf("b: got %q", top["b"])
	}
	if _, ok := top["tab"]; ok {
		t.Error("single-key bindings should not appear in leader hints")
	}

	swap := reg.LeaderHints("SPC s")
	want := map[string]string{"1": "Left", "2": "TopRight", "3": "BottomRight"}
	for k, v := range want {
		if swap[k] != v {
			t.Errorf("SPC s %s: got %q want %q", k, swap[k], v)
		}
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	registerAppKeybinds(reg)
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))
	h.Handle(keyMsg("s"))

	out := RenderKeybindHelp(h, 200)
	for _, s := range []string{"SPC s", "TopRight", "cancel"} {
		if !strings.Contains(out, s) {
			t.Errorf("help bar missing %q: %q", s, out)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
