package ui

import (
	"callassist/internal/layout"

	tea "github.com/charmbracelet/bubbletea"
)

// SwapFocusedMsg swaps the focused slot's panel with the panel at Target (SPC s 1/2/3).
type SwapFocusedMsg struct {
	Target layout.SlotID
}

// FocusMsg moves keyboard focus (SPC h, SPC 1/2/3).
type FocusMsg struct {
	Focus Focus
}

// FocusNextMsg rotates focus forward (tab).
type FocusNextMsg struct{}

// FocusPrevMsg rotates focus backward (shift+tab).
type FocusPrevMsg struct{}

// ToggleSidebarMsg shows or hides the history sidebar (SPC b).
type ToggleSidebarMsg struct{}

// ToggleRecordingMsg flips the recording indicator (SPC r).
type ToggleRecordingMsg struct{}

// NewCallMsg starts an empty conversation and makes it active (SPC n, n in the sidebar).
type NewCallMsg struct{}

// clearStatusMsg clears the footer status if no newer status replaced it.
type clearStatusMsg struct {
	seq int
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// registerAppKeybinds binds the application's global keys to their messages.
func registerAppKeybinds(reg *KeybindRegistry) {
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.Bind("tab", msgCmd(FocusNextMsg{}))
	reg.Bind("shift+tab", msgCmd(FocusPrevMsg{}))

	reg.BindWithDesc("SPC h", msgCmd(FocusMsg{Focus: FocusSidebar}), "History")
	reg.BindWithDesc("SPC b", msgCmd(ToggleSidebarMsg{}), "Toggle sidebar")
	reg.BindWithDesc("SPC r", msgCmd(ToggleRecordingMsg{}), "Toggle recording")
	reg.BindWithDesc("SPC n", msgCmd(NewCallMsg{}), "New call")

	for i, slot := range layout.Slots {
		n := string(rune('1' + i))
		reg.BindWithDesc("SPC "+n, msgCmd(FocusMsg{Focus: FocusForSlot(slot)}), "Focus "+slot.String())
		reg.BindWithDesc("SPC s "+n, msgCmd(SwapFocusedMsg{Target: slot}), slot.String())
	}
}
