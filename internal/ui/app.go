package ui

import (
	"log"
	"strings"
	"time"

	"callassist/internal/conversation"
	"callassist/internal/layout"
	"callassist/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Size used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// statusTimeout is how long a footer status message stays visible.
const statusTimeout = 3 * time.Second

// Options configures NewAppModel.
type Options struct {
	Store        *conversation.Store
	Observer     layout.Observer // optional; receives drag and swap callbacks
	SidebarWidth int
	ShowSidebar  bool
	Now          func() time.Time // optional; dates new calls, defaults to time.Now
}

// AppModel is the root model: the sidebar plus the three-slot grid.
// The Controller is the only writer of Registry; every slot is rendered from
// Registry on each frame.
type AppModel struct {
	Registry   *layout.Registry
	Controller *layout.Controller
	Store      *conversation.Store
	Sidebar    *Sidebar
	Panels     [len(layout.Panels)]*EntriesView // indexed by PanelKind
	ChatInput  textinput.Model
	Typing     bool // chat input has the keyboard
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Drag       DragTracker

	ShowSidebar  bool
	SidebarWidth int
	Recording    bool
	Width        int
	Height       int

	Status        string
	StatusIsError bool
	statusSeq     int

	Now func() time.Time
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	store := opts.Store
	if store == nil {
		store = conversation.NewStore()
	}
	reg := layout.NewRegistry()
	ctrl := layout.NewController(reg)
	ctrl.Observer = opts.Observer

	keys := NewKeybindRegistry()
	registerAppKeybinds(keys)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Placeholder = "Ask the assistant…"
	input.Prompt = "› "

	a := &AppModel{
		Registry:     reg,
		Controller:   ctrl,
		Store:        store,
		Sidebar:      NewSidebar(),
		ChatInput:    input,
		Focus:        NewFocusManager(opts.ShowSidebar),
		KeyHandler:   NewKeyHandler(keys),
		ShowSidebar:  opts.ShowSidebar,
		SidebarWidth: opts.SidebarWidth,
		Width:        defaultWidth,
		Height:       defaultHeight,
		Now:          now,
	}
	for _, p := range layout.Panels {
		a.Panels[p] = NewEntriesView(p)
	}
	a.relayout()
	a.refreshContent()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Grid returns the current screen geometry.
func (a *AppModel) Grid() Grid {
	sw := 0
	if a.ShowSidebar {
		sw = a.SidebarWidth
	}
	return NewGrid(a.Width, a.Height, sw)
}

// relayout sizes each panel for the slot it currently occupies.
func (a *AppModel) relayout() {
	g := a.Grid()
	a.Sidebar.SetSize(g.Sidebar.W, g.Sidebar.H)
	for _, s := range layout.Slots {
		p := a.Registry.At(s)
		w, h := contentSize(g.Slots[s])
		if p == layout.Chat {
			h--
			a.ChatInput.Width = w - lipgloss.Width(a.ChatInput.Prompt) - 1
		}
		a.Panels[p].SetSize(w, h)
	}
}

// refreshContent loads the active conversation into the panels.
func (a *AppModel) refreshContent() {
	active, _ := a.Store.Active()
	for _, p := range layout.Panels {
		a.Panels[p].SetEntries(EntriesFor(active, p))
	}
	a.Sidebar.SetConversations(a.Store.List(), active.ID)
}

// apply feeds events to the controller in order and re-lays out after any swap.
func (a *AppModel) apply(events []layout.Event) {
	changed := false
	for _, ev := range events {
		if a.Controller.Handle(ev) {
			changed = true
		}
	}
	if changed {
		a.relayout()
	}
}

// setStatus shows msg in the footer until statusTimeout passes or a newer
// status replaces it.
func (a *AppModel) setStatus(msg string, isErr bool) tea.Cmd {
	a.Status = msg
	a.StatusIsError = isErr
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// syncTyping leaves typing mode once the focused slot no longer holds Chat.
func (a *AppModel) syncTyping() {
	if !a.Typing {
		return
	}
	if slot, ok := a.focusedSlot(); ok && a.Registry.At(slot) == layout.Chat {
		return
	}
	a.Typing = false
	a.ChatInput.Blur()
}

// focusedSlot returns the slot with keyboard focus, if any.
func (a *AppModel) focusedSlot() (layout.SlotID, bool) {
	return a.Focus.Current.Slot()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncTyping()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.relayout()
		return nil
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.BlurMsg:
		a.apply(a.Drag.Cancel())
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case SelectConversationMsg:
		if err := a.Store.Select(msg.ID); err != nil {
			log.Printf("ui: %v", err)
			return nil
		}
		a.refreshContent()
		return nil
	case NewCallMsg:
		a.Store.NewCall(a.Now())
		a.refreshContent()
		return a.setStatus("Started a new call session", false)
	case SwapFocusedMsg:
		src, ok := a.focusedSlot()
		if !ok {
			return nil
		}
		if a.Controller.Handle(layout.SwapRequest{Source: src, Target: msg.Target}) {
			a.relayout()
			// Focus follows the panel.
			a.Focus.SetFocus(FocusForSlot(msg.Target))
		}
		return nil
	case FocusMsg:
		a.Focus.SetFocus(msg.Focus)
		return nil
	case FocusNextMsg:
		a.Focus.Next()
		return nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return nil
	case ToggleSidebarMsg:
		a.ShowSidebar = !a.ShowSidebar
		a.Focus.SetSidebar(a.ShowSidebar)
		a.relayout()
		return nil
	case ToggleRecordingMsg:
		if _, ok := a.Store.Active(); !ok {
			return a.setStatus("No active call to record", true)
		}
		a.Recording = !a.Recording
		if a.Recording {
			return a.setStatus("Recording started", false)
		}
		return a.setStatus("Recording stopped", false)
	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.Status = ""
			a.StatusIsError = false
		}
		return nil
	}

	if a.Typing {
		var cmd tea.Cmd
		a.ChatInput, cmd = a.ChatInput.Update(msg)
		return cmd
	}
	return nil
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	g := a.Grid()
	var cmd tea.Cmd
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if s, ok := g.SlotAt(msg.X, msg.Y); ok {
				delta := 3
				if msg.Button == tea.MouseButtonWheelUp {
					delta = -3
				}
				a.Panels[a.Registry.At(s)].ScrollBy(delta)
			}
			return nil
		case tea.MouseButtonLeft:
			if s, ok := g.SlotAt(msg.X, msg.Y); ok {
				a.Focus.SetFocus(FocusForSlot(s))
			} else if a.ShowSidebar && g.Sidebar.Contains(msg.X, msg.Y) {
				a.Focus.SetFocus(FocusSidebar)
				if id, ok := a.Sidebar.ItemAt(msg.Y - g.Sidebar.Y); ok {
					cmd = msgCmd(SelectConversationMsg{ID: id})
				}
			}
		}
	}
	a.apply(a.Drag.Handle(msg, g))
	return cmd
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.Typing {
		return a.handleTypingKey(msg)
	}
	if msg.String() == "esc" && a.Drag.Active() {
		a.apply(a.Drag.Cancel())
		return nil
	}
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	slot, ok := a.focusedSlot()
	if !ok {
		_, cmd := a.Sidebar.Update(msg)
		return cmd
	}
	panel := a.Registry.At(slot)
	if panel == layout.Chat && (msg.String() == "i" || msg.String() == "enter") {
		a.Typing = true
		return a.ChatInput.Focus()
	}
	_, cmd := a.Panels[panel].Update(msg)
	return cmd
}

func (a *AppModel) handleTypingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		a.Typing = false
		a.ChatInput.Blur()
		return nil
	case "enter":
		text := strings.TrimSpace(a.ChatInput.Value())
		a.ChatInput.SetValue("")
		if text == "" {
			return nil
		}
		active, ok := a.Store.Active()
		if !ok {
			return nil
		}
		if err := a.Store.AppendChat(active.ID, conversation.Entry{Speaker: "You", Text: text}); err != nil {
			log.Printf("ui: %v", err)
			return nil
		}
		a.refreshContent()
		return nil
	}
	var cmd tea.Cmd
	a.ChatInput, cmd = a.ChatInput.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	g := a.Grid()

	cards := [len(layout.Slots)]string{}
	for _, s := range layout.Slots {
		view := a.Controller.Slot(s)
		body := a.Panels[view.Panel].View()
		if view.Panel == layout.Chat {
			body = lipgloss.JoinVertical(lipgloss.Left, body, a.ChatInput.View())
		}
		focused := a.Focus.Current == FocusForSlot(s)
		cards[s] = renderCard(g.Slots[s], view, focused, body)
	}
	right := lipgloss.JoinVertical(lipgloss.Left, cards[layout.TopRight], cards[layout.BottomRight])
	row := []string{cards[layout.Left], right}
	if a.ShowSidebar && g.Sidebar.W > 0 {
		row = append([]string{a.Sidebar.View()}, row...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.headerView(),
		lipgloss.JoinHorizontal(lipgloss.Top, row...),
		a.footerView(),
	)
}

func (a *AppModel) headerView() string {
	title := Styles.Title.Render("callassist")
	if active, ok := a.Store.Active(); ok {
		title += Styles.Muted.Render("  " + active.Title)
	}
	rec := Styles.Muted.Render("○ not recording")
	if a.Recording {
		rec = Styles.Record.Render("● REC")
	}
	return textutil.SpreadLine(title, rec, a.Width)
}

func (a *AppModel) footerView() string {
	if a.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(a.KeyHandler, a.Width)
	}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		return style.Render(textutil.Truncate(a.Status, a.Width))
	}
	hint := "Drag a panel header to rearrange · tab focus · [SPC] commands"
	if a.Typing {
		hint = "enter send · esc done"
	} else if a.Drag.Active() {
		hint = "Release to drop · esc cancel"
	}
	return Styles.Hint.Render(textutil.Truncate(hint, a.Width))
}
