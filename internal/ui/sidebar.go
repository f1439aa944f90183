package ui

import (
	"fmt"

	"callassist/internal/conversation"
	"callassist/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SelectConversationMsg is sent when the user picks a conversation from the sidebar.
type SelectConversationMsg struct {
	ID string
}

// conversationItem implements list.Item for a conversation.
type conversationItem struct {
	id, title string
	date      string
	entries   int
}

func (c conversationItem) FilterValue() string { return c.title }
func (c conversationItem) Title() string       { return c.title }
func (c conversationItem) Description() string {
	return fmt.Sprintf("%s · %d lines", c.date, c.entries)
}

// sidebarTitleRows is the list title line plus its bottom padding.
const sidebarTitleRows = 2

// Sidebar lists the conversation history.
type Sidebar struct {
	list     list.Model
	delegate list.DefaultDelegate
	ActiveID string
	convs    []conversation.Conversation
	width    int
}

// Ensure Sidebar implements View.
var _ View = (*Sidebar)(nil)

// NewSidebar creates an empty sidebar.
func NewSidebar() *Sidebar {
	d := NewCompactListDelegate()
	l := list.New(nil, d, 0, 0)
	l.Title = "History"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &Sidebar{list: l, delegate: d}
}

// SetConversations replaces the history, keeping the active conversation selected.
func (s *Sidebar) SetConversations(convs []conversation.Conversation, activeID string) {
	s.convs = convs
	s.ActiveID = activeID
	s.rebuild(true)
}

// rebuild regenerates list items; selectActive moves the cursor to the active conversation.
func (s *Sidebar) rebuild(selectActive bool) {
	items := make([]list.Item, len(s.convs))
	selected := s.list.Index()
	for i, c := range s.convs {
		title := c.Title
		if s.width > 2 {
			title = textutil.Truncate(title, s.width-2)
		}
		items[i] = conversationItem{
			id:      c.ID,
			title:   title,
			date:    c.Date.Format("Jan 2 15:04"),
			entries: len(c.Transcript),
		}
		if selectActive && c.ID == s.ActiveID {
			selected = i
		}
	}
	s.list.SetItems(items)
	s.list.Select(selected)
}

// SetSize sets the sidebar's outer size.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.list.SetSize(width, height)
	s.rebuild(false)
}

// SelectedID returns the ID under the cursor, or "" when the list is empty.
func (s *Sidebar) SelectedID() string {
	if it, ok := s.list.SelectedItem().(conversationItem); ok {
		return it.id
	}
	return ""
}

// ItemAt returns the conversation rendered at row, counted from the top of the
// sidebar, and moves the cursor onto it. Rows in the title or between items miss.
func (s *Sidebar) ItemAt(row int) (string, bool) {
	row -= sidebarTitleRows
	if row < 0 {
		return "", false
	}
	stride := s.delegate.Height() + s.delegate.Spacing()
	if stride <= 0 || row%stride >= s.delegate.Height() {
		return "", false
	}
	pos := row / stride
	if pos >= s.list.Paginator.PerPage {
		return "", false
	}
	idx := s.list.Paginator.Page*s.list.Paginator.PerPage + pos
	items := s.list.VisibleItems()
	if idx >= len(items) {
		return "", false
	}
	it, ok := items[idx].(conversationItem)
	if !ok {
		return "", false
	}
	s.list.Select(idx)
	return it.id, true
}

// Init implements View.
func (s *Sidebar) Init() tea.Cmd {
	return nil
}

// Update implements View. Enter selects the conversation under the cursor and
// n starts a new call; other keys go to list.Model (j/k/g/G navigation).
func (s *Sidebar) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			id := s.SelectedID()
			if id == "" {
				return s, nil
			}
			return s, msgCmd(SelectConversationMsg{ID: id})
		case "n":
			return s, msgCmd(NewCallMsg{})
		}
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// View implements View.
func (s *Sidebar) View() string {
	return lipgloss.NewStyle().
		Width(s.width).
		MaxWidth(s.width).
		Render(s.list.View())
}
