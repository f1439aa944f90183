package ui

import (
	"fmt"
	"strings"
	"time"

	"callassist/internal/conversation"
	"callassist/internal/layout"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// emptyText is shown when a panel has nothing to display.
var emptyText = map[layout.PanelKind]string{
	layout.Transcript: "No transcript yet",
	layout.Analysis:   "No analysis available",
	layout.Chat:       "No messages. Press i to ask something.",
}

// EntriesFor returns the sequence of c shown by panel. Missing sequences are empty.
func EntriesFor(c conversation.Conversation, panel layout.PanelKind) []conversation.Entry {
	switch panel {
	case layout.Transcript:
		return c.Transcript
	case layout.Analysis:
		return c.Analysis
	case layout.Chat:
		return c.Chat
	}
	return nil
}

// EntriesView renders one panel's entries in a scrollable viewport. A view
// belongs to a panel, so its scroll position travels with the panel when
// slots are swapped.
type EntriesView struct {
	Kind     layout.PanelKind
	Entries  []conversation.Entry
	viewport viewport.Model
}

// Ensure EntriesView implements View.
var _ View = (*EntriesView)(nil)

// NewEntriesView creates an empty view for kind.
func NewEntriesView(kind layout.PanelKind) *EntriesView {
	return &EntriesView{
		Kind:     kind,
		viewport: viewport.New(0, 0),
	}
}

// SetEntries replaces the content. Chat follows the newest message.
func (v *EntriesView) SetEntries(entries []conversation.Entry) {
	v.Entries = entries
	v.refresh()
	if v.Kind == layout.Chat {
		v.viewport.GotoBottom()
	}
}

// SetSize sets the content area in cells.
func (v *EntriesView) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if v.viewport.Width == width && v.viewport.Height == height {
		return
	}
	v.viewport.Width = width
	v.viewport.Height = height
	v.refresh()
}

// Size returns the content area in cells.
func (v *EntriesView) Size() (width, height int) {
	return v.viewport.Width, v.viewport.Height
}

// ScrollBy moves the viewport by n lines (negative scrolls up).
func (v *EntriesView) ScrollBy(n int) {
	if n < 0 {
		v.viewport.LineUp(-n)
	} else {
		v.viewport.LineDown(n)
	}
}

func (v *EntriesView) refresh() {
	v.viewport.SetContent(v.render(v.viewport.Width))
}

func (v *EntriesView) render(width int) string {
	if len(v.Entries) == 0 {
		return Styles.Empty.Render(emptyText[v.Kind])
	}
	body := lipgloss.NewStyle()
	if width > 0 {
		body = body.Width(width)
	}
	var b strings.Builder
	for i, e := range v.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entryLabel(v.Kind, e))
		b.WriteString("\n")
		b.WriteString(body.Render(e.Text))
	}
	return b.String()
}

func entryLabel(kind layout.PanelKind, e conversation.Entry) string {
	label := SeverityStyle(e.Severity).Render(e.Speaker)
	if e.Severity != conversation.SeverityNone {
		label += " " + Styles.Muted.Render("["+e.Severity.String()+"]")
	}
	if kind != layout.Chat && e.At > 0 {
		label += " " + Styles.Hint.Render(formatOffset(e.At))
	}
	return label
}

// formatOffset renders a call offset as mm:ss.
func formatOffset(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}

// Init implements View.
func (v *EntriesView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *EntriesView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *EntriesView) View() string {
	return v.viewport.View()
}
