package ui

import (
	"callassist/internal/conversation"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focus and drag borders
	ColorDanger    = "196" // Red - critical analysis items, recording dot
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBorder    = "238" // Dark gray - idle card borders
	ColorWarning   = "208" // Orange - warning analysis items
	ColorInfo      = "39"  // Blue - info analysis items
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - app header
	Card     lipgloss.Style // Idle slot card
	Focused  lipgloss.Style // Slot card with keyboard focus
	Dragging lipgloss.Style // Slot card whose panel is being dragged
	Header   lipgloss.Style // Card header label
	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Speaker  lipgloss.Style // Entry speaker/category label
	Record   lipgloss.Style // Recording indicator
	Status   lipgloss.Style // Footer status message
	Error    lipgloss.Style // Footer error message
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Dragging: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Faint(true),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Speaker: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Record: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// SeverityStyle returns the label style for an entry severity.
func SeverityStyle(s conversation.Severity) lipgloss.Style {
	switch s {
	case conversation.SeverityInfo:
		return Styles.Speaker.Foreground(lipgloss.Color(ColorInfo))
	case conversation.SeverityWarning:
		return Styles.Speaker.Foreground(lipgloss.Color(ColorWarning))
	case conversation.SeverityCritical:
		return Styles.Speaker.Foreground(lipgloss.Color(ColorDanger))
	default:
		return Styles.Speaker
	}
}

// NewCompactListDelegate returns a two-line delegate (title, date) with shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = true
	d.Styles.SelectedTitle = Styles.Selected.PaddingLeft(1)
	d.Styles.SelectedDesc = Styles.Muted.PaddingLeft(1)
	d.Styles.NormalTitle = Styles.Normal.PaddingLeft(1)
	d.Styles.NormalDesc = Styles.Muted.PaddingLeft(1)
	return d
}
