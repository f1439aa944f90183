// Package conversation holds the call history shown in the sidebar and the
// transcript, analysis and chat sequences of each call.
package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades an entry. Transcript and chat entries are usually SeverityNone.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return ""
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Entry is one line of a transcript, one analysis item or one chat message.
// Speaker holds the speaker name or, for analysis items, the category.
type Entry struct {
	Speaker  string
	Text     string
	Severity Severity
	At       time.Duration // offset from call start
}

// Conversation is a single call.
type Conversation struct {
	ID         string
	Title      string
	Date       time.Time
	Transcript []Entry
	Analysis   []Entry
	Chat       []Entry
}

// New returns a conversation with a fresh ID.
func New(title string, date time.Time) Conversation {
	return Conversation{
		ID:    uuid.NewString(),
		Title: title,
		Date:  date,
	}
}
