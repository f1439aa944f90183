package conversation

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNotFound is returned when a conversation ID is not in the store.
var ErrNotFound = errors.New("conversation not found")

// Store keeps conversations in memory, newest first, and tracks the active one.
type Store struct {
	convs  []Conversation
	active string
}

// NewStore returns a store holding convs. The newest conversation becomes active.
func NewStore(convs ...Conversation) *Store {
	s := &Store{}
	for _, c := range convs {
		s.Add(c)
	}
	if len(s.convs) > 0 {
		s.active = s.convs[0].ID
	}
	return s
}

// Add inserts c keeping the history sorted by date, newest first.
func (s *Store) Add(c Conversation) {
	s.convs = append(s.convs, c)
	sort.SliceStable(s.convs, func(i, j int) bool {
		return s.convs[i].Date.After(s.convs[j].Date)
	})
	if s.active == "" {
		s.active = c.ID
	}
}

// List returns a copy of the history.
func (s *Store) List() []Conversation {
	out := make([]Conversation, len(s.convs))
	copy(out, s.convs)
	return out
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	return len(s.convs)
}

// Active returns the active conversation. ok is false when the store is empty.
func (s *Store) Active() (Conversation, bool) {
	i := s.index(s.active)
	if i < 0 {
		return Conversation{}, false
	}
	return s.convs[i], true
}

// Select makes id the active conversation.
func (s *Store) Select(id string) error {
	if s.index(id) < 0 {
		return fmt.Errorf("select %q: %w", id, ErrNotFound)
	}
	s.active = id
	return nil
}

// NewCallTitle is the title given to conversations started with NewCall.
const NewCallTitle = "New Call"

// NewCall starts an empty conversation dated now, adds it and makes it active.
func (s *Store) NewCall(now time.Time) Conversation {
	c := New(NewCallTitle, now)
	s.Add(c)
	s.active = c.ID
	return c
}

// AppendChat adds a chat message to conversation id.
func (s *Store) AppendChat(id string, e Entry) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("append chat to %q: %w", id, ErrNotFound)
	}
	s.convs[i].Chat = append(s.convs[i].Chat, e)
	return nil
}

func (s *Store) index(id string) int {
	for i, c := range s.convs {
		if c.ID == id {
			return i
		}
	}
	return -1
}
