package conversation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func TestNew_AssignsUUID(t *testing.T) {
	c := New("call", testNow)
	_, err := uuid.Parse(c.ID)
	require.NoError(t, err)
	assert.NotEqual(t, c.ID, New("call", testNow).ID)
}

func TestStore_SortsNewestFirstAndActivatesNewest(t *testing.T) {
	seed := Seed(testNow)
	s := NewStore(seed[2], seed[0], seed[1])

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, seed[0].ID, list[0].ID)
	assert.Equal(t, seed[1].ID, list[1].ID)
	assert.Equal(t, seed[2].ID, list[2].ID)

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, seed[0].ID, active.ID)
}

func TestStore_EmptyHasNoActive(t *testing.T) {
	s := NewStore()
	_, ok := s.Active()
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStore_Select(t *testing.T) {
	seed := Seed(testNow)
	s := NewStore(seed...)

	require.NoError(t, s.Select(seed[2].ID))
	active, _ := s.Active()
	assert.Equal(t, "Intro: Initech", active.Title)

	err := s.Select("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	active, _ = s.Active()
	assert.Equal(t, seed[2].ID, active.ID, "failed select keeps the previous conversation")
}

func TestStore_AppendChat(t *testing.T) {
	seed := Seed(testNow)
	s := NewStore(seed...)

	require.NoError(t, s.AppendChat(seed[1].ID, Entry{Speaker: "You", Text: "summarize"}))
	for _, c := range s.List() {
		if c.ID == seed[1].ID {
			require.Len(t, c.Chat, 1)
			assert.Equal(t, "summarize", c.Chat[0].Text)
		}
	}
	assert.ErrorIs(t, s.AppendChat("missing", Entry{}), ErrNotFound)
}

func TestStore_NewCallIsActiveAndFirst(t *testing.T) {
	s := NewStore(Seed(testNow)...)
	before := s.Len()

	c := s.NewCall(testNow.Add(time.Minute))

	assert.Equal(t, before+1, s.Len())
	assert.Equal(t, NewCallTitle, c.Title)
	assert.Empty(t, c.Transcript)
	assert.Nil(t, c.Analysis)
	assert.Empty(t, c.Chat)

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, c.ID, active.ID)
	assert.Equal(t, c.ID, s.List()[0].ID)
}

func TestStore_NewCallOnEmptyStore(t *testing.T) {
	s := NewStore()
	c := s.NewCall(testNow)
	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, c.ID, active.ID)
}

func TestSeed_OldestCallHasNoAnalysis(t *testing.T) {
	seed := Seed(testNow)
	assert.Nil(t, seed[2].Analysis)
	assert.NotEmpty(t, seed[0].Analysis)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "", SeverityNone.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "critical", SeverityCritical.String())
}
