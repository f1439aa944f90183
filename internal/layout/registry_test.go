package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMap(t *testing.T) {
	m := DefaultMap()
	assert.Equal(t, Transcript, m.At(Left))
	assert.Equal(t, Analysis, m.At(TopRight))
	assert.Equal(t, Chat, m.At(BottomRight))
	assert.True(t, m.Valid())
}

func TestMap_SlotOf(t *testing.T) {
	m := DefaultMap().Swapped(Left, BottomRight)
	want := map[PanelKind]SlotID{Transcript: BottomRight, Analysis: TopRight, Chat: Left}
	for p, s := range want {
		got, ok := m.SlotOf(p)
		require.True(t, ok, p.String())
		assert.Equal(t, s, got, p.String())
	}

	r := NewRegistry()
	r.Swap(Left, BottomRight)
	assert.Equal(t, Left, r.SlotOf(Chat))
}

func TestMap_SlotOf_MissingPanel(t *testing.T) {
	m := Map{Transcript, Transcript, Chat}
	_, ok := m.SlotOf(Analysis)
	assert.False(t, ok)
}

func TestMap_Valid_RejectsDuplicates(t *testing.T) {
	m := Map{Transcript, Transcript, Chat}
	assert.False(t, m.Valid())
	assert.False(t, Map{Transcript, Analysis, PanelKind(7)}.Valid())
}

func TestRegistry_SwapExchanges(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Swap(Left, BottomRight))
	assert.Equal(t, Map{Chat, Analysis, Transcript}, r.Map())
}

func TestRegistry_SwapIsOwnInverse(t *testing.T) {
	for _, a := range Slots {
		for _, b := range Slots {
			r := NewRegistry()
			r.Swap(TopRight, BottomRight)
			start := r.Map()
			r.Swap(a, b)
			r.Swap(a, b)
			assert.Equal(t, start, r.Map(), "swap(%s,%s) twice", a, b)
		}
	}
}

func TestRegistry_SwapSameSlotIsSilentNoop(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.OnChange = func(before, after Map) { calls++ }

	for _, s := range Slots {
		assert.False(t, r.Swap(s, s))
	}
	assert.Equal(t, DefaultMap(), r.Map())
	assert.Zero(t, calls)
}

func TestRegistry_OnChangeReportsBeforeAndAfter(t *testing.T) {
	r := NewRegistry()
	var gotBefore, gotAfter Map
	r.OnChange = func(before, after Map) {
		gotBefore, gotAfter = before, after
	}
	r.Swap(Left, TopRight)
	assert.Equal(t, DefaultMap(), gotBefore)
	assert.Equal(t, Map{Analysis, Transcript, Chat}, gotAfter)
}

func TestRegistry_BijectionHoldsUnderRandomSwaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := NewRegistry()
	for i := 0; i < 1000; i++ {
		a := Slots[rng.Intn(len(Slots))]
		b := Slots[rng.Intn(len(Slots))]
		r.Swap(a, b)
		m := r.Map()
		require.True(t, m.Valid(), "after %d swaps: %v", i+1, m)
		for _, p := range Panels {
			s, ok := m.SlotOf(p)
			require.True(t, ok)
			assert.Equal(t, p, m.At(s))
		}
	}
}
