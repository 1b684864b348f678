package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorIsDense(t *testing.T) {
	a := NewAllocator()
	keys := []Key{
		NodeKey(0), NodeKey(1), NodeKey(2),
		EdgeKey(0), EdgeKey(1),
		CounterKey(SizeU, 1, 1), CounterKey(SizeU, 1, 2),
		CounterKey(SizeW, 1, 1), CounterKey(Cut, 1, 1),
	}
	for i, key := range keys {
		assert.Equal(t, i+1, a.ID(key), "ids must be dense, in order of first request")
	}
	assert.Equal(t, len(keys), a.NbVars())
}

func TestAllocatorIdempotent(t *testing.T) {
	a := NewAllocator()
	first := a.ID(CounterKey(Cut, 3, 2))
	a.ID(NodeKey(7))
	a.ID(EdgeKey(7))
	assert.Equal(t, first, a.ID(CounterKey(Cut, 3, 2)))
	assert.Equal(t, 3, a.NbVars())
}

func TestAllocatorDistinguishesKinds(t *testing.T) {
	// Same numeric payload, different families or chains: never the same id.
	a := NewAllocator()
	ids := map[int]Key{}
	keys := []Key{
		NodeKey(1),
		EdgeKey(1),
		CounterKey(SizeU, 1, 1),
		CounterKey(SizeW, 1, 1),
		CounterKey(Cut, 1, 1),
	}
	for _, key := range keys {
		id := a.ID(key)
		if prev, ok := ids[id]; ok {
			t.Fatalf("key %v collides with key %v on id %d", key, prev, id)
		}
		ids[id] = key
	}
}

func TestAllocatorLookup(t *testing.T) {
	a := NewAllocator()
	id := a.ID(NodeKey(4))
	got, ok := a.Lookup(NodeKey(4))
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = a.Lookup(NodeKey(5))
	assert.False(t, ok)
	assert.Equal(t, 1, a.NbVars(), "Lookup must never allocate")
}
