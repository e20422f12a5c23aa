package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPoolRecyclesWithNewGeneration(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	require.True(t, p.Alive(a))
	assert.Equal(t, 1, p.Len())

	assert.True(t, p.Destroy(a))
	assert.False(t, p.Alive(a))
	assert.False(t, p.Destroy(a), "stale handle must be ignored")

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index())
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.False(t, p.Alive(a))
	assert.True(t, p.Alive(b))
}

func TestStoreRejectsStaleHandles(t *testing.T) {
	p := NewEntityPool()
	s := NewStore[int]()

	a := p.Create()
	s.Set(a, 7)
	v, ok := s.Get(a)
	require.True(t, ok)
	assert.Equal(t, 7, *v)

	p.Destroy(a)
	b := p.Create()
	_, ok = s.Get(b)
	assert.False(t, ok, "new generation must not see the old component")

	s.Remove(a)
	assert.Equal(t, 0, s.Len())
	_, ok = s.Get(a)
	assert.False(t, ok)
}

func TestStoreEachAscendingIndex(t *testing.T) {
	p := NewEntityPool()
	s := NewStore[string]()
	ids := []EntityID{p.Create(), p.Create(), p.Create()}
	s.Set(ids[2], "c")
	s.Set(ids[0], "a")
	s.Set(ids[1], "b")

	var got []string
	s.Each(func(_ EntityID, v *string) { got = append(got, *v) })
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEach3OnlyVisitsFullMatches(t *testing.T) {
	p := NewEntityPool()
	sa, sb, sc := NewStore[int](), NewStore[int](), NewStore[int]()
	full, partial := p.Create(), p.Create()
	sa.Set(full, 1)
	sb.Set(full, 2)
	sc.Set(full, 3)
	sa.Set(partial, 1)
	sb.Set(partial, 2)

	var visited []EntityID
	Each3(sa, sb, sc, func(id EntityID, a, b, c *int) {
		visited = append(visited, id)
		assert.Equal(t, 6, *a+*b+*c)
	})
	assert.Equal(t, []EntityID{full}, visited)
}

func TestWorldDeferredDestruction(t *testing.T) {
	w := NewWorld()
	s := NewRegisteredStore[int](w.Registry())
	id := w.CreateEntity()
	s.Set(id, 1)

	w.MarkForDestruction(id)
	w.MarkForDestruction(id)
	assert.True(t, w.PendingDestruction(id))
	assert.True(t, w.Alive(id), "destruction waits for the flush")

	assert.Equal(t, 1, w.FlushDestroyQueue())
	assert.False(t, w.Alive(id))
	assert.False(t, w.PendingDestruction(id))
	assert.Equal(t, 0, s.Len())

	w.MarkForDestruction(id)
	assert.Equal(t, 0, w.FlushDestroyQueue(), "dead handles are not queued")
}
