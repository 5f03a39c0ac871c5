package treap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subtreeKeys[K, V any](t *entry[K, V]) []K {
	var keys []K
	var visit func(n *entry[K, V])
	visit = func(n *entry[K, V]) {
		if n == nil {
			return
		}
		visit(n.left)
		keys = append(keys, n.key)
		visit(n.right)
	}
	visit(t)
	return keys
}

func filledMap(t *testing.T, keys ...int) *Map[int, int] {
	t.Helper()
	m := newCheckedMap[int](t)
	for _, k := range keys {
		m.Put(k, k)
	}
	return m
}

func TestSplit_InclusiveAndExclusive(t *testing.T) {
	tests := []struct {
		name      string
		pivot     int
		inclusive bool
		low       []int
		high      []int
	}{
		{"exclusive present", 30, false, []int{10, 20}, []int{30, 40, 50}},
		{"inclusive present", 30, true, []int{10, 20, 30}, []int{40, 50}},
		{"exclusive absent", 35, false, []int{10, 20, 30}, []int{40, 50}},
		{"inclusive absent", 35, true, []int{10, 20, 30}, []int{40, 50}},
		{"below all", 0, true, nil, []int{10, 20, 30, 40, 50}},
		{"above all", 60, false, []int{10, 20, 30, 40, 50}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := filledMap(t, 30, 10, 50, 20, 40)
			low, high := m.split(m.root, tt.pivot, tt.inclusive)

			assert.Equal(t, tt.low, subtreeKeys(low))
			assert.Equal(t, tt.high, subtreeKeys(high))
			assert.Equal(t, len(tt.low), sizeOf(low))
			assert.Equal(t, len(tt.high), sizeOf(high))
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	m := newCheckedMap[int](t)
	low, high := m.split(nil, 1, true)
	assert.Nil(t, low)
	assert.Nil(t, high)
}

func TestMerge_WithEmptyTrees(t *testing.T) {
	m := filledMap(t, 1, 2, 3)
	root := m.root

	assert.Same(t, root, m.merge(root, nil))
	assert.Same(t, root, m.merge(nil, root))
	assert.Nil(t, m.merge(nil, nil))
}

func TestMerge_RestoresSplitShape(t *testing.T) {
	m := filledMap(t, 8, 3, 12, 1, 5, 9, 15, 4, 7)
	before := m.Dump()

	for pivot := 0; pivot <= 16; pivot++ {
		for _, inclusive := range []bool{false, true} {
			low, high := m.split(m.root, pivot, inclusive)
			m.root = m.merge(low, high)
			require.Equal(t, before, m.Dump(), "pivot %d inclusive %t", pivot, inclusive)
		}
	}
}

func TestMerge_TieGoesLeft(t *testing.T) {
	m := newCheckedMap[int](t)
	a := &entry[int, int]{key: 1, priority: 7, size: 1}
	b := &entry[int, int]{key: 2, priority: 7, size: 1}

	root := m.merge(a, b)
	assert.Same(t, a, root)
	assert.Same(t, b, root.right)
	assert.Equal(t, 2, root.size)
}

func TestMerge_RejectsOverlap(t *testing.T) {
	m := newCheckedMap[int](t)
	a := &entry[int, int]{key: 5, priority: 1, size: 1}
	b := &entry[int, int]{key: 5, priority: 2, size: 1}

	assert.Panics(t, func() { m.merge(a, b) })
}

func TestStats_CountStructuralWork(t *testing.T) {
	m := NewOrdered[int, int](WithSeed(1))

	m.Put(1, 1)
	assert.Equal(t, Stats{Created: 1}, m.Stats(), "first put just plants a root")

	m.Put(2, 2)
	s := m.Stats()
	assert.Equal(t, uint64(2), s.Splits)
	assert.Equal(t, uint64(2), s.Merges)
	assert.Equal(t, uint64(2), s.Created)

	m.Get(1)
	m.Contains(2)
	m.EntryAtRank(1)
	assert.Equal(t, s, m.Stats(), "lookups do not restructure")

	m.Floor(1)
	s = m.Stats()
	assert.Equal(t, uint64(3), s.Splits)
	assert.Equal(t, uint64(3), s.Merges)

	m.Remove(1)
	s = m.Stats()
	assert.Equal(t, uint64(5), s.Splits)
	assert.Equal(t, uint64(4), s.Merges)
	assert.Equal(t, uint64(1), s.Discarded)
}

func TestNavigateHook_SeesSplitTree(t *testing.T) {
	m := filledMap(t, 1, 2, 3, 4, 5, 6)

	var calls int
	navigateHook = func(low, high any) {
		calls++
		l := low.(*entry[int, int])
		h := high.(*entry[int, int])
		assert.Equal(t, 6, sizeOf(l)+sizeOf(h))
		for _, k := range subtreeKeys(l) {
			assert.Less(t, k, 4)
		}
	}
	defer func() { navigateHook = nil }()

	e, ok := m.Lower(4)
	require.True(t, ok)
	assert.Equal(t, 3, e.Key)
	assert.Equal(t, 1, calls)
	require.NoError(t, m.Validate())
}

func TestPool_ReusesEntries(t *testing.T) {
	m := newCheckedMap[string](t)
	m.Put(1, "a")
	n := m.find(1)
	m.Remove(1)

	assert.Equal(t, 0, n.size)
	assert.Equal(t, "", n.value)
	assert.Nil(t, n.left)
	assert.Nil(t, n.right)
}

func TestNavigationRestoresTreeWhenReadPanics(t *testing.T) {
	m := filledMap(t, 1, 2, 3, 4, 5, 6, 7, 8)
	before := m.Dump()

	navigateHook = func(low, high any) { panic("interrupted") }
	defer func() { navigateHook = nil }()

	assert.PanicsWithValue(t, "interrupted", func() { m.Floor(5) })
	assert.PanicsWithValue(t, "interrupted", func() { m.RankOfKey(2) })

	navigateHook = nil
	require.NoError(t, m.Validate())
	assert.Equal(t, before, m.Dump())
	assert.Equal(t, 8, m.Len())
}
