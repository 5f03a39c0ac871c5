package treap

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"sync"
)

// Map is an ordered map implemented as a treap: a binary search tree on keys
// that is also a min-heap on random per-entry priorities. Every mutation is
// expressed as splits and merges; there are no rotations and no parent
// pointers. Operations are O(log n) expected.
//
// A Map is not safe for concurrent use. Read-only looking operations such as
// Floor or RankOfKey temporarily restructure the tree, so even concurrent
// readers need exclusive access.
type Map[K, V any] struct {
	cmp        Comparator[K]
	root       *entry[K, V]
	cfg        Config
	priorities rand.Source
	stats      Stats

	checkInvariants bool
	nilable         bool

	// steps is scratch space shared by split and merge.
	steps     []step[K, V]
	entryPool *sync.Pool
}

// New returns an empty map ordered by the natural ordering of K: builtin
// integer, float and string kinds, or types implementing CmpType. It returns
// ErrInvalidKeyType for any other key type. An interface key type is checked
// per key instead: Compare panics with ErrInvalidKeyType on a dynamic type it
// cannot order.
func New[K, V any](opts ...func(*Config)) (*Map[K, V], error) {
	var zero K
	if reflect.TypeFor[K]().Kind() != reflect.Interface && !naturalOrder(zero) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyType, reflect.TypeFor[K]())
	}
	return newMap[K, V](Compare[K], buildConfig(opts)), nil
}

// NewOrdered returns an empty map ordered by cmp.Compare.
func NewOrdered[K cmp.Ordered, V any](opts ...func(*Config)) *Map[K, V] {
	return newMap[K, V](cmp.Compare[K], buildConfig(opts))
}

// NewFunc returns an empty map ordered by c. The comparator must define a
// strict total order and must not change for the lifetime of the map.
func NewFunc[K, V any](c Comparator[K], opts ...func(*Config)) *Map[K, V] {
	if c == nil {
		panic(fmt.Errorf("%w: nil comparator", ErrInvalidArgument))
	}
	return newMap[K, V](c, buildConfig(opts))
}

func newMap[K, V any](c Comparator[K], cfg Config) *Map[K, V] {
	m := &Map[K, V]{
		cmp:             c,
		cfg:             cfg,
		priorities:      cfg.prioritySource(),
		checkInvariants: cfg.checkInvariants,
		nilable:         nilableKey[K](),
		entryPool:       newEntryPool[K, V](),
	}
	log.Tracef("new map: key type %v, seeded %t, invariant checks %t",
		reflect.TypeFor[K](), cfg.seeded, cfg.checkInvariants)
	return m
}

// spawn returns an empty map with the same ordering and configuration. Its
// priority source is independent unless a custom source was configured.
func (m *Map[K, V]) spawn() *Map[K, V] {
	out := newMap[K, V](m.cmp, m.cfg)
	if m.cfg.source == nil {
		out.priorities = newRNGWithSeed(m.priorities.Uint64())
	}
	return out
}

func (m *Map[K, V]) checkKey(key K) {
	if m.nilable && isNilKey(key) {
		panic(ErrNilKey)
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return sizeOf(m.root)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	n := sizeOf(m.root)
	log.Debugf("clearing %d entries", n)
	m.stats.Discarded += uint64(n)
	m.root = nil
}

// find returns the entry for key or nil.
func (m *Map[K, V]) find(key K) *entry[K, V] {
	n := m.root
	for n != nil {
		c := m.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Get returns the value for a key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.checkKey(key)
	if n := m.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains returns true if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	m.checkKey(key)
	return m.find(key) != nil
}

// ContainsValue reports whether some entry's value satisfies match.
func (m *Map[K, V]) ContainsValue(match func(V) bool) bool {
	found := false
	m.walk(func(n *entry[K, V]) bool {
		found = match(n.value)
		return !found
	})
	return found
}

// Put inserts or updates the value for the given key.
// It returns the previous value and a flag indicating whether an existing
// entry was replaced. An existing entry keeps its priority.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	m.checkKey(key)

	var prev V
	if m.root == nil {
		m.root = m.acquireEntry(key, value)
		return prev, false
	}

	low, rest := m.split(m.root, key, false)
	match, high := m.split(rest, key, true)

	replaced := match != nil
	if replaced {
		prev = match.value
		match.value = value
	} else {
		match = m.acquireEntry(key, value)
	}

	m.root = m.merge(low, m.merge(match, high))
	m.checkTree()
	return prev, replaced
}

// Remove deletes the entry for key and returns its value.
// The boolean is false, and the map unchanged, if the key was absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	m.checkKey(key)

	var zero V
	if m.root == nil {
		return zero, false
	}

	low, rest := m.split(m.root, key, false)
	match, high := m.split(rest, key, true)
	m.root = m.merge(low, high)
	if match == nil {
		return zero, false
	}

	value := match.value
	m.releaseEntry(match)
	m.checkTree()
	return value, true
}

// First returns the entry with the smallest key.
func (m *Map[K, V]) First() (Entry[K, V], bool) {
	return exported(leftmost(m.root))
}

// Last returns the entry with the largest key.
func (m *Map[K, V]) Last() (Entry[K, V], bool) {
	return exported(rightmost(m.root))
}

// PollFirst removes and returns the entry with the smallest key.
func (m *Map[K, V]) PollFirst() (Entry[K, V], bool) {
	n := leftmost(m.root)
	if n == nil {
		return Entry[K, V]{}, false
	}
	e := n.export()
	m.Remove(e.Key)
	return e, true
}

// PollLast removes and returns the entry with the largest key.
func (m *Map[K, V]) PollLast() (Entry[K, V], bool) {
	n := rightmost(m.root)
	if n == nil {
		return Entry[K, V]{}, false
	}
	e := n.export()
	m.Remove(e.Key)
	return e, true
}

// Floor returns the entry with the greatest key <= key.
func (m *Map[K, V]) Floor(key K) (Entry[K, V], bool) {
	return exported(m.lastBelow(key, true))
}

// Lower returns the entry with the greatest key < key.
func (m *Map[K, V]) Lower(key K) (Entry[K, V], bool) {
	return exported(m.lastBelow(key, false))
}

// Ceiling returns the entry with the smallest key >= key.
func (m *Map[K, V]) Ceiling(key K) (Entry[K, V], bool) {
	return exported(m.firstAbove(key, false))
}

// Higher returns the entry with the smallest key > key.
func (m *Map[K, V]) Higher(key K) (Entry[K, V], bool) {
	return exported(m.firstAbove(key, true))
}

// lastBelow returns the rightmost entry of the low side of a split at key.
func (m *Map[K, V]) lastBelow(key K, inclusive bool) *entry[K, V] {
	var n *entry[K, V]
	m.peek(key, inclusive, func(low, _ *entry[K, V]) { n = rightmost(low) })
	return n
}

// firstAbove returns the leftmost entry of the high side of a split at key.
func (m *Map[K, V]) firstAbove(key K, inclusive bool) *entry[K, V] {
	var n *entry[K, V]
	m.peek(key, inclusive, func(_, high *entry[K, V]) { n = leftmost(high) })
	return n
}

// peek splits the tree at pivot, lets read inspect both halves and merges
// them back. The merge restores the previous arrangement of nodes because a
// treap's shape is determined by its keys and priorities.
func (m *Map[K, V]) peek(pivot K, inclusive bool, read func(low, high *entry[K, V])) {
	m.checkKey(pivot)
	low, high := m.split(m.root, pivot, inclusive)
	defer func() {
		m.root = m.merge(low, high)
	}()
	if navigateHook != nil {
		navigateHook(low, high)
	}
	read(low, high)
}

// successor returns the entry that follows n, or nil.
func (m *Map[K, V]) successor(n *entry[K, V]) *entry[K, V] {
	return m.firstAbove(n.key, true)
}

// predecessor returns the entry that precedes n, or nil.
func (m *Map[K, V]) predecessor(n *entry[K, V]) *entry[K, V] {
	return m.lastBelow(n.key, false)
}

// ValueAtRank returns the value of the rank-th smallest key, 1-based.
func (m *Map[K, V]) ValueAtRank(rank int) (V, bool) {
	e, ok := m.EntryAtRank(rank)
	return e.Value, ok
}

// EntryAtRank returns the entry of the rank-th smallest key, 1-based.
// It reports false when rank is outside [1, Len()].
func (m *Map[K, V]) EntryAtRank(rank int) (Entry[K, V], bool) {
	n := m.root
	for n != nil {
		left := sizeOf(n.left)
		switch {
		case rank == left+1:
			return n.export(), true
		case rank <= left:
			n = n.left
		default:
			rank -= left + 1
			n = n.right
		}
	}
	return Entry[K, V]{}, false
}

// RankOfKey returns the number of keys strictly less than key, whether or
// not key is present. For a present key its 1-based rank is RankOfKey+1.
func (m *Map[K, V]) RankOfKey(key K) int {
	rank := 0
	m.peek(key, false, func(low, _ *entry[K, V]) { rank = sizeOf(low) })
	return rank
}

// Split moves every entry with a key < key into a new map and returns it.
// The receiver keeps the remaining entries. Both maps share the ordering and
// configuration; no entry is shared between them.
func (m *Map[K, V]) Split(key K) *Map[K, V] {
	m.checkKey(key)

	low, high := m.split(m.root, key, false)
	m.root = high

	out := m.spawn()
	out.root = low
	log.Debugf("split at %v: moved %d entries, kept %d", key, sizeOf(low), sizeOf(high))

	m.checkTree()
	out.checkTree()
	return out
}

func exported[K, V any](n *entry[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.export(), true
}
