package treap

import "sync"

func (m *Map[K, V]) acquireEntry(key K, value V) *entry[K, V] {
	n, _ := m.entryPool.Get().(*entry[K, V])
	if n == nil {
		n = &entry[K, V]{}
	}
	n.key = key
	n.value = value
	n.priority = m.priorities.Uint64()
	n.left, n.right = nil, nil
	n.size = 1
	m.stats.Created++
	return n
}

func (m *Map[K, V]) releaseEntry(n *entry[K, V]) {
	if n == nil {
		return
	}

	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	n.priority = 0
	n.left, n.right = nil, nil
	n.size = 0
	m.stats.Discarded++

	m.entryPool.Put(n)
}

func newEntryPool[K, V any]() *sync.Pool {
	return &sync.Pool{New: func() any { return &entry[K, V]{} }}
}
