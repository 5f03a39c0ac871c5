package treap

// Stats counts structural work done by a Map since it was created.
type Stats struct {
	// Splits is the number of split calls, transient ones included.
	Splits uint64
	// Merges is the number of merge calls.
	Merges uint64
	// Created is the number of entries allocated by Put.
	Created uint64
	// Discarded is the number of entries removed from the tree.
	Discarded uint64
}

// Stats returns a snapshot of the map's counters.
func (m *Map[K, V]) Stats() Stats {
	return m.stats
}
