package treap

import "fmt"

// step records a node visited on a split or merge descent and the side it
// ends up on.
type step[K, V any] struct {
	n   *entry[K, V]
	low bool
}

// split partitions t into low, holding every key < pivot (<= pivot when
// inclusive), and high, holding the rest. The descent only records the
// path; pointers are rewired while unwinding it bottom-up.
func (m *Map[K, V]) split(t *entry[K, V], pivot K, inclusive bool) (low, high *entry[K, V]) {
	m.stats.Splits++

	path := m.steps[:0]
	for n := t; n != nil; {
		c := m.cmp(n.key, pivot)
		goesLow := c < 0 || (inclusive && c == 0)
		path = append(path, step[K, V]{n: n, low: goesLow})
		if goesLow {
			n = n.right
		} else {
			n = n.left
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		if s.low {
			s.n.right = low
			low = s.n
		} else {
			s.n.left = high
			high = s.n
		}
		s.n.update()
	}

	m.releaseSteps(path)
	return low, high
}

// merge joins a and b, where every key of a precedes every key of b. The
// node with the smaller priority among the two spine heads becomes the next
// parent; ties go to a.
func (m *Map[K, V]) merge(a, b *entry[K, V]) *entry[K, V] {
	m.stats.Merges++

	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if m.checkInvariants {
		if hi, lo := rightmost(a), leftmost(b); m.cmp(hi.key, lo.key) >= 0 {
			m.fail(fmt.Sprintf("merge of overlapping trees: %v >= %v", hi.key, lo.key))
		}
	}

	path := m.steps[:0]
	for a != nil && b != nil {
		if a.priority <= b.priority {
			path = append(path, step[K, V]{n: a, low: true})
			a = a.right
		} else {
			path = append(path, step[K, V]{n: b, low: false})
			b = b.left
		}
	}

	child := a
	if child == nil {
		child = b
	}
	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		if s.low {
			s.n.right = child
		} else {
			s.n.left = child
		}
		s.n.update()
		child = s.n
	}

	m.releaseSteps(path)
	return child
}

// releaseSteps keeps the scratch buffer for the next descent without
// holding on to the nodes it referenced.
func (m *Map[K, V]) releaseSteps(path []step[K, V]) {
	clear(path)
	m.steps = path[:0]
}

// fail logs and panics with an AssertError.
func (m *Map[K, V]) fail(msg string) {
	log.Criticalf("invariant violation: %s\n%v", msg, newLogClosure(m.Dump))
	panic(AssertError(msg))
}

// checkTree validates the whole tree after a mutation when invariant checks
// are enabled.
func (m *Map[K, V]) checkTree() {
	if !m.checkInvariants {
		return
	}
	if msg := m.validate(); msg != "" {
		m.fail(msg)
	}
}
