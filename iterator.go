package treap

import "iter"

// Iterator is a cursor over a Map in ascending or descending key order. Each
// step computes the successor (or predecessor) of the current entry, which
// costs O(log n) expected.
//
// Removing the current entry through Iterator.Remove is safe; the step after
// it is captured before the removal. Any other change to the map while an
// iterator is in use leaves the iterator undefined.
type Iterator[K, V any] struct {
	m       *Map[K, V]
	reverse bool
	started bool
	current *entry[K, V]
	next    *entry[K, V]
	key     K
	value   V
	valid   bool
}

// Iterator returns a new iterator positioned before the smallest key.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// ReverseIterator returns a new iterator positioned after the largest key,
// moving towards smaller keys.
func (m *Map[K, V]) ReverseIterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, reverse: true}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.key
}

// Value returns the value at the iterator's current position, including an
// update made by Put on the current key after the iterator moved there.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if it == nil || !it.valid {
		return zero
	}
	if it.current != nil {
		return it.current.value
	}
	return it.value
}

// Next advances the iterator and reports whether it points at an element.
// The first call moves to the first element in the iterator's direction.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.m == nil {
		return false
	}

	if !it.started {
		it.started = true
		if it.reverse {
			it.next = rightmost(it.m.root)
		} else {
			it.next = leftmost(it.m.root)
		}
	}

	n := it.next
	if n == nil {
		it.invalidate()
		return false
	}
	it.moveTo(n)
	return true
}

// SeekGE positions the iterator at the first element whose key is greater
// than or equal to key and reports whether such an element exists. A later
// Next continues in the iterator's direction.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.m == nil {
		return false
	}
	return it.seek(it.m.firstAbove(key, false))
}

// SeekLE positions the iterator at the last element whose key is less than
// or equal to key and reports whether such an element exists. A later Next
// continues in the iterator's direction.
func (it *Iterator[K, V]) SeekLE(key K) bool {
	if it == nil || it.m == nil {
		return false
	}
	return it.seek(it.m.lastBelow(key, true))
}

func (it *Iterator[K, V]) seek(n *entry[K, V]) bool {
	it.started = true
	if n == nil {
		it.next = nil
		it.invalidate()
		return false
	}
	it.moveTo(n)
	return true
}

// Remove deletes the element at the current position from the map. The
// iterator becomes invalid until the next call to Next, which continues with
// the element that followed the removed one. It reports false if there was
// no current element.
func (it *Iterator[K, V]) Remove() bool {
	if it == nil || !it.valid || it.current == nil {
		return false
	}
	key := it.key
	it.invalidate()
	_, ok := it.m.Remove(key)
	return ok
}

func (it *Iterator[K, V]) moveTo(n *entry[K, V]) {
	it.current = n
	it.key = n.key
	it.value = n.value
	it.valid = true
	if it.reverse {
		it.next = it.m.predecessor(n)
	} else {
		it.next = it.m.successor(n)
	}
}

func (it *Iterator[K, V]) invalidate() {
	if it == nil {
		return
	}
	it.current = nil
	it.valid = false
	var zeroK K
	var zeroV V
	it.key = zeroK
	it.value = zeroV
}

// All returns a sequence of the map's entries in ascending key order.
// Removing the yielded key from inside the loop is allowed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.sequence(false)
}

// Backward returns a sequence of the map's entries in descending key order.
// Removing the yielded key from inside the loop is allowed.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.sequence(true)
}

// Keys returns a sequence of the map's keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of the map's values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *Map[K, V]) sequence(reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := &Iterator[K, V]{m: m, reverse: reverse}
		for it.Next() {
			if !yield(it.key, it.value) {
				return
			}
		}
	}
}
