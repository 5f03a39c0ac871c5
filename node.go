package treap

// entry holds key/value, the heap priority and the cached subtree size.
type entry[K, V any] struct {
	key   K
	value V
	// priority is assigned once at creation; the tree is a min-heap on it.
	priority    uint64
	left, right *entry[K, V]
	size        int
}

// Entry is a key/value pair copied out of a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func sizeOf[K, V any](n *entry[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// update recomputes size from the children.
func (n *entry[K, V]) update() {
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1
}

func (n *entry[K, V]) export() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// leftmost follows the left spine of t.
func leftmost[K, V any](t *entry[K, V]) *entry[K, V] {
	if t == nil {
		return nil
	}
	for t.left != nil {
		t = t.left
	}
	return t
}

// rightmost follows the right spine of t.
func rightmost[K, V any](t *entry[K, V]) *entry[K, V] {
	if t == nil {
		return nil
	}
	for t.right != nil {
		t = t.right
	}
	return t
}
