package treap

import (
	"fmt"
	"strings"
)

// walk visits entries in ascending key order until fn returns false. It uses
// an explicit stack and does not restructure the tree.
func (m *Map[K, V]) walk(fn func(n *entry[K, V]) bool) {
	var stack []*entry[K, V]
	for n := m.root; n != nil; n = n.left {
		stack = append(stack, n)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		for c := n.right; c != nil; c = c.left {
			stack = append(stack, c)
		}
	}
}

type frame[K, V any] struct {
	n     *entry[K, V]
	depth int
	tag   byte
}

// preorder visits every entry root first together with its depth (the root
// has depth 1) and a tag telling which child of its parent it is.
func (m *Map[K, V]) preorder(fn func(f frame[K, V])) {
	if m.root == nil {
		return
	}
	stack := []frame[K, V]{{n: m.root, depth: 1, tag: '*'}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f)
		if f.n.right != nil {
			stack = append(stack, frame[K, V]{n: f.n.right, depth: f.depth + 1, tag: 'R'})
		}
		if f.n.left != nil {
			stack = append(stack, frame[K, V]{n: f.n.left, depth: f.depth + 1, tag: 'L'})
		}
	}
}

// Height returns the number of entries on the longest root-to-leaf path.
func (m *Map[K, V]) Height() int {
	height := 0
	m.preorder(func(f frame[K, V]) {
		height = max(height, f.depth)
	})
	return height
}

// Dump renders the tree one entry per line, indented by depth, with each
// entry's priority and subtree size.
func (m *Map[K, V]) Dump() string {
	if m.root == nil {
		return "<empty>\n"
	}
	var b strings.Builder
	m.preorder(func(f frame[K, V]) {
		fmt.Fprintf(&b, "%s%c %v=%v (priority %d, size %d)\n",
			strings.Repeat("  ", f.depth-1), f.tag, f.n.key, f.n.value, f.n.priority, f.n.size)
	})
	return b.String()
}

// Validate checks size consistency, key order and heap order over the whole
// tree and returns an AssertError describing the first violation found.
func (m *Map[K, V]) Validate() error {
	if msg := m.validate(); msg != "" {
		return AssertError(msg)
	}
	return nil
}

func (m *Map[K, V]) validate() string {
	var msg string
	m.preorder(func(f frame[K, V]) {
		if msg != "" {
			return
		}
		n := f.n
		if want := sizeOf(n.left) + sizeOf(n.right) + 1; n.size != want {
			msg = fmt.Sprintf("size of %v is %d, want %d", n.key, n.size, want)
			return
		}
		if n.left != nil && n.left.priority < n.priority {
			msg = fmt.Sprintf("heap order broken between %v and left child %v", n.key, n.left.key)
			return
		}
		if n.right != nil && n.right.priority < n.priority {
			msg = fmt.Sprintf("heap order broken between %v and right child %v", n.key, n.right.key)
		}
	})
	if msg != "" {
		return msg
	}

	var prev *entry[K, V]
	m.walk(func(n *entry[K, V]) bool {
		if prev != nil && m.cmp(prev.key, n.key) >= 0 {
			msg = fmt.Sprintf("keys out of order: %v before %v", prev.key, n.key)
			return false
		}
		prev = n
		return true
	})
	return msg
}
