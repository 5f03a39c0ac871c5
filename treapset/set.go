// Package treapset provides an ordered set backed by a treap.Map.
package treapset

import (
	"cmp"
	"iter"

	"github.com/metailurini/treap"
)

// Set is an ordered set of elements. Like treap.Map it is not safe for
// concurrent use.
type Set[E any] struct {
	m *treap.Map[E, struct{}]
}

// New returns an empty set using the natural ordering of E. See treap.New.
func New[E any](opts ...func(*treap.Config)) (*Set[E], error) {
	m, err := treap.New[E, struct{}](opts...)
	if err != nil {
		return nil, err
	}
	return &Set[E]{m: m}, nil
}

// NewOrdered returns an empty set ordered by cmp.Compare.
func NewOrdered[E cmp.Ordered](opts ...func(*treap.Config)) *Set[E] {
	return &Set[E]{m: treap.NewOrdered[E, struct{}](opts...)}
}

// NewFunc returns an empty set ordered by c.
func NewFunc[E any](c treap.Comparator[E], opts ...func(*treap.Config)) *Set[E] {
	return &Set[E]{m: treap.NewFunc[E, struct{}](c, opts...)}
}

// Add inserts e and reports whether it was not already present.
func (s *Set[E]) Add(e E) bool {
	_, replaced := s.m.Put(e, struct{}{})
	return !replaced
}

// Remove deletes e and reports whether it was present.
func (s *Set[E]) Remove(e E) bool {
	_, ok := s.m.Remove(e)
	return ok
}

// Contains reports whether e is in the set.
func (s *Set[E]) Contains(e E) bool {
	return s.m.Contains(e)
}

// Len returns the number of elements.
func (s *Set[E]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[E]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Clear removes all elements.
func (s *Set[E]) Clear() {
	s.m.Clear()
}

// First returns the smallest element.
func (s *Set[E]) First() (E, bool) {
	return key[E](s.m.First())
}

// Last returns the largest element.
func (s *Set[E]) Last() (E, bool) {
	return key[E](s.m.Last())
}

// Floor returns the greatest element <= e.
func (s *Set[E]) Floor(e E) (E, bool) {
	return key[E](s.m.Floor(e))
}

// Ceiling returns the smallest element >= e.
func (s *Set[E]) Ceiling(e E) (E, bool) {
	return key[E](s.m.Ceiling(e))
}

// Lower returns the greatest element < e.
func (s *Set[E]) Lower(e E) (E, bool) {
	return key[E](s.m.Lower(e))
}

// Higher returns the smallest element > e.
func (s *Set[E]) Higher(e E) (E, bool) {
	return key[E](s.m.Higher(e))
}

// PollFirst removes and returns the smallest element.
func (s *Set[E]) PollFirst() (E, bool) {
	return key[E](s.m.PollFirst())
}

// PollLast removes and returns the largest element.
func (s *Set[E]) PollLast() (E, bool) {
	return key[E](s.m.PollLast())
}

// Rank returns the number of elements strictly less than e.
func (s *Set[E]) Rank(e E) int {
	return s.m.RankOfKey(e)
}

// At returns the rank-th smallest element, 1-based.
func (s *Set[E]) At(rank int) (E, bool) {
	return key[E](s.m.EntryAtRank(rank))
}

// Split moves every element < e into a new set and returns it.
func (s *Set[E]) Split(e E) *Set[E] {
	return &Set[E]{m: s.m.Split(e)}
}

// All returns the elements in ascending order.
func (s *Set[E]) All() iter.Seq[E] {
	return s.m.Keys()
}

// Backward returns the elements in descending order.
func (s *Set[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range s.m.Backward() {
			if !yield(e) {
				return
			}
		}
	}
}

func key[E any](e treap.Entry[E, struct{}], ok bool) (E, bool) {
	return e.Key, ok
}
