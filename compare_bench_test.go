package treap

import (
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// orderedIntMap is the common surface the comparison benchmarks drive.
type orderedIntMap interface {
	put(k, v int)
	get(k int) bool
	remove(k int)
	floor(k int) bool
}

type treapAdapter struct{ m *Map[int, int] }

func (a treapAdapter) put(k, v int) { a.m.Put(k, v) }
func (a treapAdapter) get(k int) bool {
	_, ok := a.m.Get(k)
	return ok
}
func (a treapAdapter) remove(k int) { a.m.Remove(k) }
func (a treapAdapter) floor(k int) bool {
	_, ok := a.m.Floor(k)
	return ok
}

type treemapAdapter struct{ m *treemap.Map }

func (a treemapAdapter) put(k, v int) { a.m.Put(k, v) }
func (a treemapAdapter) get(k int) bool {
	_, ok := a.m.Get(k)
	return ok
}
func (a treemapAdapter) remove(k int) { a.m.Remove(k) }
func (a treemapAdapter) floor(k int) bool {
	found, _ := a.m.Floor(k)
	return found != nil
}

type btreeAdapter struct{ t *btree.BTreeG[modelItem] }

func (a btreeAdapter) put(k, v int) { a.t.ReplaceOrInsert(modelItem{k, v}) }
func (a btreeAdapter) get(k int) bool {
	_, ok := a.t.Get(modelItem{key: k})
	return ok
}
func (a btreeAdapter) remove(k int) { a.t.Delete(modelItem{key: k}) }
func (a btreeAdapter) floor(k int) bool {
	found := false
	a.t.DescendLessOrEqual(modelItem{key: k}, func(modelItem) bool {
		found = true
		return false
	})
	return found
}

type llrbAdapter struct{ t *llrb.LLRB }

func (a llrbAdapter) put(k, _ int) { a.t.ReplaceOrInsert(llrb.Int(k)) }
func (a llrbAdapter) get(k int) bool { return a.t.Has(llrb.Int(k)) }
func (a llrbAdapter) remove(k int) { a.t.Delete(llrb.Int(k)) }
func (a llrbAdapter) floor(k int) bool {
	found := false
	a.t.DescendLessOrEqual(llrb.Int(k), func(llrb.Item) bool {
		found = true
		return false
	})
	return found
}

func BenchmarkCompareOrderedMaps(b *testing.B) {
	impls := []struct {
		name string
		new  func() orderedIntMap
	}{
		{"Treap", func() orderedIntMap { return treapAdapter{NewOrdered[int, int]()} }},
		{"GodsRedBlack", func() orderedIntMap { return treemapAdapter{treemap.NewWithIntComparator()} }},
		{"BTree", func() orderedIntMap { return btreeAdapter{newModel().t} }},
		{"LLRB", func() orderedIntMap { return llrbAdapter{llrb.New()} }},
	}

	for _, dist := range distributions {
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range workloads {
				b.Run(workload.name, func(b *testing.B) {
					for _, impl := range impls {
						b.Run(impl.name, func(b *testing.B) {
							m := impl.new()
							for i := 0; i < benchKeyRange/2; i++ {
								m.put(i, i)
							}
							keys := newKeyStream(dist.kind, 1_000_003)
							r := keys.r

							b.ResetTimer()
							for i := 0; i < b.N; i++ {
								key := keys.next()
								if r.Intn(100) < workload.writePercent {
									if r.Intn(2) == 0 {
										m.put(key, i)
									} else {
										m.remove(key)
									}
								} else if r.Intn(2) == 0 {
									m.get(key)
								} else {
									m.floor(key)
								}
							}
						})
					}
				})
			}
		})
	}
}
