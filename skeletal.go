package fastcol

import (
	"fmt"
	"strings"
)

// Skeletal algorithms: every whole-collection operation below is
// written purely against the Collection primitives (Iterator, Size,
// Contains, Add, Remove), so a concrete storage type only implements
// those and delegates here.

// ToSlice drains a fresh iterator into a new slice.
func ToSlice[E any](c Collection[E]) []E {
	out := make([]E, 0, c.Size())
	for it := c.Iterator(); it.HasNext(); {
		out = append(out, it.Next())
	}
	return out
}

// AddAll inserts every element and reports whether the collection
// changed. It stops at the first error.
func AddAll[E any](c Collection[E], elems ...E) (bool, error) {
	changed := false
	for _, e := range elems {
		ok, err := c.Add(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// ContainsAll reports whether c contains every element of other.
func ContainsAll[E any](c, other Collection[E]) bool {
	for it := other.Iterator(); it.HasNext(); {
		if !c.Contains(it.Next()) {
			return false
		}
	}
	return true
}

// RemoveAll removes from c every element contained in other.
func RemoveAll[E any](c, other Collection[E]) (bool, error) {
	changed := false
	for it := other.Iterator(); it.HasNext(); {
		ok, err := c.Remove(it.Next())
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// RetainAll removes from c every element not contained in other.
// Doomed elements are collected first so removal never invalidates the
// scanning iterator.
func RetainAll[E any](c, other Collection[E]) (bool, error) {
	var doomed []E
	for it := c.Iterator(); it.HasNext(); {
		e := it.Next()
		if !other.Contains(e) {
			doomed = append(doomed, e)
		}
	}
	changed := false
	for _, e := range doomed {
		ok, err := c.Remove(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// Equal compares two collections under the engine's equality rules.
//
// Two order-sensitive collections are equal when they have the same
// size and pairwise-equal elements in iteration order. Two
// order-insensitive collections are equal when they have the same size
// and mutually contain each other. Mixing an order-sensitive and an
// order-insensitive collection is always unequal.
func Equal[E any](a, b Collection[E]) bool {
	if a.OrderSensitive() != b.OrderSensitive() {
		return false
	}
	if a.Size() != b.Size() {
		return false
	}
	if a.OrderSensitive() {
		eq := a.Equality()
		ia, ib := a.Iterator(), b.Iterator()
		for ia.HasNext() {
			if !ib.HasNext() || !eq.Equal(ia.Next(), ib.Next()) {
				return false
			}
		}
		return !ib.HasNext()
	}
	return ContainsAll(a, b) && ContainsAll(b, a)
}

// Hash combines element indices into a single value, consistently with
// Equal: order-sensitive collections accumulate 31*h + index in
// iteration order, order-insensitive collections sum indices so the
// result is independent of iteration order.
func Hash[E any](c Collection[E]) uint64 {
	eq := c.Equality()
	var h uint64
	for it := c.Iterator(); it.HasNext(); {
		idx := eq.Index(it.Next())
		if c.OrderSensitive() {
			h = 31*h + idx
		} else {
			h += idx
		}
	}
	return h
}

// Format renders the elements in iteration order, e.g. "[1, 2, 3]".
func Format[E any](c Collection[E]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for it := c.Iterator(); it.HasNext(); {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", it.Next())
	}
	sb.WriteByte(']')
	return sb.String()
}

// sliceIter iterates over a snapshot slice.
type sliceIter[E any] struct {
	elems []E
	pos   int
}

func (it *sliceIter[E]) HasNext() bool { return it.pos < len(it.elems) }

func (it *sliceIter[E]) Next() E {
	e := it.elems[it.pos]
	it.pos++
	return e
}

// filterIter wraps a target iterator with a keep predicate, buffering
// one element ahead so HasNext stays idempotent. An optional stop
// predicate terminates the scan early once elements can no longer
// match (sorted targets past an upper bound).
type filterIter[E any] struct {
	it    Iterator[E]
	keep  func(E) bool
	stop  func(E) bool
	next  E
	ahead bool
	done  bool
}

func (it *filterIter[E]) HasNext() bool {
	if it.ahead {
		return true
	}
	if it.done {
		return false
	}
	for it.it.HasNext() {
		e := it.it.Next()
		if it.stop != nil && it.stop(e) {
			it.done = true
			return false
		}
		if !it.keep(e) {
			continue
		}
		it.next = e
		it.ahead = true
		return true
	}
	it.done = true
	return false
}

func (it *filterIter[E]) Next() E {
	it.HasNext() // moves ahead
	it.ahead = false
	return it.next
}

// countSize counts elements by iteration; used by views that have no
// independent cardinality tracking.
func countSize[E any](c Collection[E]) int {
	n := 0
	for it := c.Iterator(); it.HasNext(); it.Next() {
		n++
	}
	return n
}
