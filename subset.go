package fastcol

import (
	"fmt"

	"github.com/fastcol/fastcol/order"
)

// subSet is a bounded view over a sorted set, exposing only the
// elements in [from, to) under the target's order.
type subSet[E any] struct {
	target SortedSet[E]
	from   *E // nil means unbounded below
	to     *E // nil means unbounded above
}

// NewSubSet returns a view of target restricted to [from, to). A nil
// bound leaves that side unbounded. NewSubSet panics when both bounds
// are present and from sorts after to.
func NewSubSet[E any](target SortedSet[E], from, to *E) SortedSet[E] {
	if from != nil && to != nil && target.Order().Compare(*from, *to) > 0 {
		panic(fmt.Sprintf("fastcol: inverted sub-range bounds: from %v, to %v", *from, *to))
	}
	return &subSet[E]{target: target, from: from, to: to}
}

func (s *subSet[E]) inRange(e E) bool {
	ord := s.target.Order()
	if s.from != nil && ord.Compare(e, *s.from) < 0 {
		return false
	}
	if s.to != nil && ord.Compare(e, *s.to) >= 0 {
		return false
	}
	return true
}

// Iterator walks the target, skipping elements below from and stopping
// at the first element at or above to.
func (s *subSet[E]) Iterator() Iterator[E] {
	ord := s.target.Order()
	it := &filterIter[E]{
		it:   s.target.Iterator(),
		keep: func(e E) bool { return s.from == nil || ord.Compare(e, *s.from) >= 0 },
	}
	if s.to != nil {
		it.stop = func(e E) bool { return ord.Compare(e, *s.to) >= 0 }
	}
	return it
}

// Size counts by iteration; the view tracks no cardinality of its own.
func (s *subSet[E]) Size() int { return countSize[E](s) }

func (s *subSet[E]) IsEmpty() bool { return !s.Iterator().HasNext() }

// Contains is quiet about out-of-range elements: they are simply not
// part of the view.
func (s *subSet[E]) Contains(e E) bool {
	if !s.inRange(e) {
		return false
	}
	return s.target.Contains(e)
}

// Add rejects elements outside the view bounds loudly.
func (s *subSet[E]) Add(e E) (bool, error) {
	if !s.inRange(e) {
		return false, &BoundsError{Elem: e, Detail: "outside sub-range view bounds"}
	}
	return s.target.Add(e)
}

// Remove is quiet about out-of-range elements, like Contains.
func (s *subSet[E]) Remove(e E) (bool, error) {
	if !s.inRange(e) {
		return false, nil
	}
	return s.target.Remove(e)
}

// Clear removes only the elements within the view bounds.
func (s *subSet[E]) Clear() error {
	for _, e := range ToSlice[E](s) {
		if _, err := s.target.Remove(e); err != nil {
			return err
		}
	}
	return nil
}

// First walks the filtered iterator when a bound is present instead of
// reading the target's extreme directly.
func (s *subSet[E]) First() (E, error) {
	if s.from == nil && s.to == nil {
		return s.target.First()
	}
	it := s.Iterator()
	if !it.HasNext() {
		var zero E
		return zero, ErrEmpty
	}
	return it.Next(), nil
}

func (s *subSet[E]) Last() (E, error) {
	if s.from == nil && s.to == nil {
		return s.target.Last()
	}
	it := s.Iterator()
	if !it.HasNext() {
		var zero E
		return zero, ErrEmpty
	}
	last := it.Next()
	for it.HasNext() {
		last = it.Next()
	}
	return last, nil
}

func (s *subSet[E]) Order() order.Order[E]       { return s.target.Order() }
func (s *subSet[E]) Equality() order.Equality[E] { return s.target.Equality() }
func (s *subSet[E]) OrderSensitive() bool        { return s.target.OrderSensitive() }

// SubSet stacks a further bounded view over this one.
func (s *subSet[E]) SubSet(from, to *E) SortedSet[E] { return NewSubSet[E](s, from, to) }

func (s *subSet[E]) Shared() SortedSet[E]       { return NewShared[E](s) }
func (s *subSet[E]) Unmodifiable() SortedSet[E] { return NewUnmodifiable[E](s) }
func (s *subSet[E]) Split(n int) []SortedSet[E] { return NewSplit[E](s, n) }

func (s *subSet[E]) String() string { return Format[E](s) }
