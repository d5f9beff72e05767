package fastcol

import (
	"fmt"

	"github.com/fastcol/fastcol/order"
)

// splitSet is one of parts partitions over a target set. An element e
// belongs to the partition Index(e) mod parts, so every element is
// routed to exactly one partition and the union of all partitions
// reconstructs the target with no overlap and no omission.
type splitSet[E any] struct {
	target SortedSet[E]
	index  int
	parts  int
}

// NewSplit partitions target into n disjoint views. NewSplit panics if
// n < 1; with n == 1 the single partition is the target itself.
func NewSplit[E any](target SortedSet[E], n int) []SortedSet[E] {
	if n < 1 {
		panic(fmt.Sprintf("fastcol: split requires at least one partition, got %d", n))
	}
	if n == 1 {
		return []SortedSet[E]{target}
	}
	parts := make([]SortedSet[E], n)
	for i := range parts {
		parts[i] = &splitSet[E]{target: target, index: i, parts: n}
	}
	return parts
}

func (s *splitSet[E]) owns(e E) bool {
	return int(s.target.Equality().Index(e)%uint64(s.parts)) == s.index
}

// Iterator walks the target, keeping only the elements routed to this
// partition.
func (s *splitSet[E]) Iterator() Iterator[E] {
	return &filterIter[E]{
		it:   s.target.Iterator(),
		keep: s.owns,
	}
}

// Size counts by iteration.
func (s *splitSet[E]) Size() int { return countSize[E](s) }

func (s *splitSet[E]) IsEmpty() bool { return !s.Iterator().HasNext() }

func (s *splitSet[E]) Contains(e E) bool {
	if !s.owns(e) {
		return false
	}
	return s.target.Contains(e)
}

// Add accepts only elements routed to this partition; anything else is
// a boundary violation.
func (s *splitSet[E]) Add(e E) (bool, error) {
	if !s.owns(e) {
		return false, &BoundsError{Elem: e, Detail: "element routed to another partition"}
	}
	return s.target.Add(e)
}

func (s *splitSet[E]) Remove(e E) (bool, error) {
	if !s.owns(e) {
		return false, nil
	}
	return s.target.Remove(e)
}

// Clear removes only the elements routed to this partition.
func (s *splitSet[E]) Clear() error {
	for _, e := range ToSlice[E](s) {
		if _, err := s.target.Remove(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *splitSet[E]) First() (E, error) {
	it := s.Iterator()
	if !it.HasNext() {
		var zero E
		return zero, ErrEmpty
	}
	return it.Next(), nil
}

func (s *splitSet[E]) Last() (E, error) {
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

func (s *splitSet[E]) Order() order.Order[E]       { return s.target.Order() }
func (s *splitSet[E]) Equality() order.Equality[E] { return s.target.Equality() }
func (s *splitSet[E]) OrderSensitive() bool        { return s.target.OrderSensitive() }

func (s *splitSet[E]) SubSet(from, to *E) SortedSet[E] { return NewSubSet[E](s, from, to) }
func (s *splitSet[E]) Shared() SortedSet[E]            { return NewShared[E](s) }
func (s *splitSet[E]) Unmodifiable() SortedSet[E]      { return NewUnmodifiable[E](s) }
func (s *splitSet[E]) Split(n int) []SortedSet[E]      { return NewSplit[E](s, n) }

func (s *splitSet[E]) String() string { return Format[E](s) }
