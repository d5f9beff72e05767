package fastcol

import (
	"github.com/fastcol/fastcol/order"
)

// unmodifiableSet delegates every read to its target and rejects every
// mutation with ErrUnmodifiable before touching the target.
type unmodifiableSet[E any] struct {
	target SortedSet[E]
}

// NewUnmodifiable returns a read-only view of target. The target
// itself stays mutable; changes made through it remain visible in the
// view.
func NewUnmodifiable[E any](target SortedSet[E]) SortedSet[E] {
	return &unmodifiableSet[E]{target: target}
}

func (s *unmodifiableSet[E]) Iterator() Iterator[E] { return s.target.Iterator() }
func (s *unmodifiableSet[E]) Size() int             { return s.target.Size() }
func (s *unmodifiableSet[E]) IsEmpty() bool         { return s.target.IsEmpty() }
func (s *unmodifiableSet[E]) Contains(e E) bool     { return s.target.Contains(e) }
func (s *unmodifiableSet[E]) First() (E, error)     { return s.target.First() }
func (s *unmodifiableSet[E]) Last() (E, error)      { return s.target.Last() }

func (s *unmodifiableSet[E]) Add(E) (bool, error) { return false, ErrUnmodifiable }

func (s *unmodifiableSet[E]) Remove(E) (bool, error) { return false, ErrUnmodifiable }

func (s *unmodifiableSet[E]) Clear() error { return ErrUnmodifiable }

func (s *unmodifiableSet[E]) Order() order.Order[E]       { return s.target.Order() }
func (s *unmodifiableSet[E]) Equality() order.Equality[E] { return s.target.Equality() }
func (s *unmodifiableSet[E]) OrderSensitive() bool        { return s.target.OrderSensitive() }

// SubSet bounds the target first, then re-wraps so the slice stays
// read-only.
func (s *unmodifiableSet[E]) SubSet(from, to *E) SortedSet[E] {
	return NewUnmodifiable[E](s.target.SubSet(from, to))
}

func (s *unmodifiableSet[E]) Shared() SortedSet[E] { return NewShared[E](s) }

// Unmodifiable returns the view itself; stacking adds nothing.
func (s *unmodifiableSet[E]) Unmodifiable() SortedSet[E] { return s }

// Split keeps every partition read-only.
func (s *unmodifiableSet[E]) Split(n int) []SortedSet[E] {
	parts := s.target.Split(n)
	for i := range parts {
		parts[i] = NewUnmodifiable[E](parts[i])
	}
	return parts
}

func (s *unmodifiableSet[E]) String() string { return Format[E](s) }
