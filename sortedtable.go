package fastcol

import (
	"github.com/fastcol/fastcol/order"
)

type options struct {
	capacity int
}

// Option configures concrete collection constructors.
type Option func(*options)

// WithCapacity pre-allocates backing storage for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// SortedTableSet is a sorted set backed by a single sorted slice.
// Lookup is O(log n) by binary search on the governing order; insert
// and remove shift the tail. It has no internal synchronization; wrap
// it in Shared for concurrent use.
type SortedTableSet[E any] struct {
	ord   order.Order[E]
	elems []E
}

// NewSortedTableSet creates an empty sorted set governed by ord.
func NewSortedTableSet[E any](ord order.Order[E], opts ...Option) *SortedTableSet[E] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &SortedTableSet[E]{
		ord:   ord,
		elems: make([]E, 0, o.capacity),
	}
}

// search locates e. pos is the first position whose element does not
// sort before e; found reports whether an equal element exists in the
// compare-zero run starting there. The run scan tolerates weak orders
// (distinct elements comparing equal).
func (s *SortedTableSet[E]) search(e E) (pos int, found bool) {
	lo, hi := 0, len(s.elems)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.ord.Compare(s.elems[mid], e) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for i := lo; i < len(s.elems) && s.ord.Compare(s.elems[i], e) == 0; i++ {
		if s.ord.Equal(s.elems[i], e) {
			return i, true
		}
	}
	return lo, false
}

// Add inserts e at its ordered position; it reports false when an
// equal element is already present.
func (s *SortedTableSet[E]) Add(e E) (bool, error) {
	pos, found := s.search(e)
	if found {
		return false, nil
	}
	var zero E
	s.elems = append(s.elems, zero)
	copy(s.elems[pos+1:], s.elems[pos:])
	s.elems[pos] = e
	return true, nil
}

// Remove deletes the element equal to e, if any.
func (s *SortedTableSet[E]) Remove(e E) (bool, error) {
	pos, found := s.search(e)
	if !found {
		return false, nil
	}
	s.elems = append(s.elems[:pos], s.elems[pos+1:]...)
	return true, nil
}

// Contains reports whether an element equal to e is present.
func (s *SortedTableSet[E]) Contains(e E) bool {
	_, found := s.search(e)
	return found
}

// Clear removes every element, keeping the allocated capacity.
func (s *SortedTableSet[E]) Clear() error {
	s.elems = s.elems[:0]
	return nil
}

// Iterator iterates in ascending order. Mutating the set invalidates
// outstanding iterators.
func (s *SortedTableSet[E]) Iterator() Iterator[E] {
	return &sliceIter[E]{elems: s.elems}
}

// Size returns the number of elements.
func (s *SortedTableSet[E]) Size() int { return len(s.elems) }

// IsEmpty reports whether the set holds no elements.
func (s *SortedTableSet[E]) IsEmpty() bool { return len(s.elems) == 0 }

// First returns the smallest element, or ErrEmpty.
func (s *SortedTableSet[E]) First() (E, error) {
	if len(s.elems) == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return s.elems[0], nil
}

// Last returns the largest element, or ErrEmpty.
func (s *SortedTableSet[E]) Last() (E, error) {
	if len(s.elems) == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return s.elems[len(s.elems)-1], nil
}

// Order returns the governing total order.
func (s *SortedTableSet[E]) Order() order.Order[E] { return s.ord }

// Equality returns the governing order, which doubles as the element
// equality.
func (s *SortedTableSet[E]) Equality() order.Equality[E] { return s.ord }

// OrderSensitive reports false: sets compare by mutual containment.
func (s *SortedTableSet[E]) OrderSensitive() bool { return false }

// SubSet returns a bounded view of this set.
func (s *SortedTableSet[E]) SubSet(from, to *E) SortedSet[E] {
	return NewSubSet[E](s, from, to)
}

// Shared returns a reader/writer-lock guarded view of this set.
func (s *SortedTableSet[E]) Shared() SortedSet[E] { return NewShared[E](s) }

// Unmodifiable returns a read-only view of this set.
func (s *SortedTableSet[E]) Unmodifiable() SortedSet[E] {
	return NewUnmodifiable[E](s)
}

// Split partitions this set into n disjoint views.
func (s *SortedTableSet[E]) Split(n int) []SortedSet[E] {
	return NewSplit[E](s, n)
}

func (s *SortedTableSet[E]) String() string { return Format[E](s) }
