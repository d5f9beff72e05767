package fastcol

import (
	"github.com/fastcol/fastcol/order"
)

// Table is an insertion-ordered sequence of elements. Unlike the set
// implementations it is order-sensitive: two tables are equal only
// when they hold pairwise-equal elements in the same order, and its
// hash accumulates positionally. Duplicates are allowed.
type Table[E any] struct {
	eq    order.Equality[E]
	elems []E
}

// NewTable creates an empty table whose Contains/Remove use eq.
func NewTable[E any](eq order.Equality[E], opts ...Option) *Table[E] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[E]{
		eq:    eq,
		elems: make([]E, 0, o.capacity),
	}
}

// Add appends e to the end of the table.
func (t *Table[E]) Add(e E) (bool, error) {
	t.elems = append(t.elems, e)
	return true, nil
}

// Remove deletes the first element equal to e, if any.
func (t *Table[E]) Remove(e E) (bool, error) {
	for i, x := range t.elems {
		if t.eq.Equal(x, e) {
			t.elems = append(t.elems[:i], t.elems[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Contains reports whether an element equal to e is present.
func (t *Table[E]) Contains(e E) bool {
	for _, x := range t.elems {
		if t.eq.Equal(x, e) {
			return true
		}
	}
	return false
}

// Get returns the element at position i.
func (t *Table[E]) Get(i int) (E, error) {
	if i < 0 || i >= len(t.elems) {
		var zero E
		return zero, &BoundsError{Elem: i, Detail: "table position out of range"}
	}
	return t.elems[i], nil
}

// Clear removes every element, keeping the allocated capacity.
func (t *Table[E]) Clear() error {
	t.elems = t.elems[:0]
	return nil
}

// Iterator iterates in insertion order.
func (t *Table[E]) Iterator() Iterator[E] {
	return &sliceIter[E]{elems: t.elems}
}

// Size returns the number of elements.
func (t *Table[E]) Size() int { return len(t.elems) }

// IsEmpty reports whether the table holds no elements.
func (t *Table[E]) IsEmpty() bool { return len(t.elems) == 0 }

// Equality returns the element equality.
func (t *Table[E]) Equality() order.Equality[E] { return t.eq }

// OrderSensitive reports true: tables expose a total insertion order.
func (t *Table[E]) OrderSensitive() bool { return true }

func (t *Table[E]) String() string { return Format[E](t) }
