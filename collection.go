package fastcol

import (
	"github.com/fastcol/fastcol/order"
)

// Iterator yields the elements of a collection one at a time.
//
// HasNext is idempotent: implementations that must look ahead (filtered
// views) buffer the pending element so repeated HasNext calls before
// the matching Next are safe. Next is undefined once HasNext reports
// false.
type Iterator[E any] interface {
	HasNext() bool
	Next() E
}

// Collection is the minimal contract shared by every collection and
// view in the engine.
//
// Mutators report whether the collection changed; they return
// ErrUnmodifiable when mutation is unsupported and a *BoundsError when
// a view rejects an element outside its slice.
type Collection[E any] interface {
	// Iterator returns a fresh iterator over the elements.
	Iterator() Iterator[E]

	// Size returns the number of elements. Views without independent
	// cardinality tracking count by iteration.
	Size() int

	// IsEmpty reports whether the collection holds no elements.
	IsEmpty() bool

	// Contains reports whether e is an element, under the collection's
	// equality.
	Contains(e E) bool

	// Add inserts e and reports whether the collection changed.
	Add(e E) (bool, error)

	// Remove deletes e and reports whether the collection changed.
	Remove(e E) (bool, error)

	// Clear removes every element.
	Clear() error

	// Equality returns the element equality driving Contains, Remove
	// and the skeletal Equal/Hash algorithms.
	Equality() order.Equality[E]

	// OrderSensitive reports whether the collection exposes a total
	// insertion order (list-like). It decides the equality and hashing
	// strategy used by Equal and Hash, and is fixed at construction
	// time.
	OrderSensitive() bool
}

// Set is a Collection with no duplicate elements.
type Set[E any] interface {
	Collection[E]
}

// SortedSet is a Set whose iteration follows a total order, with
// constructors for the composable views.
type SortedSet[E any] interface {
	Set[E]

	// Order returns the total order governing element placement.
	Order() order.Order[E]

	// First returns the smallest element, or ErrEmpty.
	First() (E, error)

	// Last returns the largest element, or ErrEmpty.
	Last() (E, error)

	// SubSet returns a view of the elements in [from, to). A nil bound
	// means unbounded on that side. SubSet panics if both bounds are
	// present and inverted under the governing order.
	SubSet(from, to *E) SortedSet[E]

	// Shared returns a reader/writer-lock guarded view.
	Shared() SortedSet[E]

	// Unmodifiable returns a view rejecting every mutation.
	Unmodifiable() SortedSet[E]

	// Split partitions the set into n disjoint views whose union
	// reconstructs it exactly. Split panics if n < 1.
	Split(n int) []SortedSet[E]
}
