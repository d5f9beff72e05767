package fastcol

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmodifiable is returned when a mutating operation is invoked
	// on an unmodifiable view or on a collection that does not support
	// mutation.
	ErrUnmodifiable = errors.New("fastcol: collection is unmodifiable")

	// ErrEmpty is returned by First/Last on an empty collection.
	ErrEmpty = errors.New("fastcol: collection is empty")
)

// BoundsError indicates an attempt to insert an element outside the
// bounds of a sub-range view or outside the slice of a split partition.
//
// The original underlying error (if any) can be accessed via
// errors.Unwrap.
type BoundsError struct {
	Elem   any
	Detail string
	cause  error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("fastcol: element %v out of bounds: %s", e.Elem, e.Detail)
}

func (e *BoundsError) Unwrap() error { return e.cause }
