package bitindex

import (
	"github.com/fastcol/fastcol"
	"github.com/fastcol/fastcol/order"
)

// setAdapter exposes a BitIndex as a fastcol.SortedSet[int] under the
// natural order of non-negative integers, so the whole view layer
// (sub-range, shared, unmodifiable, split) stacks over packed bits.
type setAdapter struct {
	b   *BitIndex
	ord order.Order[int]
}

// AsSortedSet adapts b to a sorted set of its bit positions. The
// adapter mutates b in place; it owns no elements of its own.
func AsSortedSet(b *BitIndex) fastcol.SortedSet[int] {
	return &setAdapter{b: b, ord: order.Natural[int]()}
}

type bitIter struct {
	b    *BitIndex
	next int // -1 once exhausted
}

func (it *bitIter) HasNext() bool { return it.next >= 0 }

func (it *bitIter) Next() int {
	i := it.next
	it.next = it.b.NextSetBit(i + 1)
	return i
}

func (s *setAdapter) Iterator() fastcol.Iterator[int] {
	return &bitIter{b: s.b, next: s.b.NextSetBit(0)}
}

func (s *setAdapter) Size() int { return s.b.Cardinality() }

func (s *setAdapter) IsEmpty() bool { return s.b.IsEmpty() }

func (s *setAdapter) Contains(e int) bool {
	return e >= 0 && s.b.Contains(e)
}

// Add rejects negative elements; a bit position is inherently
// non-negative.
func (s *setAdapter) Add(e int) (bool, error) {
	if e < 0 {
		return false, &fastcol.BoundsError{Elem: e, Detail: "bit index must be non-negative"}
	}
	return s.b.Add(e), nil
}

func (s *setAdapter) Remove(e int) (bool, error) {
	if e < 0 {
		return false, nil
	}
	return s.b.Remove(e), nil
}

func (s *setAdapter) Clear() error {
	s.b.ClearAll()
	return nil
}

func (s *setAdapter) First() (int, error) {
	i := s.b.NextSetBit(0)
	if i < 0 {
		return 0, fastcol.ErrEmpty
	}
	return i, nil
}

func (s *setAdapter) Last() (int, error) {
	l := s.b.Length()
	if l == 0 {
		return 0, fastcol.ErrEmpty
	}
	return l - 1, nil
}

func (s *setAdapter) Order() order.Order[int]       { return s.ord }
func (s *setAdapter) Equality() order.Equality[int] { return s.ord }
func (s *setAdapter) OrderSensitive() bool          { return false }

func (s *setAdapter) SubSet(from, to *int) fastcol.SortedSet[int] {
	return fastcol.NewSubSet[int](s, from, to)
}

func (s *setAdapter) Shared() fastcol.SortedSet[int] { return fastcol.NewShared[int](s) }

func (s *setAdapter) Unmodifiable() fastcol.SortedSet[int] {
	return fastcol.NewUnmodifiable[int](s)
}

func (s *setAdapter) Split(n int) []fastcol.SortedSet[int] {
	return fastcol.NewSplit[int](s, n)
}

func (s *setAdapter) String() string { return s.b.String() }
