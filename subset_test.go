package fastcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubSetContainment(t *testing.T) {
	s := newIntSet(t, 1, 3, 5, 7, 9, 11)
	from, to := 3, 9
	sub := s.SubSet(&from, &to)

	assert.Equal(t, []int{3, 5, 7}, ToSlice[int](sub))
	assert.Equal(t, 3, sub.Size())
	assert.False(t, sub.IsEmpty())

	assert.True(t, sub.Contains(5))
	assert.False(t, sub.Contains(9), "upper bound is exclusive")
	assert.False(t, sub.Contains(1), "below lower bound")
	assert.True(t, s.Contains(1), "target keeps out-of-range elements")
}

func TestSubSetHalfOpenBounds(t *testing.T) {
	s := newIntSet(t, 1, 3, 5, 7)
	from, to := 3, 6

	lower := s.SubSet(&from, nil)
	assert.Equal(t, []int{3, 5, 7}, ToSlice[int](lower))

	upper := s.SubSet(nil, &to)
	assert.Equal(t, []int{1, 3, 5}, ToSlice[int](upper))

	all := s.SubSet(nil, nil)
	assert.Equal(t, []int{1, 3, 5, 7}, ToSlice[int](all))
}

func TestSubSetAddRejectsOutOfBounds(t *testing.T) {
	s := newIntSet(t, 5)
	from, to := 3, 9
	sub := s.SubSet(&from, &to)

	ok, err := sub.Add(4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sub.Add(10)
	assert.False(t, ok)
	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.False(t, s.Contains(10), "rejected add must not reach the target")

	// Query-time exclusions are quiet, not loud.
	ok, err = sub.Remove(10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubSetFirstLastWalkFilteredIterator(t *testing.T) {
	s := newIntSet(t, 1, 4, 6, 8, 20)
	from, to := 3, 10
	sub := s.SubSet(&from, &to)

	first, err := sub.First()
	require.NoError(t, err)
	assert.Equal(t, 4, first)

	last, err := sub.Last()
	require.NoError(t, err)
	assert.Equal(t, 8, last)

	// Bounds excluding everything leave an empty view.
	lo, hi := 100, 200
	empty := s.SubSet(&lo, &hi)
	assert.True(t, empty.IsEmpty())
	_, err = empty.First()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = empty.Last()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSubSetIteratorPeekAhead(t *testing.T) {
	s := newIntSet(t, 1, 5, 9)
	from, to := 2, 10
	it := s.SubSet(&from, &to).Iterator()

	// Repeated HasNext calls before the matching Next are idempotent.
	for i := 0; i < 5; i++ {
		assert.True(t, it.HasNext())
	}
	assert.Equal(t, 5, it.Next())
	assert.True(t, it.HasNext())
	assert.Equal(t, 9, it.Next())
	for i := 0; i < 3; i++ {
		assert.False(t, it.HasNext())
	}
}

func TestSubSetInvertedBoundsPanic(t *testing.T) {
	s := newIntSet(t, 1)
	from, to := 9, 3
	assert.Panics(t, func() { s.SubSet(&from, &to) })
}

func TestSubSetStacking(t *testing.T) {
	s := newIntSet(t, 1, 2, 3, 4, 5, 6, 7, 8)
	f1, t1 := 2, 8
	f2, t2 := 3, 6
	sub := s.SubSet(&f1, &t1).SubSet(&f2, &t2)
	assert.Equal(t, []int{3, 4, 5}, ToSlice[int](sub))
}

func TestSubSetClearRemovesOnlyInRange(t *testing.T) {
	s := newIntSet(t, 1, 3, 5, 7, 9)
	from, to := 3, 8
	require.NoError(t, s.SubSet(&from, &to).Clear())
	assert.Equal(t, []int{1, 9}, ToSlice[int](s))
}
