package fastcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Split reconstruction: the union of all partitions reproduces the
// original set exactly, with no element duplicated or dropped.
func TestSplitReconstruction(t *testing.T) {
	s := NewSortedTableSet(newIntSet(t).Order())
	for i := 0; i < 1200; i++ {
		_, err := s.Add(i * 7)
		require.NoError(t, err)
	}

	for _, n := range []int{1, 2, 7} {
		parts := s.Split(n)
		require.Len(t, parts, n)

		rebuilt := NewSortedTableSet(s.Order())
		total := 0
		for _, part := range parts {
			total += part.Size()
			for it := part.Iterator(); it.HasNext(); {
				ok, err := rebuilt.Add(it.Next())
				require.NoError(t, err)
				assert.True(t, ok, "split(%d): element yielded by two partitions", n)
			}
		}
		assert.Equal(t, s.Size(), total, "split(%d): cardinality mismatch", n)
		assert.True(t, Equal[int](s, rebuilt), "split(%d): reconstruction differs", n)
	}
}

func TestSplitRouting(t *testing.T) {
	s := newIntSet(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	parts := s.Split(3)
	eq := s.Equality()

	for i, part := range parts {
		for it := part.Iterator(); it.HasNext(); {
			e := it.Next()
			assert.Equal(t, i, int(eq.Index(e)%3), "element %d in wrong partition", e)
		}
	}
}

func TestSplitAddRouting(t *testing.T) {
	s := newIntSet(t)
	parts := s.Split(2)
	eq := s.Equality()

	e := 42
	home := int(eq.Index(e) % 2)
	ok, err := parts[home].Add(e)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = parts[1-home].Add(e)
	assert.False(t, ok)
	var be *BoundsError
	require.ErrorAs(t, err, &be)

	// Quiet exclusions on the foreign partition.
	assert.False(t, parts[1-home].Contains(e))
	ok, err = parts[1-home].Remove(e)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, s.Contains(e))
}

func TestSplitSinglePartitionIsTarget(t *testing.T) {
	s := newIntSet(t, 1, 2, 3)
	parts := s.Split(1)
	require.Len(t, parts, 1)
	assert.Equal(t, []int{1, 2, 3}, ToSlice[int](parts[0]))
}

func TestSplitPanicsOnNonPositive(t *testing.T) {
	s := newIntSet(t, 1)
	assert.Panics(t, func() { s.Split(0) })
	assert.Panics(t, func() { s.Split(-3) })
}

func TestSplitClearRemovesOnlyOwnSlice(t *testing.T) {
	s := newIntSet(t, 0, 1, 2, 3, 4, 5)
	parts := s.Split(2)
	before := parts[0].Size()
	require.NoError(t, parts[1].Clear())
	assert.Equal(t, before, s.Size())
	assert.True(t, parts[1].IsEmpty())
}
