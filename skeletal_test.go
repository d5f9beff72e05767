package fastcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastcol/fastcol/order"
)

func newIntSet(t *testing.T, elems ...int) *SortedTableSet[int] {
	t.Helper()
	s := NewSortedTableSet(order.Natural[int]())
	_, err := AddAll[int](s, elems...)
	require.NoError(t, err)
	return s
}

func newIntTable(t *testing.T, elems ...int) *Table[int] {
	t.Helper()
	tab := NewTable[int](order.Natural[int]())
	_, err := AddAll[int](tab, elems...)
	require.NoError(t, err)
	return tab
}

func TestEqualOrderSensitive(t *testing.T) {
	a := newIntTable(t, 1, 2, 3)
	b := newIntTable(t, 1, 2, 3)
	c := newIntTable(t, 3, 2, 1)

	assert.True(t, Equal[int](a, b))
	assert.Equal(t, Hash[int](a), Hash[int](b))
	assert.False(t, Equal[int](a, c))
	assert.NotEqual(t, Hash[int](a), Hash[int](c))
}

func TestEqualOrderInsensitive(t *testing.T) {
	a := newIntSet(t, 1, 2, 3)
	b := newIntSet(t, 3, 1, 2)

	assert.True(t, Equal[int](a, b))
	assert.Equal(t, Hash[int](a), Hash[int](b))
	assert.False(t, Equal[int](a, newIntSet(t, 1, 2)))
	assert.False(t, Equal[int](a, newIntSet(t, 1, 2, 4)))
}

func TestEqualMixedSensitivityIsAlwaysUnequal(t *testing.T) {
	set := newIntSet(t, 1, 2, 3)
	tab := newIntTable(t, 1, 2, 3)

	assert.False(t, Equal[int](set, tab))
	assert.False(t, Equal[int](tab, set))
}

func TestToSliceAndFormat(t *testing.T) {
	s := newIntSet(t, 3, 1, 2)
	assert.Equal(t, []int{1, 2, 3}, ToSlice[int](s))
	assert.Equal(t, "[1, 2, 3]", Format[int](s))
	assert.Equal(t, "[]", Format[int](newIntSet(t)))
}

func TestAddAllReportsChange(t *testing.T) {
	s := newIntSet(t, 1, 2)
	changed, err := AddAll[int](s, 1, 2)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = AddAll[int](s, 2, 3)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, s.Size())
}

func TestContainsAll(t *testing.T) {
	s := newIntSet(t, 1, 2, 3, 4)
	assert.True(t, ContainsAll[int](s, newIntSet(t, 2, 4)))
	assert.False(t, ContainsAll[int](s, newIntSet(t, 2, 5)))
	assert.True(t, ContainsAll[int](s, newIntSet(t)))
}

func TestRemoveAll(t *testing.T) {
	s := newIntSet(t, 1, 2, 3, 4)
	changed, err := RemoveAll[int](s, newIntSet(t, 2, 4, 9))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 3}, ToSlice[int](s))
}

func TestRetainAll(t *testing.T) {
	s := newIntSet(t, 1, 2, 3, 4, 5)
	changed, err := RetainAll[int](s, newIntSet(t, 2, 4, 9))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{2, 4}, ToSlice[int](s))

	changed, err = RetainAll[int](s, newIntSet(t, 2, 4))
	require.NoError(t, err)
	assert.False(t, changed)
}
