package fastcol

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBasics(t *testing.T) {
	s := newIntSet(t, 1, 2, 3)
	shared := s.Shared()

	assert.Equal(t, 3, shared.Size())
	assert.True(t, shared.Contains(2))

	ok, err := shared.Add(4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, ToSlice[int](shared))

	first, err := shared.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	assert.Same(t, shared, shared.Shared(), "a shared view is already guarded")
}

// Writers and readers race on the same view; run with -race. A
// concurrent Contains must observe either the pre-add or the post-add
// state, never a torn one.
func TestSharedAddContainsRace(t *testing.T) {
	s := NewSortedTableSet(newIntSet(t).Order())
	shared := s.Shared()

	const n = 2000
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, err := shared.Add(i)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			shared.Contains(i)
			shared.Size()
		}
	}()
	wg.Wait()

	assert.Equal(t, n, shared.Size())
}

func TestSharedIteratorSnapshot(t *testing.T) {
	s := newIntSet(t, 1, 2, 3)
	shared := s.Shared()

	it := shared.Iterator()
	_, err := shared.Add(4)
	require.NoError(t, err)

	// The iterator keeps walking its snapshot.
	var got []int
	for it.HasNext() {
		got = append(got, it.Next())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 4, shared.Size())
}

// Views taken of a shared view keep the lock guarantee.
func TestSharedPropagation(t *testing.T) {
	s := NewSortedTableSet(newIntSet(t).Order())
	shared := s.Shared()

	from, to := 0, 1000
	sub := shared.SubSet(&from, &to)
	parts := shared.Split(4)

	var wg sync.WaitGroup
	wg.Add(2 + len(parts))
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_, _ = shared.Add(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			sub.Contains(i)
		}
	}()
	for _, part := range parts {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				part.Size()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, shared.Size())
	assert.Equal(t, 500, sub.Size())
}

func TestSharedConcurrentReadersProceed(t *testing.T) {
	s := newIntSet(t, 1, 2, 3)
	shared := s.Shared()

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.True(t, shared.Contains(2))
			}
		}()
	}
	wg.Wait()
}
