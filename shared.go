package fastcol

import (
	"sync"

	"github.com/fastcol/fastcol/order"
)

// sharedSet guards a sorted set with a reader/writer lock: reads take
// the read lock, mutations take the write lock, and each lock is held
// for exactly one target call. Views derived from a shared view keep
// using the same lock, so the guarantee never silently downgrades.
type sharedSet[E any] struct {
	target SortedSet[E]
	mu     *sync.RWMutex
}

// NewShared returns a reader/writer-lock guarded view of target.
//
// Re-entrant calls from within a caller-supplied comparator into the
// same shared view are unsupported and may deadlock.
func NewShared[E any](target SortedSet[E]) SortedSet[E] {
	return &sharedSet[E]{target: target, mu: new(sync.RWMutex)}
}

func shareWith[E any](target SortedSet[E], mu *sync.RWMutex) SortedSet[E] {
	return &sharedSet[E]{target: target, mu: mu}
}

// Iterator snapshots the target under the read lock and iterates the
// snapshot lock-free, so no lock outlives a single target call.
func (s *sharedSet[E]) Iterator() Iterator[E] {
	s.mu.RLock()
	snapshot := ToSlice[E](s.target)
	s.mu.RUnlock()
	return &sliceIter[E]{elems: snapshot}
}

func (s *sharedSet[E]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Size()
}

func (s *sharedSet[E]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.IsEmpty()
}

func (s *sharedSet[E]) Contains(e E) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Contains(e)
}

func (s *sharedSet[E]) Add(e E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Add(e)
}

func (s *sharedSet[E]) Remove(e E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Remove(e)
}

func (s *sharedSet[E]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Clear()
}

func (s *sharedSet[E]) First() (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.First()
}

func (s *sharedSet[E]) Last() (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Last()
}

func (s *sharedSet[E]) Order() order.Order[E]       { return s.target.Order() }
func (s *sharedSet[E]) Equality() order.Equality[E] { return s.target.Equality() }
func (s *sharedSet[E]) OrderSensitive() bool        { return s.target.OrderSensitive() }

// SubSet builds the bounded view under the read lock and keeps it
// guarded by the same lock.
func (s *sharedSet[E]) SubSet(from, to *E) SortedSet[E] {
	s.mu.RLock()
	inner := s.target.SubSet(from, to)
	s.mu.RUnlock()
	return shareWith[E](inner, s.mu)
}

// Shared returns the view itself; it is already guarded.
func (s *sharedSet[E]) Shared() SortedSet[E] { return s }

// Unmodifiable layers a read-only view on top; reads stay guarded by
// the underlying lock.
func (s *sharedSet[E]) Unmodifiable() SortedSet[E] { return NewUnmodifiable[E](s) }

// Split partitions the target and wraps every partition with the same
// lock, so concurrent partition scans stay guarded.
func (s *sharedSet[E]) Split(n int) []SortedSet[E] {
	s.mu.RLock()
	parts := s.target.Split(n)
	s.mu.RUnlock()
	for i := range parts {
		parts[i] = shareWith[E](parts[i], s.mu)
	}
	return parts
}

func (s *sharedSet[E]) String() string { return Format[E](s) }
