// Package fastcol provides in-memory ordered collections with pluggable
// comparison semantics.
//
// A collection is built leaf-to-root: concrete storage first, then zero
// or more stackable views on top of it. Every view holds only a
// reference to its target plus the metadata for its own transform, so
// construction is O(1) and destroying a view never affects the target.
//
//	ord := order.Natural[int]()
//	s := fastcol.NewSortedTableSet(ord)
//	s.Add(1)
//	s.Add(2)
//	s.Add(3)
//
//	from, to := 1, 3
//	sub := s.SubSet(&from, &to) // elements in [1, 3)
//	shared := s.Shared()        // reader/writer-lock guarded
//	frozen := s.Unmodifiable()  // mutators rejected
//	parts := s.Split(4)         // disjoint partitions for parallel scans
//
// # Comparison semantics
//
// Every collection is driven by an order.Equality (value equality plus
// an unsigned index function) or a full order.Order (adds a total
// ordering). The engine never manufactures comparison semantics on its
// own; callers pick one of the canonical orders from the order package
// or supply their own.
//
// # Concurrency
//
// Concrete storage has no internal synchronization; the non-concurrent
// path stays allocation- and lock-free. Concurrency guarantees exist
// only at the boundary of a shared view, which acquires a read lock
// for every read and a write lock for every mutation. Views taken of a
// shared view propagate the same lock. Calling back into the same
// shared view from within a comparator is unsupported and may
// deadlock.
//
// # Bit-packed indices
//
// The bitindex package provides a word-packed set of non-negative
// integers with bit-level set algebra, adaptable to a SortedSet so the
// whole view layer stacks over it.
package fastcol
