// Package order defines the pluggable comparison contract used by the
// collection engine: value equality, total ordering and an unsigned
// index function over a type.
//
// Implementations must keep the three operations consistent:
//   - Equal(x, y) implies Compare(x, y) == 0 and Index(x) == Index(y)
//   - Compare(x, y) < 0 implies Index(x) <= Index(y) (unsigned)
//
// The contract is caller-enforced; it is never checked at runtime.
// Violating it yields undefined ordering behavior in anything built on
// top of the order (sorted sets, sub-range views, split partitions).
package order
