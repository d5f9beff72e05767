package order

// Equality decides whether two values are the same element and maps a
// value to an unsigned index used for bucketing and hashing.
type Equality[T any] interface {
	// Equal reports whether a and b are the same element.
	Equal(a, b T) bool

	// Index returns an unsigned index for a. Equal values must map to
	// the same index.
	Index(a T) uint64
}

// Order is a total order over T, consistent with its Equality.
//
// Implementations must guarantee that Equal(x, y) implies
// Compare(x, y) == 0, and that Compare(x, y) < 0 implies
// Index(x) <= Index(y) under unsigned comparison.
type Order[T any] interface {
	Equality[T]

	// Compare returns a negative value if a sorts before b, zero if
	// they sort together and a positive value if a sorts after b.
	Compare(a, b T) int

	// SubOrder returns a refined order for hierarchical bucketing of
	// elements sharing the index of a, or nil when no further
	// refinement exists.
	SubOrder(a T) Order[T]
}

// Func adapts plain functions to an Order. SubOrder is always nil.
type Func[T any] struct {
	EqualFunc   func(a, b T) bool
	CompareFunc func(a, b T) int
	IndexFunc   func(a T) uint64
}

// Equal implements Equality.
func (f Func[T]) Equal(a, b T) bool { return f.EqualFunc(a, b) }

// Compare implements Order.
func (f Func[T]) Compare(a, b T) int { return f.CompareFunc(a, b) }

// Index implements Equality.
func (f Func[T]) Index(a T) uint64 { return f.IndexFunc(a) }

// SubOrder implements Order; a Func has no refinement.
func (f Func[T]) SubOrder(T) Order[T] { return nil }
