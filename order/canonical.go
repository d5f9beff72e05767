package order

import (
	"cmp"
	"encoding/binary"
	"hash/maphash"
	"math"
	"reflect"
	"unsafe"
)

const signBit = uint64(1) << 63

// Natural returns the natural order of T: equality by ==, ordering by
// cmp.Compare and an order-preserving unsigned index derived from the
// value itself.
func Natural[T cmp.Ordered]() Order[T] {
	return natural[T]{}
}

type natural[T cmp.Ordered] struct{}

func (natural[T]) Equal(a, b T) bool  { return a == b }
func (natural[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

func (natural[T]) Index(a T) uint64 { return naturalIndex(a) }

func (natural[T]) SubOrder(T) Order[T] { return nil }

// naturalIndex maps a value to an unsigned index that preserves the
// natural ordering: a < b implies naturalIndex(a) <= naturalIndex(b).
func naturalIndex(v any) uint64 {
	switch x := v.(type) {
	case int:
		return uint64(x) ^ signBit
	case int8:
		return uint64(x) ^ signBit
	case int16:
		return uint64(x) ^ signBit
	case int32:
		return uint64(x) ^ signBit
	case int64:
		return uint64(x) ^ signBit
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uintptr:
		return uint64(x)
	case float32:
		return floatIndex(float64(x))
	case float64:
		return floatIndex(x)
	case string:
		return prefixIndex(x, 0)
	default:
		return reflectIndex(v)
	}
}

// reflectIndex covers named types: the type switch above only matches
// the built-in kinds, so a type like `type ID int` falls through here
// and is indexed by its underlying kind.
func reflectIndex(v any) uint64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()) ^ signBit
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return floatIndex(rv.Float())
	case reflect.String:
		return prefixIndex(rv.String(), 0)
	default:
		return 0
	}
}

// floatIndex produces a total, order-preserving unsigned key for an
// IEEE-754 value: negative floats are bit-inverted, positive floats
// get the sign bit set. Negative zero maps to the positive-zero key;
// NaN is not supported by the natural order.
func floatIndex(f float64) uint64 {
	if f == 0 {
		return signBit
	}
	bits := math.Float64bits(f)
	if bits&signBit != 0 {
		return ^bits
	}
	return bits | signBit
}

// prefixIndex packs up to 8 bytes of s starting at offset into a
// big-endian uint64, so that byte-wise string ordering is preserved.
func prefixIndex(s string, offset int) uint64 {
	var buf [8]byte
	if offset < len(s) {
		copy(buf[:], s[offset:])
	}
	return binary.BigEndian.Uint64(buf[:])
}

// Standard returns the hash order of T: value equality with an index
// drawn from a collision-resistant hash of the value. Compare orders
// by index; distinct values with colliding indices compare equal, so
// this is a weak order suitable for bucketing, not for sorted output.
func Standard[T comparable]() Order[T] {
	return standard[T]{seed: maphash.MakeSeed()}
}

type standard[T comparable] struct {
	seed maphash.Seed
}

func (standard[T]) Equal(a, b T) bool { return a == b }

func (s standard[T]) Index(a T) uint64 { return maphash.Comparable(s.seed, a) }

func (s standard[T]) Compare(a, b T) int {
	ia, ib := s.Index(a), s.Index(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	default:
		return 0
	}
}

func (standard[T]) SubOrder(T) Order[T] { return nil }

// Identity returns the identity order over pointers to T: two elements
// are equal only when they are the same object, and the index is the
// object address.
func Identity[T any]() Order[*T] {
	return identity[T]{}
}

type identity[T any] struct{}

func (identity[T]) Equal(a, b *T) bool { return a == b }

func (identity[T]) Index(a *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(a)))
}

func (i identity[T]) Compare(a, b *T) int {
	ia, ib := i.Index(a), i.Index(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	default:
		return 0
	}
}

func (identity[T]) SubOrder(*T) Order[*T] { return nil }

// Lexical returns the lexical order over strings: byte-wise comparison
// where a proper prefix sorts before its extension. The index packs
// the first 8 bytes big-endian; SubOrder refines by the next 8-byte
// window, enabling hierarchical bucketing of long strings.
func Lexical() Order[string] {
	return lexical{}
}

type lexical struct {
	offset int
}

func (lexical) Equal(a, b string) bool { return a == b }

func (l lexical) Compare(a, b string) int {
	if l.offset > 0 {
		if l.offset < len(a) {
			a = a[l.offset:]
		} else {
			a = ""
		}
		if l.offset < len(b) {
			b = b[l.offset:]
		} else {
			b = ""
		}
	}
	return cmp.Compare(a, b)
}

func (l lexical) Index(a string) uint64 { return prefixIndex(a, l.offset) }

func (l lexical) SubOrder(a string) Order[string] {
	next := l.offset + 8
	if next >= len(a) {
		return nil
	}
	return lexical{offset: next}
}
