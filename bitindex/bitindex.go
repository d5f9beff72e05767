package bitindex

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// BitIndex is a growable set of non-negative integers packed 64 bits
// per word.
type BitIndex struct {
	words []uint64
}

type options struct {
	capacity int // in bits
}

// Option configures New.
type Option func(*options)

// WithCapacity pre-allocates words for bits [0, n).
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// New creates an empty BitIndex.
func New(opts ...Option) *BitIndex {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &BitIndex{words: make([]uint64, 0, (o.capacity+wordBits-1)/wordBits)}
}

// FromWords creates a BitIndex holding a copy of the given words, word
// i carrying bits [64i, 64i+64).
func FromWords(words []uint64) *BitIndex {
	b := &BitIndex{words: make([]uint64, len(words))}
	copy(b.words, words)
	return b
}

func checkIndex(i int) {
	if i < 0 {
		panic(fmt.Sprintf("bitindex: negative index %d", i))
	}
}

func checkRange(from, to int) {
	if from < 0 || to < from {
		panic(fmt.Sprintf("bitindex: invalid range [%d, %d)", from, to))
	}
}

// ensureWords grows the word array to hold at least n words, doubling
// the current length so repeated growth stays amortized O(1).
func (b *BitIndex) ensureWords(n int) {
	if n <= len(b.words) {
		return
	}
	if n <= cap(b.words) {
		b.words = b.words[:n]
		return
	}
	grown := make([]uint64, n, max(2*len(b.words), n))
	copy(grown, b.words)
	b.words = grown
}

// trim drops trailing all-zero words.
func (b *BitIndex) trim() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	b.words = b.words[:n]
}

// Contains reports whether bit i is set. Bits beyond the word array
// are implicitly clear.
func (b *BitIndex) Contains(i int) bool {
	checkIndex(i)
	w := i >> 6
	return w < len(b.words) && b.words[w]&(1<<(uint(i)&63)) != 0
}

// Add sets bit i, growing the word array as needed, and reports
// whether the bit was previously clear.
func (b *BitIndex) Add(i int) bool {
	checkIndex(i)
	w := i >> 6
	b.ensureWords(w + 1)
	mask := uint64(1) << (uint(i) & 63)
	prev := b.words[w]&mask != 0
	b.words[w] |= mask
	return !prev
}

// Remove clears bit i and reports whether it was previously set.
func (b *BitIndex) Remove(i int) bool {
	checkIndex(i)
	w := i >> 6
	if w >= len(b.words) {
		return false
	}
	mask := uint64(1) << (uint(i) & 63)
	prev := b.words[w]&mask != 0
	b.words[w] &^= mask
	return prev
}

// Set sets bit i.
func (b *BitIndex) Set(i int) { b.Add(i) }

// Clear clears bit i.
func (b *BitIndex) Clear(i int) { b.Remove(i) }

// Flip inverts bit i, growing the word array as needed.
func (b *BitIndex) Flip(i int) {
	checkIndex(i)
	w := i >> 6
	b.ensureWords(w + 1)
	b.words[w] ^= 1 << (uint(i) & 63)
}

// SetRange sets every bit in [from, to).
func (b *BitIndex) SetRange(from, to int) {
	checkRange(from, to)
	if from == to {
		return
	}
	i, j := from>>6, to>>6
	b.ensureWords(j + 1)
	head := ^uint64(0) << (uint(from) & 63)
	tail := (uint64(1) << (uint(to) & 63)) - 1
	if i == j {
		b.words[i] |= head & tail
		return
	}
	b.words[i] |= head
	for k := i + 1; k < j; k++ {
		b.words[k] = ^uint64(0)
	}
	b.words[j] |= tail
}

// ClearRange clears every bit in [from, to). Bits beyond the word
// array are already clear, so the array never grows.
func (b *BitIndex) ClearRange(from, to int) {
	checkRange(from, to)
	if from == to {
		return
	}
	i, j := from>>6, to>>6
	if i >= len(b.words) {
		return
	}
	head := (uint64(1) << (uint(from) & 63)) - 1
	tail := ^uint64(0) << (uint(to) & 63)
	if i == j {
		b.words[i] &= head | tail
		return
	}
	b.words[i] &= head
	if j < len(b.words) {
		b.words[j] &= tail
	}
	for k := i + 1; k < j && k < len(b.words); k++ {
		b.words[k] = 0
	}
}

// FlipRange inverts every bit in [from, to), growing the word array as
// needed.
func (b *BitIndex) FlipRange(from, to int) {
	checkRange(from, to)
	if from == to {
		return
	}
	i, j := from>>6, to>>6
	b.ensureWords(j + 1)
	head := ^uint64(0) << (uint(from) & 63)
	tail := (uint64(1) << (uint(to) & 63)) - 1
	if i == j {
		b.words[i] ^= head & tail
		return
	}
	b.words[i] ^= head
	for k := i + 1; k < j; k++ {
		b.words[k] = ^b.words[k]
	}
	b.words[j] ^= tail
}

// And intersects b with other in place. Words of b beyond other's
// length are zeroed.
func (b *BitIndex) And(other *BitIndex) {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		b.words[i] &= other.words[i]
	}
	for i := n; i < len(b.words); i++ {
		b.words[i] = 0
	}
}

// AndNot clears from b every bit set in other. Words of b beyond
// other's length are left untouched: AndNot only clears bits actually
// present in other.
func (b *BitIndex) AndNot(other *BitIndex) {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		b.words[i] &^= other.words[i]
	}
}

// Or unions other into b in place, growing b to other's word count
// first.
func (b *BitIndex) Or(other *BitIndex) {
	b.ensureWords(len(other.words))
	for i, w := range other.words {
		b.words[i] |= w
	}
}

// Xor applies the symmetric difference of other to b in place, growing
// b to other's word count first.
func (b *BitIndex) Xor(other *BitIndex) {
	b.ensureWords(len(other.words))
	for i, w := range other.words {
		b.words[i] ^= w
	}
}

// Intersects reports whether b and other share at least one set bit.
func (b *BitIndex) Intersects(other *BitIndex) bool {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// NextSetBit returns the index of the first set bit at or after from,
// or -1 when none exists.
func (b *BitIndex) NextSetBit(from int) int {
	checkIndex(from)
	w := from >> 6
	if w >= len(b.words) {
		return -1
	}
	if word := b.words[w] >> (uint(from) & 63); word != 0 {
		return from + bits.TrailingZeros64(word)
	}
	for w++; w < len(b.words); w++ {
		if b.words[w] != 0 {
			return w*wordBits + bits.TrailingZeros64(b.words[w])
		}
	}
	return -1
}

// NextClearBit returns the index of the first clear bit at or after
// from. Bits beyond the word array are implicitly clear, so the result
// is always non-negative.
func (b *BitIndex) NextClearBit(from int) int {
	checkIndex(from)
	w := from >> 6
	if w >= len(b.words) {
		return from
	}
	if word := ^b.words[w] >> (uint(from) & 63); word != 0 {
		return from + bits.TrailingZeros64(word)
	}
	for w++; w < len(b.words); w++ {
		if word := ^b.words[w]; word != 0 {
			return w*wordBits + bits.TrailingZeros64(word)
		}
	}
	return len(b.words) * wordBits
}

// PreviousSetBit returns the index of the last set bit at or before
// from, or -1 when none exists.
func (b *BitIndex) PreviousSetBit(from int) int {
	checkIndex(from)
	w := from >> 6
	if w >= len(b.words) {
		w = len(b.words) - 1
		if w < 0 {
			return -1
		}
		from = w*wordBits + 63
	}
	if word := b.words[w] & (^uint64(0) >> (63 - uint(from)&63)); word != 0 {
		return w*wordBits + 63 - bits.LeadingZeros64(word)
	}
	for w--; w >= 0; w-- {
		if b.words[w] != 0 {
			return w*wordBits + 63 - bits.LeadingZeros64(b.words[w])
		}
	}
	return -1
}

// PreviousClearBit returns the index of the last clear bit at or
// before from, or -1 when bits 0..from are all set.
func (b *BitIndex) PreviousClearBit(from int) int {
	checkIndex(from)
	w := from >> 6
	if w >= len(b.words) {
		return from
	}
	if word := ^b.words[w] & (^uint64(0) >> (63 - uint(from)&63)); word != 0 {
		return w*wordBits + 63 - bits.LeadingZeros64(word)
	}
	for w--; w >= 0; w-- {
		if word := ^b.words[w]; word != 0 {
			return w*wordBits + 63 - bits.LeadingZeros64(word)
		}
	}
	return -1
}

// Cardinality returns the number of set bits.
func (b *BitIndex) Cardinality() int {
	sum := 0
	for _, w := range b.words {
		sum += bits.OnesCount64(w)
	}
	return sum
}

// Length returns the highest set bit plus one, or 0 when empty.
// Trailing all-zero words are trimmed as a side effect.
func (b *BitIndex) Length() int {
	b.trim()
	if len(b.words) == 0 {
		return 0
	}
	return len(b.words)*wordBits - bits.LeadingZeros64(b.words[len(b.words)-1])
}

// IsEmpty reports whether no bit is set.
func (b *BitIndex) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// ClearAll clears every bit and releases the word buffer.
func (b *BitIndex) ClearAll() {
	b.words = nil
}

// Words trims trailing zero words and returns the backing word array.
// The array aliases internal state: it is only valid until the next
// mutation.
func (b *BitIndex) Words() []uint64 {
	b.trim()
	return b.words
}

// Extract returns a new BitIndex holding a copy of the bits in
// [from, to).
func (b *BitIndex) Extract(from, to int) *BitIndex {
	checkRange(from, to)
	n := min(len(b.words), to>>6+1)
	out := &BitIndex{words: make([]uint64, n)}
	copy(out.words, b.words[:n])
	out.ClearRange(0, min(from, n*wordBits))
	if to < n*wordBits {
		out.ClearRange(to, n*wordBits)
	}
	return out
}

// Clone returns an independent copy.
func (b *BitIndex) Clone() *BitIndex {
	return FromWords(b.words)
}

// String renders the set bits in ascending order, e.g. "{1, 64, 65}".
func (b *BitIndex) String() string {
	out := []byte{'{'}
	for i := b.NextSetBit(0); i >= 0; i = b.NextSetBit(i + 1) {
		if len(out) > 1 {
			out = append(out, ", "...)
		}
		out = fmt.Appendf(out, "%d", i)
	}
	return string(append(out, '}'))
}
