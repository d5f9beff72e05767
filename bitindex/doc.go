// Package bitindex provides a bit-packed set of non-negative integers.
//
// A BitIndex stores its elements as 64-bit words, word i holding bits
// [64i, 64i+64). Single-bit operations are O(1) amortized; the word
// array doubles on growth and trailing all-zero words are trimmed when
// the true length is queried. Every instance owns its word buffer
// exclusively; buffers are never shared across instances.
//
// The only bulk representation exposed is the trimmed word array
// (Words); any file or wire format is the responsibility of an
// external serialization layer. Conversions to and from roaring
// bitmaps are provided for interoperability.
//
// A BitIndex has no internal synchronization. Use AsSortedSet followed
// by Shared for concurrent access.
package bitindex
