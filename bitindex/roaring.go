package bitindex

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring copies the set bits into a new roaring bitmap. Bits at or
// beyond 1<<32 do not fit a roaring container and panic.
func (b *BitIndex) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := b.NextSetBit(0); i >= 0; i = b.NextSetBit(i + 1) {
		if i > int(^uint32(0)) {
			panic("bitindex: bit does not fit a 32-bit roaring bitmap")
		}
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring creates a BitIndex holding the same elements as rb.
func FromRoaring(rb *roaring.Bitmap) *BitIndex {
	if rb.IsEmpty() {
		return New()
	}
	b := New(WithCapacity(int(rb.Maximum()) + 1))
	it := rb.Iterator()
	for it.HasNext() {
		b.Set(int(it.Next()))
	}
	return b
}
