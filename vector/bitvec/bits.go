package bitvec

import (
	"math/bits"
	"strings"
)

// Bits is a fixed-length bit vector.  Distinct uses it as the per-block
// filter mask.
type Bits struct {
	bits   []uint64
	length uint32
}

var Zero Bits

func New(bits []uint64, length uint32) Bits {
	return Bits{length: length, bits: bits}
}

func NewFalse(length uint32) Bits {
	return Bits{length: length, bits: make([]uint64, (length+63)/64)}
}

func NewTrue(n uint32) Bits {
	b := NewFalse(n)
	for i := range b.bits {
		b.bits[i] = ^uint64(0)
	}
	return b
}

func (b Bits) IsZero() bool {
	return b.length == 0
}

func (b Bits) Len() uint32 {
	return b.length
}

func (b Bits) IsSet(slot uint32) bool {
	return !b.IsZero() && slot < b.length && b.IsSetDirect(slot)
}

func (b Bits) IsSetDirect(slot uint32) bool {
	return (b.bits[slot>>6] & (1 << (slot & 0x3f))) != 0
}

// Set causes the bit at position slot to become true on an allocated
// bitvector, where slot must be smaller than the length of the bit vector.
func (b Bits) Set(slot uint32) {
	b.bits[slot>>6] |= (1 << (slot & 0x3f))
}

func (b Bits) TrueCount() uint32 {
	if b.IsZero() {
		return 0
	}
	var n uint32
	for _, bs := range b.bits {
		n += uint32(bits.OnesCount64(bs))
	}
	if numTailBits := b.length % 64; numTailBits > 0 {
		mask := ^uint64(0) << numTailBits
		unusedBits := b.bits[len(b.bits)-1] & mask
		n -= uint32(bits.OnesCount64(unusedBits))
	}
	return n
}

// Index returns the positions of the set bits in ascending order.
func (b Bits) Index() []uint32 {
	index := make([]uint32, 0, b.TrueCount())
	for k, word := range b.bits {
		for word != 0 {
			slot := uint32(k*64 + bits.TrailingZeros64(word))
			if slot >= b.length {
				break
			}
			index = append(index, slot)
			word &= word - 1
		}
	}
	return index
}

// helpful to have around for debugging
func (b Bits) String() string {
	if b.IsZero() {
		return "empty"
	}
	var s strings.Builder
	for k := range b.length {
		if b.IsSetDirect(k) {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}
