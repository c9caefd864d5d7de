package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ValueAt returns the value of vec at slot.
func ValueAt(vec Any, slot uint32) Value {
	switch vec := vec.(type) {
	case *Bool:
		return NewBoolValue(vec.Value(slot))
	case *Int:
		return NewIntValue(vec.kind, vec.Values[slot])
	case *Uint:
		return NewUintValue(vec.kind, vec.Values[slot])
	case *Float:
		return NewFloatValue(vec.kind, vec.Values[slot])
	case *String:
		return NewStringValue(vec.Value(slot))
	case *Bytes:
		return NewBytesValue(vec.Value(slot))
	case *Const:
		return vec.val
	case *View:
		return ValueAt(vec.Any, vec.Index[slot])
	}
	panic(fmt.Sprintf("vector: unknown vector type %T", vec))
}

// PackKey returns the value of a fixed-width vector at slot as raw bits
// occupying the low Kind().Width() bytes of the result.
func PackKey(vec Any, slot uint32) uint64 {
	switch vec := vec.(type) {
	case *Bool:
		if vec.Bits.IsSetDirect(slot) {
			return 1
		}
		return 0
	case *Int:
		return truncate(uint64(vec.Values[slot]), vec.kind.Width())
	case *Uint:
		return truncate(vec.Values[slot], vec.kind.Width())
	case *Float:
		return floatBits(vec.kind, vec.Values[slot])
	case *Const:
		return packValue(vec.val)
	case *View:
		return PackKey(vec.Any, vec.Index[slot])
	}
	panic(fmt.Sprintf("vector: cannot pack key of %T", vec))
}

func packValue(val Value) uint64 {
	if val.kind.IsFloat() {
		return floatBits(val.kind, val.Float())
	}
	return truncate(val.bits, val.kind.Width())
}

func truncate(bits uint64, width int) uint64 {
	if width >= 8 {
		return bits
	}
	return bits & (1<<(8*width) - 1)
}

func floatBits(kind Kind, f float64) uint64 {
	if kind == KindFloat32 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(f)
}

// AppendKey appends the key representation of the value of vec at slot to
// dst.  Fixed-width values are written little endian at their kind's width.
// Variable-width values are prefixed with their length as a uvarint so
// that keys concatenated from several columns are unambiguous.
func AppendKey(dst []byte, vec Any, slot uint32) []byte {
	switch vec := vec.(type) {
	case *String:
		b := vec.table.Bytes(slot)
		dst = binary.AppendUvarint(dst, uint64(len(b)))
		return append(dst, b...)
	case *Bytes:
		b := vec.table.Bytes(slot)
		dst = binary.AppendUvarint(dst, uint64(len(b)))
		return append(dst, b...)
	case *Const:
		return appendValue(dst, vec.val)
	case *View:
		return AppendKey(dst, vec.Any, vec.Index[slot])
	}
	return appendFixed(dst, PackKey(vec, slot), vec.Kind().Width())
}

func appendValue(dst []byte, val Value) []byte {
	if width := val.kind.Width(); width > 0 {
		return appendFixed(dst, packValue(val), width)
	}
	dst = binary.AppendUvarint(dst, uint64(len(val.bytes)))
	return append(dst, val.bytes...)
}

func appendFixed(dst []byte, bits uint64, width int) []byte {
	for range width {
		dst = append(dst, byte(bits))
		bits >>= 8
	}
	return dst
}
