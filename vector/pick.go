package vector

import "github.com/brimdata/blockflow/vector/bitvec"

// Pick takes any vector vec and an index and returns a new vector consisting of the
// elements in the index.
func Pick(vec Any, index []uint32) Any {
	switch vec := vec.(type) {
	case *Bool:
		bits := bitvec.NewFalse(uint32(len(index)))
		for k, slot := range index {
			if vec.Bits.IsSetDirect(slot) {
				bits.Set(uint32(k))
			}
		}
		return NewBool(bits)
	case *Int:
		return NewInt(vec.kind, pickSlice(vec.Values, index))
	case *Uint:
		return NewUint(vec.kind, pickSlice(vec.Values, index))
	case *Float:
		return NewFloat(vec.kind, pickSlice(vec.Values, index))
	case *String:
		return NewString(vec.table.Pick(index))
	case *Bytes:
		return NewBytes(vec.table.Pick(index))
	case *Const:
		return NewConst(vec.val, uint32(len(index)))
	case *View:
		index2 := make([]uint32, len(index))
		for k, idx := range index {
			index2[k] = vec.Index[idx]
		}
		return NewView(vec.Any, index2)
	}
	return &View{vec, index}
}

func pickSlice[T any](values []T, index []uint32) []T {
	out := make([]T, len(index))
	for k, slot := range index {
		out[k] = values[slot]
	}
	return out
}

// Filter returns the rows of vec whose bit is set in mask, preserving
// their order.  mask must have the same length as vec.
func Filter(vec Any, mask bitvec.Bits) Any {
	if mask.TrueCount() == vec.Len() {
		return vec
	}
	return Pick(vec, mask.Index())
}
