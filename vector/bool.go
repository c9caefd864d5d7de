package vector

import "github.com/brimdata/blockflow/vector/bitvec"

type Bool struct {
	Bits bitvec.Bits
}

var _ Any = (*Bool)(nil)

func NewBool(bits bitvec.Bits) *Bool {
	return &Bool{Bits: bits}
}

// NewBoolFromSlice is a convenience for building small vectors.
func NewBoolFromSlice(values []bool) *Bool {
	bits := bitvec.NewFalse(uint32(len(values)))
	for k, v := range values {
		if v {
			bits.Set(uint32(k))
		}
	}
	return NewBool(bits)
}

func (*Bool) Kind() Kind {
	return KindBool
}

func (b *Bool) Len() uint32 {
	return b.Bits.Len()
}

func (b *Bool) Value(slot uint32) bool {
	return b.Bits.IsSet(slot)
}
