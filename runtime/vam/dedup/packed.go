package dedup

import (
	"github.com/brimdata/blockflow/vector"
	"github.com/kamstrup/intmap"
)

const packedKeySize = 8

type packedSet struct {
	shape  Shape
	shifts []uint
	keys   *intmap.Map[uint64, struct{}]
}

func newPackedSet(shape Shape) *packedSet {
	shifts := make([]uint, len(shape))
	for k, kind := range shape {
		shifts[k] = uint(8 * kind.Width())
	}
	return &packedSet{
		shape:  shape,
		shifts: shifts,
		keys:   intmap.New[uint64, struct{}](1024),
	}
}

func (p *packedSet) Insert(cols []vector.Any, slot uint32) bool {
	var key uint64
	for k, col := range cols {
		key = key<<p.shifts[k] | vector.PackKey(col, slot)
	}
	if _, ok := p.keys.Get(key); ok {
		return false
	}
	p.keys.Put(key, struct{}{})
	return true
}

func (p *packedSet) Rows() uint64 {
	return uint64(p.keys.Len())
}

func (p *packedSet) Bytes() uint64 {
	return p.Rows() * packedKeySize
}

func (*packedSet) Method() Method {
	return Packed
}

func (p *packedSet) Shape() Shape {
	return p.shape
}
