package vector

type Uint struct {
	kind   Kind
	Values []uint64
}

var _ Any = (*Uint)(nil)

func NewUint(kind Kind, values []uint64) *Uint {
	return &Uint{kind: kind, Values: values}
}

func NewUintEmpty(kind Kind, length uint32) *Uint {
	return NewUint(kind, make([]uint64, 0, length))
}

func (u *Uint) Append(v uint64) {
	u.Values = append(u.Values, v)
}

func (u *Uint) Kind() Kind {
	return u.kind
}

func (u *Uint) Len() uint32 {
	return uint32(len(u.Values))
}

func (u *Uint) Value(slot uint32) uint64 {
	return u.Values[slot]
}
