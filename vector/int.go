package vector

type Int struct {
	kind   Kind
	Values []int64
}

var _ Any = (*Int)(nil)

// NewInt returns a signed integer vector.  Each value must fit in the
// width of kind.
func NewInt(kind Kind, values []int64) *Int {
	return &Int{kind: kind, Values: values}
}

func NewIntEmpty(kind Kind, length uint32) *Int {
	return NewInt(kind, make([]int64, 0, length))
}

func (i *Int) Append(v int64) {
	i.Values = append(i.Values, v)
}

func (i *Int) Kind() Kind {
	return i.kind
}

func (i *Int) Len() uint32 {
	return uint32(len(i.Values))
}

func (i *Int) Value(slot uint32) int64 {
	return i.Values[slot]
}
