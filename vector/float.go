package vector

type Float struct {
	kind   Kind
	Values []float64
}

var _ Any = (*Float)(nil)

func NewFloat(kind Kind, values []float64) *Float {
	return &Float{kind: kind, Values: values}
}

func NewFloatEmpty(kind Kind, length uint32) *Float {
	return NewFloat(kind, make([]float64, 0, length))
}

func (f *Float) Append(v float64) {
	f.Values = append(f.Values, v)
}

func (f *Float) Kind() Kind {
	return f.kind
}

func (f *Float) Len() uint32 {
	return uint32(len(f.Values))
}

func (f *Float) Value(slot uint32) float64 {
	return f.Values[slot]
}
