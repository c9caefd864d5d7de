package vector

// View selects rows of an underlying vector by index.  Pick returns a View
// for vector implementations it does not know how to materialize.
type View struct {
	Any
	Index []uint32
}

var _ Any = (*View)(nil)

func NewView(vec Any, index []uint32) *View {
	return &View{vec, index}
}

func (v *View) Len() uint32 {
	return uint32(len(v.Index))
}
