package vector

// Const is a single value broadcast over every row of a vector.
type Const struct {
	val    Value
	length uint32
}

var _ Any = (*Const)(nil)

func NewConst(val Value, length uint32) *Const {
	return &Const{val: val, length: length}
}

func (c *Const) Kind() Kind {
	return c.val.Kind()
}

func (c *Const) Len() uint32 {
	return c.length
}

func (c *Const) Value() Value {
	return c.val
}

// IsConst reports whether every row of vec holds the same value by
// construction.  Such vectors carry no information for telling rows apart.
func IsConst(vec Any) bool {
	switch vec := vec.(type) {
	case *Const:
		return true
	case *View:
		return IsConst(vec.Any)
	}
	return false
}
