package vector

type String struct {
	table BytesTable
}

var _ Any = (*String)(nil)

func NewString(table BytesTable) *String {
	return &String{table: table}
}

func NewStringEmpty(cap uint32) *String {
	return NewString(NewBytesTableEmpty(cap))
}

// NewStringFromSlice is a convenience for building small vectors.
func NewStringFromSlice(values []string) *String {
	s := NewStringEmpty(uint32(len(values)))
	for _, v := range values {
		s.Append(v)
	}
	return s
}

func (s *String) Append(v string) {
	if s.table.offsets == nil {
		s.table.offsets = []uint32{0}
	}
	s.table.bytes = append(s.table.bytes, v...)
	s.table.offsets = append(s.table.offsets, uint32(len(s.table.bytes)))
}

func (*String) Kind() Kind {
	return KindString
}

func (s *String) Len() uint32 {
	return s.table.Len()
}

func (s *String) Table() BytesTable {
	return s.table
}

func (s *String) Value(slot uint32) string {
	return s.table.String(slot)
}
