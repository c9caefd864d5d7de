package vector

import "unsafe"

type Bytes struct {
	table BytesTable
}

var _ Any = (*Bytes)(nil)

func NewBytes(table BytesTable) *Bytes {
	return &Bytes{table: table}
}

func NewBytesEmpty(cap uint32) *Bytes {
	return NewBytes(NewBytesTableEmpty(cap))
}

func (b *Bytes) Append(v []byte) {
	b.table.Append(v)
}

func (*Bytes) Kind() Kind {
	return KindBytes
}

func (b *Bytes) Len() uint32 {
	return b.table.Len()
}

func (b *Bytes) Value(slot uint32) []byte {
	return b.table.Bytes(slot)
}

func (b *Bytes) Table() BytesTable {
	return b.table
}

// BytesTable holds variable-length values back to back in one slice with
// an offsets slice delimiting them.
type BytesTable struct {
	offsets []uint32
	bytes   []byte
}

func NewBytesTable(offsets []uint32, bytes []byte) BytesTable {
	return BytesTable{offsets, bytes}
}

func NewBytesTableEmpty(cap uint32) BytesTable {
	return BytesTable{make([]uint32, 1, cap+1), nil}
}

func (b BytesTable) Bytes(slot uint32) []byte {
	return b.bytes[b.offsets[slot]:b.offsets[slot+1]]
}

func (b BytesTable) String(slot uint32) string {
	return string(b.bytes[b.offsets[slot]:b.offsets[slot+1]])
}

// UnsafeString returns the value at slot without copying.  The result must
// not outlive the table.
func (b BytesTable) UnsafeString(slot uint32) string {
	s := b.bytes[b.offsets[slot]:b.offsets[slot+1]]
	return unsafe.String(unsafe.SliceData(s), len(s))
}

func (b *BytesTable) Append(bytes []byte) {
	if b.offsets == nil {
		b.offsets = []uint32{0}
	}
	b.bytes = append(b.bytes, bytes...)
	b.offsets = append(b.offsets, uint32(len(b.bytes)))
}

func (b *BytesTable) Len() uint32 {
	if b.offsets == nil {
		return 0
	}
	return uint32(len(b.offsets) - 1)
}

func (b BytesTable) Pick(index []uint32) BytesTable {
	out := NewBytesTableEmpty(uint32(len(index)))
	for _, slot := range index {
		out.Append(b.Bytes(slot))
	}
	return out
}
