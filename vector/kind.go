package vector

import "fmt"

// Kind is the logical type of a column.  Integer and float columns store
// their values in 64-bit slices and the kind fixes the width of the values.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindBytes:   "bytes",
}

func (k Kind) String() string {
	if k.Valid() || k == KindInvalid {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindBytes
}

// Width returns the number of bytes needed to represent a value of kind k
// or 0 if values of k vary in width.
func (k Kind) Width() int {
	switch k {
	case KindBool, KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	}
	return 0
}

func (k Kind) IsInt() bool {
	return k >= KindInt8 && k <= KindInt64
}

func (k Kind) IsUint() bool {
	return k >= KindUint8 && k <= KindUint64
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func KindFromString(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s && Kind(k) != KindInvalid {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown kind %q", s)
}
