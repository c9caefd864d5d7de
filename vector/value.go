package vector

import (
	"encoding/hex"
	"math"
	"strconv"
)

// Value is a single scalar of some Kind.  Fixed-width kinds keep their
// payload in bits and variable-width kinds in bytes.
type Value struct {
	kind  Kind
	bits  uint64
	bytes []byte
}

func NewBoolValue(b bool) Value {
	var bits uint64
	if b {
		bits = 1
	}
	return Value{kind: KindBool, bits: bits}
}

func NewIntValue(kind Kind, v int64) Value {
	return Value{kind: kind, bits: uint64(v)}
}

func NewUintValue(kind Kind, v uint64) Value {
	return Value{kind: kind, bits: v}
}

func NewFloatValue(kind Kind, v float64) Value {
	return Value{kind: kind, bits: math.Float64bits(v)}
}

func NewStringValue(s string) Value {
	return Value{kind: KindString, bytes: []byte(s)}
}

func NewBytesValue(b []byte) Value {
	return Value{kind: KindBytes, bytes: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Bool() bool {
	return v.bits != 0
}

func (v Value) Int() int64 {
	return int64(v.bits)
}

func (v Value) Uint() uint64 {
	return v.bits
}

func (v Value) Float() float64 {
	return math.Float64frombits(v.bits)
}

func (v Value) Bytes() []byte {
	return v.bytes
}

func (v Value) AsString() string {
	return string(v.bytes)
}

// Format renders v as text for display and CSV output.
func (v Value) Format() string {
	switch {
	case v.kind == KindBool:
		return strconv.FormatBool(v.Bool())
	case v.kind.IsInt():
		return strconv.FormatInt(v.Int(), 10)
	case v.kind.IsUint():
		return strconv.FormatUint(v.Uint(), 10)
	case v.kind == KindFloat32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case v.kind == KindFloat64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case v.kind == KindString:
		return string(v.bytes)
	case v.kind == KindBytes:
		return "0x" + hex.EncodeToString(v.bytes)
	}
	return ""
}

// Equal reports whether a and b have the same kind and the same key
// representation.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind.Width() == 0 {
		return string(a.bytes) == string(b.bytes)
	}
	return a.bits == b.bits
}
