// Package dedup holds the key sets that back DISTINCT.  A Set is chosen
// once from the shape of the key columns and then only grows.
package dedup

import (
	"fmt"
	"strings"

	"github.com/brimdata/blockflow/runtime/limits"
	"github.com/brimdata/blockflow/vector"
)

var (
	ErrNoMethod      = fmt.Errorf("%w: no dedup method for key shape", limits.ErrInvariant)
	ErrShapeMismatch = fmt.Errorf("%w: key columns do not match dedup state", limits.ErrInvariant)
)

// Method names a Set representation.
type Method int

const (
	// Packed keys fit in a uint64 built from fixed-width columns.
	Packed Method = iota
	// Serialized keys are byte strings kept in an Arena.
	Serialized
)

func (m Method) String() string {
	switch m {
	case Packed:
		return "packed"
	case Serialized:
		return "serialized"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Set is a grow-only set of row keys.
type Set interface {
	// Insert adds the key formed by the values of cols at slot and reports
	// whether the key was not already present.
	Insert(cols []vector.Any, slot uint32) bool
	// Rows returns the number of keys in the set.
	Rows() uint64
	// Bytes returns the memory attributed to stored keys.
	Bytes() uint64
	Method() Method
	Shape() Shape
}

// Shape is the sequence of kinds of a set of key columns.
type Shape []vector.Kind

func ShapeOf(cols []vector.Any) Shape {
	shape := make(Shape, len(cols))
	for k, col := range cols {
		shape[k] = col.Kind()
	}
	return shape
}

// Matches reports whether cols have the kinds in s.
func (s Shape) Matches(cols []vector.Any) bool {
	if len(s) != len(cols) {
		return false
	}
	for k, col := range cols {
		if col.Kind() != s[k] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	names := make([]string, len(s))
	for k, kind := range s {
		names[k] = kind.String()
	}
	return "(" + strings.Join(names, ",") + ")"
}

// MethodFor returns the Method used for key columns of shape s.  Keys
// whose fixed widths add up to no more than eight bytes are packed and
// everything else is serialized.
func MethodFor(s Shape) (Method, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var width int
	fixed := true
	for _, kind := range s {
		if !kind.Valid() {
			return 0, false
		}
		w := kind.Width()
		if w == 0 {
			fixed = false
		}
		width += w
	}
	if fixed && width <= 8 {
		return Packed, true
	}
	return Serialized, true
}

// Choose picks the Set representation for key columns cols.
func Choose(cols []vector.Any) (Set, error) {
	shape := ShapeOf(cols)
	method, ok := MethodFor(shape)
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoMethod, shape)
	}
	switch method {
	case Packed:
		return newPackedSet(shape), nil
	case Serialized:
		return newSerializedSet(shape), nil
	}
	return nil, fmt.Errorf("%w %s", ErrNoMethod, shape)
}
