// Package op implements the operators of the block pipeline.  Each operator
// pulls blocks from its parent and is driven by exactly one goroutine.
package op

import (
	"strings"

	"github.com/brimdata/blockflow/vector"
)

//go:generate go tool mockgen -destination=./mock/mock_operator.go -package=mock . Operator

// Operator is a pipeline stage.  Pull returns nil at end of stream after
// which Pull must not be called again.  Describe returns a structural
// fingerprint of the operator tree rooted at the operator that carries no
// runtime state.
type Operator interface {
	vector.Puller
	Describe() string
}

// Describe formats a fingerprint as name(child, ...).
func Describe(name string, children ...Operator) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for k, child := range children {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(child.Describe())
	}
	b.WriteByte(')')
	return b.String()
}
