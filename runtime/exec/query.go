package exec

import (
	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/runtime/vam/op"
	"github.com/brimdata/blockflow/vector"
)

// Query runs an operator tree as a vector.Puller and implements a Close()
// method that gracefully tears down the tree.
type Query struct {
	op.Operator
	rctx *runtime.Context
}

func NewQuery(rctx *runtime.Context, root op.Operator) *Query {
	return &Query{
		Operator: root,
		rctx:     rctx,
	}
}

func (q *Query) Close() error {
	q.rctx.Cancel()
	_, err := q.Operator.Pull(true)
	return err
}

func (q *Query) Pull(done bool) (*vector.Block, error) {
	if done {
		defer q.rctx.Cancel()
	}
	return q.Operator.Pull(done)
}
