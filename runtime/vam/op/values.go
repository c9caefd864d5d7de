package op

import (
	"github.com/brimdata/blockflow/vector"
)

// Values is a leaf operator that emits a fixed list of blocks.
type Values struct {
	blocks []*vector.Block
}

var _ Operator = (*Values)(nil)

func NewValues(blocks ...*vector.Block) *Values {
	return &Values{blocks}
}

func (v *Values) Pull(done bool) (*vector.Block, error) {
	if done || len(v.blocks) == 0 {
		v.blocks = nil
		return nil, nil
	}
	block := v.blocks[0]
	v.blocks = v.blocks[1:]
	return block, nil
}

func (*Values) Describe() string {
	return "Values()"
}
