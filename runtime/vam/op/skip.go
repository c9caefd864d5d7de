package op

import (
	"github.com/brimdata/blockflow/vector"
)

// Skip drops the first offset rows of its input.
type Skip struct {
	parent Operator
	offset uint64
	count  uint64
}

var _ Operator = (*Skip)(nil)

func NewSkip(parent Operator, offset uint64) *Skip {
	return &Skip{
		parent: parent,
		offset: offset,
	}
}

func (o *Skip) Pull(done bool) (*vector.Block, error) {
	for {
		block, err := o.parent.Pull(done)
		if block == nil || err != nil {
			return nil, err
		}
		if o.count >= o.offset {
			return block, nil
		}
		n := uint64(block.Len())
		remaining := o.offset - o.count
		if remaining < n {
			o.count = o.offset
			var index []uint32
			for i := remaining; i < n; i++ {
				index = append(index, uint32(i))
			}
			return block.Pick(index), nil
		}
		o.count += n
	}
}

func (o *Skip) Describe() string {
	return Describe("Skip", o.parent)
}
