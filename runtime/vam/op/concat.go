package op

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brimdata/blockflow/vector"
)

var ErrSchemaMismatch = errors.New("input columns differ")

// Concat emits the blocks of each of its parents in turn.  Every block must
// have the column names and kinds of the first block emitted.
type Concat struct {
	parents []Operator
	next    int
	names   []string
	kinds   []vector.Kind
}

var _ Operator = (*Concat)(nil)

func NewConcat(parents ...Operator) *Concat {
	return &Concat{parents: parents}
}

func (c *Concat) Pull(done bool) (*vector.Block, error) {
	if done {
		var err error
		for ; c.next < len(c.parents); c.next++ {
			if _, perr := c.parents[c.next].Pull(true); err == nil {
				err = perr
			}
		}
		return nil, err
	}
	for c.next < len(c.parents) {
		block, err := c.parents[c.next].Pull(false)
		if err != nil {
			return nil, err
		}
		if block != nil {
			if err := c.check(block); err != nil {
				return nil, err
			}
			return block, nil
		}
		c.next++
	}
	return nil, nil
}

func (c *Concat) check(block *vector.Block) error {
	if c.kinds == nil {
		c.names = block.Names
		c.kinds = blockKinds(block)
		return nil
	}
	if !c.matches(block) {
		return fmt.Errorf("%s: %w: want %s, got %s", c.parents[c.next].Describe(), ErrSchemaMismatch,
			formatSchema(c.names, c.kinds), formatSchema(block.Names, blockKinds(block)))
	}
	return nil
}

func (c *Concat) matches(block *vector.Block) bool {
	if block.ColumnCount() != len(c.kinds) {
		return false
	}
	for k, kind := range c.kinds {
		if block.Names[k] != c.names[k] || block.Column(k).Kind() != kind {
			return false
		}
	}
	return true
}

func (c *Concat) Describe() string {
	return Describe("Concat", c.parents...)
}

func blockKinds(block *vector.Block) []vector.Kind {
	kinds := make([]vector.Kind, block.ColumnCount())
	for k := range kinds {
		kinds[k] = block.Column(k).Kind()
	}
	return kinds
}

func formatSchema(names []string, kinds []vector.Kind) string {
	fields := make([]string, len(names))
	for k, name := range names {
		fields[k] = name + " " + kinds[k].String()
	}
	return "(" + strings.Join(fields, ", ") + ")"
}
