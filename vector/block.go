package vector

import (
	"fmt"

	"github.com/brimdata/blockflow/vector/bitvec"
)

// Block is a batch of rows stored as named columns of equal length.
// Blocks are not modified once built.
type Block struct {
	Names []string
	Cols  []Any
}

func NewBlock(names []string, cols []Any) (*Block, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("block has %d names but %d columns", len(names), len(cols))
	}
	for k, col := range cols {
		if col.Len() != cols[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows but column %q has %d", names[k], col.Len(), names[0], cols[0].Len())
		}
	}
	return &Block{Names: names, Cols: cols}, nil
}

func (b *Block) Len() uint32 {
	if len(b.Cols) == 0 {
		return 0
	}
	return b.Cols[0].Len()
}

func (b *Block) ColumnCount() int {
	return len(b.Cols)
}

func (b *Block) Column(k int) Any {
	return b.Cols[k]
}

func (b *Block) Lookup(name string) (Any, bool) {
	for k, n := range b.Names {
		if n == name {
			return b.Cols[k], true
		}
	}
	return nil, false
}

// Filter returns a new block holding the rows of b whose bit is set in mask.
func (b *Block) Filter(mask bitvec.Bits) *Block {
	cols := make([]Any, len(b.Cols))
	for k, col := range b.Cols {
		cols[k] = Filter(col, mask)
	}
	return &Block{Names: b.Names, Cols: cols}
}

// Pick returns a new block holding the rows of b at the positions in index.
func (b *Block) Pick(index []uint32) *Block {
	cols := make([]Any, len(b.Cols))
	for k, col := range b.Cols {
		cols[k] = Pick(col, index)
	}
	return &Block{Names: b.Names, Cols: cols}
}
