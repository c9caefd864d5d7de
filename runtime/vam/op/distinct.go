package op

import (
	"errors"
	"fmt"

	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/runtime/limits"
	"github.com/brimdata/blockflow/runtime/vam/dedup"
	"github.com/brimdata/blockflow/vector"
	"github.com/brimdata/blockflow/vector/bitvec"
	"go.uber.org/zap"
)

var ErrNoSuchColumn = errors.New("no such column")

const distinctName = "distinct"

// Distinct passes through the first occurrence of each key seen across
// all blocks of its input.  Keys are formed from the named key columns or
// from every column, by position, when no names are given.  Constant columns never take
// part in a key.
type Distinct struct {
	rctx      *runtime.Context
	parent    Operator
	limits    limits.Limits
	limitHint uint64
	keys      []string
	logger    *zap.Logger

	set  dedup.Set
	cols []vector.Any
}

var _ Operator = (*Distinct)(nil)

// NewDistinct returns a Distinct over parent.  A nonzero limitHint stops the
// stream once that many distinct rows have been returned, checked between
// blocks only, so the last block may carry the total past the hint.
func NewDistinct(rctx *runtime.Context, parent Operator, l limits.Limits, limitHint uint64, keys []string) *Distinct {
	return &Distinct{
		rctx:      rctx,
		parent:    parent,
		limits:    l,
		limitHint: limitHint,
		keys:      keys,
		logger:    rctx.Logger.Named(distinctName),
	}
}

func (d *Distinct) Pull(done bool) (*vector.Block, error) {
	if done {
		_, err := d.parent.Pull(true)
		return nil, err
	}
	for {
		if d.limitHint > 0 && d.Rows() >= d.limitHint {
			return nil, nil
		}
		block, err := d.parent.Pull(false)
		if block == nil || err != nil {
			return nil, err
		}
		d.rctx.Metrics.Read(distinctName, block.Len())
		cols, err := d.keyColumns(block)
		if err != nil {
			return nil, err
		}
		if len(cols) == 0 {
			d.rctx.Metrics.Emit(distinctName, block.Len())
			return block, nil
		}
		if err := d.init(cols); err != nil {
			return nil, err
		}
		before := d.set.Rows()
		n := block.Len()
		mask := bitvec.NewFalse(n)
		for slot := range n {
			if d.set.Insert(cols, slot) {
				mask.Set(slot)
			}
		}
		if d.set.Rows() == before {
			d.rctx.Metrics.BlocksSkipped.WithLabelValues(distinctName).Inc()
			continue
		}
		verdict, err := d.limits.Check(d.set.Rows(), d.set.Bytes())
		if verdict != limits.OK {
			d.rctx.Metrics.Overflows.WithLabelValues(distinctName, verdict.String()).Inc()
		}
		if err != nil {
			return nil, err
		}
		if verdict == limits.Truncate {
			d.logger.Debug("set size limit exceeded, truncating output",
				zap.Uint64("rows", d.set.Rows()),
				zap.Uint64("bytes", d.set.Bytes()),
				zap.Uint64("max_rows", d.limits.MaxRows),
				zap.Uint64("max_bytes", d.limits.MaxBytes))
			return nil, nil
		}
		out := block.Filter(mask)
		d.rctx.Metrics.Emit(distinctName, out.Len())
		return out, nil
	}
}

// init fixes the set representation on first use and checks that later
// key columns have the shape the set was built for.
func (d *Distinct) init(cols []vector.Any) error {
	if d.set != nil {
		if !d.set.Shape().Matches(cols) {
			return fmt.Errorf("%w: have %s, got %s", dedup.ErrShapeMismatch, d.set.Shape(), dedup.ShapeOf(cols))
		}
		return nil
	}
	set, err := dedup.Choose(cols)
	if err != nil {
		return err
	}
	d.set = set
	d.logger.Debug("dedup method chosen",
		zap.Stringer("method", set.Method()),
		zap.Stringer("shape", set.Shape()))
	return nil
}

// keyColumns returns the non-constant key columns of block.  The returned
// slice is reused across calls.
func (d *Distinct) keyColumns(block *vector.Block) ([]vector.Any, error) {
	cols := d.cols[:0]
	if len(d.keys) == 0 {
		for _, col := range block.Cols {
			if !vector.IsConst(col) {
				cols = append(cols, col)
			}
		}
	} else {
		for _, name := range d.keys {
			col, ok := block.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("distinct: %w: %q", ErrNoSuchColumn, name)
			}
			if !vector.IsConst(col) {
				cols = append(cols, col)
			}
		}
	}
	d.cols = cols
	return cols, nil
}

// Rows returns the number of distinct keys seen so far.
func (d *Distinct) Rows() uint64 {
	if d.set == nil {
		return 0
	}
	return d.set.Rows()
}

// Bytes returns the memory attributed to the distinct keys seen so far.
func (d *Distinct) Bytes() uint64 {
	if d.set == nil {
		return 0
	}
	return d.set.Bytes()
}

func (d *Distinct) Describe() string {
	return Describe("Distinct", d.parent)
}
