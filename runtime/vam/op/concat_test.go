package op_test

import (
	"errors"
	"testing"

	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/runtime/limits"
	"github.com/brimdata/blockflow/runtime/vam/op"
	"github.com/brimdata/blockflow/runtime/vam/op/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConcat(t *testing.T) {
	c := op.NewConcat(
		op.NewValues(intBlock(t, 1, 2)),
		op.NewValues(),
		op.NewValues(intBlock(t, 2, 3), intBlock(t, 4)),
	)
	var out []int64
	for _, block := range drain(t, c) {
		out = append(out, ints(block, "k")...)
	}
	assert.Equal(t, []int64{1, 2, 2, 3, 4}, out)
	assert.Equal(t, "Concat(Values(), Values(), Values())", c.Describe())
}

func TestConcatDistinctAcrossInputs(t *testing.T) {
	c := op.NewConcat(op.NewValues(intBlock(t, 1, 2)), op.NewValues(intBlock(t, 2, 3)))
	d := newDistinct(c, limits.Limits{}, 0)
	var out []int64
	for _, block := range drain(t, d) {
		out = append(out, ints(block, "k")...)
	}
	assert.Equal(t, []int64{1, 2, 3}, out)
}

func TestConcatDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock.NewMockOperator(ctrl)
	second := mock.NewMockOperator(ctrl)
	errFirst := errors.New("first")
	first.EXPECT().Pull(true).Return(nil, errFirst)
	second.EXPECT().Pull(true).Return(nil, nil)
	_, err := op.NewConcat(first, second).Pull(true)
	assert.ErrorIs(t, err, errFirst)
}

func TestConcatKindMismatch(t *testing.T) {
	rctx := runtime.DefaultContext()
	a, err := op.NewFileScan(rctx, writeCSV(t, "a.csv", "id\n1\n2\n"), op.FileScanOpts{})
	require.NoError(t, err)
	bpath := writeCSV(t, "b.csv", "id\n2\nx\n")
	b, err := op.NewFileScan(rctx, bpath, op.FileScanOpts{})
	require.NoError(t, err)
	d := op.NewDistinct(rctx, op.NewConcat(a, b), limits.Limits{}, 0, nil)
	block, err := d.Pull(false)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ints(block, "id"))
	_, err = d.Pull(false)
	require.ErrorIs(t, err, op.ErrSchemaMismatch)
	assert.NotErrorIs(t, err, limits.ErrInvariant)
	assert.ErrorContains(t, err, bpath)
	assert.ErrorContains(t, err, "want (id int64), got (id string)")
	_, err = d.Pull(true)
	assert.NoError(t, err)
}

func TestConcatNameMismatch(t *testing.T) {
	rctx := runtime.DefaultContext()
	a, err := op.NewFileScan(rctx, writeCSV(t, "a.csv", "x,y\n1,2\n"), op.FileScanOpts{})
	require.NoError(t, err)
	b, err := op.NewFileScan(rctx, writeCSV(t, "b.csv", "y,x\n2,1\n"), op.FileScanOpts{})
	require.NoError(t, err)
	c := op.NewConcat(a, b)
	_, err = c.Pull(false)
	require.NoError(t, err)
	_, err = c.Pull(false)
	assert.ErrorIs(t, err, op.ErrSchemaMismatch)
	_, err = c.Pull(true)
	assert.NoError(t, err)
}

func TestConcatColumnCountMismatch(t *testing.T) {
	c := op.NewConcat(
		op.NewValues(intBlock(t, 1)),
		op.NewValues(pairBlock(t, []int64{1}, []string{"a"})),
	)
	_, err := c.Pull(false)
	require.NoError(t, err)
	_, err = c.Pull(false)
	assert.ErrorIs(t, err, op.ErrSchemaMismatch)
}

func TestSkip(t *testing.T) {
	s := op.NewSkip(op.NewValues(intBlock(t, 1, 2), intBlock(t, 3, 4, 5), intBlock(t, 6)), 3)
	blocks := drain(t, s)
	require.Len(t, blocks, 2)
	assert.Equal(t, []int64{4, 5}, ints(blocks[0], "k"))
	assert.Equal(t, []int64{6}, ints(blocks[1], "k"))
	assert.Equal(t, "Skip(Values())", s.Describe())
}

func TestSkipZero(t *testing.T) {
	s := op.NewSkip(op.NewValues(intBlock(t, 1)), 0)
	blocks := drain(t, s)
	require.Len(t, blocks, 1)
	assert.Equal(t, []int64{1}, ints(blocks[0], "k"))
}
