package vector_test

import (
	"testing"

	"github.com/brimdata/blockflow/vector"
	"github.com/brimdata/blockflow/vector/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mask(bits ...bool) bitvec.Bits {
	m := bitvec.NewFalse(uint32(len(bits)))
	for k, b := range bits {
		if b {
			m.Set(uint32(k))
		}
	}
	return m
}

func TestFilterPreservesOrder(t *testing.T) {
	m := mask(true, false, true, true, false)
	ints := vector.Filter(vector.NewInt(vector.KindInt64, []int64{5, 4, 3, 2, 1}), m)
	assert.Equal(t, []int64{5, 3, 2}, ints.(*vector.Int).Values)
	strs := vector.Filter(vector.NewStringFromSlice([]string{"a", "b", "c", "d", "e"}), m)
	require.EqualValues(t, 3, strs.Len())
	assert.Equal(t, "a", strs.(*vector.String).Value(0))
	assert.Equal(t, "d", strs.(*vector.String).Value(2))
	bools := vector.Filter(vector.NewBoolFromSlice([]bool{true, true, false, true, true}), m)
	assert.Equal(t, "101", bools.(*vector.Bool).Bits.String())
}

func TestFilterConstStaysConst(t *testing.T) {
	c := vector.NewConst(vector.NewStringValue("x"), 4)
	out := vector.Filter(c, mask(true, false, false, true))
	assert.True(t, vector.IsConst(out))
	assert.EqualValues(t, 2, out.Len())
	assert.False(t, vector.IsConst(vector.NewInt(vector.KindInt64, []int64{1, 1})))
}

func TestFilterAllTrueReturnsInput(t *testing.T) {
	vec := vector.NewUint(vector.KindUint16, []uint64{1, 2})
	assert.Same(t, vec, vector.Filter(vec, bitvec.NewTrue(2)).(*vector.Uint))
}

func TestPickView(t *testing.T) {
	base := vector.NewFloat(vector.KindFloat64, []float64{0.5, 1.5, 2.5})
	view := vector.NewView(base, []uint32{2, 0})
	out := vector.Pick(view, []uint32{1})
	assert.EqualValues(t, 1, out.Len())
	assert.Equal(t, 0.5, vector.ValueAt(out, 0).Float())
}

func TestAppendKeyIsUnambiguous(t *testing.T) {
	a := vector.NewStringFromSlice([]string{"ab", "a"})
	b := vector.NewStringFromSlice([]string{"c", "bc"})
	key0 := vector.AppendKey(vector.AppendKey(nil, a, 0), b, 0)
	key1 := vector.AppendKey(vector.AppendKey(nil, a, 1), b, 1)
	assert.NotEqual(t, key0, key1)
}

func TestAppendKeyConstMatchesColumn(t *testing.T) {
	col := vector.NewInt(vector.KindInt32, []int64{-7})
	c := vector.NewConst(vector.NewIntValue(vector.KindInt32, -7), 3)
	assert.Equal(t, vector.AppendKey(nil, col, 0), vector.AppendKey(nil, c, 2))
	assert.Len(t, vector.AppendKey(nil, col, 0), 4)
}

func TestPackKeyWidths(t *testing.T) {
	assert.Equal(t, uint64(0xff), vector.PackKey(vector.NewInt(vector.KindInt8, []int64{-1}), 0))
	assert.Equal(t, uint64(0xfffe), vector.PackKey(vector.NewInt(vector.KindInt16, []int64{-2}), 0))
	assert.Equal(t, uint64(1), vector.PackKey(vector.NewBoolFromSlice([]bool{true}), 0))
	assert.Equal(t, uint64(0x3f800000), vector.PackKey(vector.NewFloat(vector.KindFloat32, []float64{1}), 0))
}

func TestBlock(t *testing.T) {
	_, err := vector.NewBlock([]string{"a", "b"}, []vector.Any{
		vector.NewInt(vector.KindInt64, []int64{1, 2}),
		vector.NewInt(vector.KindInt64, []int64{1}),
	})
	require.Error(t, err)
	_, err = vector.NewBlock([]string{"a"}, nil)
	require.Error(t, err)

	block, err := vector.NewBlock([]string{"a", "b"}, []vector.Any{
		vector.NewInt(vector.KindInt64, []int64{1, 2, 3}),
		vector.NewStringFromSlice([]string{"x", "y", "z"}),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, block.Len())
	assert.Equal(t, 2, block.ColumnCount())
	col, ok := block.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, vector.KindString, col.Kind())
	_, ok = block.Lookup("c")
	assert.False(t, ok)

	filtered := block.Filter(mask(false, true, false))
	assert.EqualValues(t, 1, filtered.Len())
	assert.EqualValues(t, 3, block.Len())
	assert.Equal(t, "y", vector.ValueAt(filtered.Column(1), 0).AsString())
}

func TestValueFormat(t *testing.T) {
	assert.Equal(t, "-3", vector.NewIntValue(vector.KindInt8, -3).Format())
	assert.Equal(t, "true", vector.NewBoolValue(true).Format())
	assert.Equal(t, "2.5", vector.NewFloatValue(vector.KindFloat32, 2.5).Format())
	assert.Equal(t, "0x0aff", vector.NewBytesValue([]byte{0x0a, 0xff}).Format())
	assert.True(t, vector.Equal(vector.NewStringValue("a"), vector.NewStringValue("a")))
	assert.False(t, vector.Equal(vector.NewStringValue("1"), vector.NewIntValue(vector.KindInt64, 1)))
}

func TestKindFromString(t *testing.T) {
	k, err := vector.KindFromString("uint32")
	require.NoError(t, err)
	assert.Equal(t, vector.KindUint32, k)
	assert.Equal(t, 4, k.Width())
	_, err = vector.KindFromString("invalid")
	assert.Error(t, err)
}
