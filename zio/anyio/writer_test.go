package anyio

import (
	"bytes"
	"math"
	"testing"

	"github.com/brimdata/blockflow/vector"
	"github.com/brimdata/blockflow/zio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock(t *testing.T) *vector.Block {
	t.Helper()
	block, err := vector.NewBlock([]string{"id", "name", "ok"}, []vector.Any{
		vector.NewInt(vector.KindInt64, []int64{1, 22}),
		vector.NewStringFromSlice([]string{"a,b", `<x>`}),
		vector.NewConst(vector.NewBoolValue(true), 2),
	})
	require.NoError(t, err)
	return block
}

func write(t *testing.T, format string, blocks ...*vector.Block) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(zio.NopCloser(&buf), WriterOpts{Format: format})
	require.NoError(t, err)
	for _, block := range blocks {
		require.NoError(t, w.Write(block))
	}
	require.NoError(t, w.Close())
	return buf.String()
}

func TestCSV(t *testing.T) {
	block := testBlock(t)
	expected := "id,name,ok\n1,\"a,b\",true\n22,<x>,true\n22,<x>,true\n"
	assert.Equal(t, expected, write(t, "csv", block, block.Pick([]uint32{1})))
}

func TestCSVHeaderChange(t *testing.T) {
	other, err := vector.NewBlock([]string{"n"}, []vector.Any{vector.NewUint(vector.KindUint8, []uint64{7})})
	require.NoError(t, err)
	expected := "id,name,ok\n1,\"a,b\",true\n22,<x>,true\nn\n7\n"
	assert.Equal(t, expected, write(t, "csv", testBlock(t), other))
}

func TestTSV(t *testing.T) {
	assert.Equal(t, "id\tname\tok\n1\ta,b\ttrue\n22\t<x>\ttrue\n", write(t, "tsv", testBlock(t)))
}

func TestTable(t *testing.T) {
	expected := "id name ok\n1  a,b  true\n22 <x>  true\n"
	assert.Equal(t, expected, write(t, "table", testBlock(t)))
}

func TestJSON(t *testing.T) {
	expected := `{"id":1,"name":"a,b","ok":true}` + "\n" + `{"id":22,"name":"<x>","ok":true}` + "\n"
	assert.Equal(t, expected, write(t, "json", testBlock(t)))
}

func TestJSONNaN(t *testing.T) {
	block, err := vector.NewBlock([]string{"f"}, []vector.Any{vector.NewFloat(vector.KindFloat64, []float64{math.NaN(), 1.5})})
	require.NoError(t, err)
	assert.Equal(t, "{\"f\":null}\n{\"f\":1.5}\n", write(t, "json", block))
}

func TestNullAndUnknown(t *testing.T) {
	assert.Empty(t, write(t, "null", testBlock(t)))
	_, err := NewWriter(zio.NopCloser(&bytes.Buffer{}), WriterOpts{Format: "parquet"})
	assert.ErrorContains(t, err, "unknown format")
}
