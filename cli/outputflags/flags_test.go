package outputflags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/blockflow/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	f := parse(t, "-o", path, "-f", "tsv")
	require.NoError(t, f.Init())
	w, err := f.Open()
	require.NoError(t, err)
	block, err := vector.NewBlock([]string{"a", "b"}, []vector.Any{
		vector.NewInt(vector.KindInt64, []int64{1}),
		vector.NewStringFromSlice([]string{"x"}),
	})
	require.NoError(t, err)
	require.NoError(t, w.Write(block))
	require.NoError(t, w.Close())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n1\tx\n", string(b))
}

func TestDefaultFormatForFile(t *testing.T) {
	f := parse(t, "-o", filepath.Join(t.TempDir(), "out"))
	require.NoError(t, f.Init())
	assert.Equal(t, "csv", f.Format)
	assert.Equal(t, ',', f.CSV.Delim)
}

func TestBadFlags(t *testing.T) {
	f := parse(t, "-csv.delim", "::")
	assert.Error(t, f.Init())

	f = parse(t, "-f", "parquet", "-o", filepath.Join(t.TempDir(), "out"))
	require.NoError(t, f.Init())
	_, err := f.Open()
	assert.ErrorContains(t, err, "unknown format")
}
