package rbuf

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, data, 0666))
	return path
}

func testData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}

func TestReadAll(t *testing.T) {
	data := testData(100_003)
	path := writeFile(t, data)
	for _, bufSize := range []int{0, 1, 7, 4096, 1 << 17} {
		f, err := Open(path, 0, bufSize, 0)
		require.NoError(t, err)
		out, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(data, out), "buffer size %d", bufSize)
		n, err := f.Read(make([]byte, 10))
		assert.Zero(t, n)
		assert.Equal(t, io.EOF, err)
		require.NoError(t, f.Close())
	}
}

func TestReadDirect(t *testing.T) {
	data := testData(3*4096 + 17)
	path := writeFile(t, data)
	f, err := Open(path, Direct, 4096, 0)
	require.NoError(t, err)
	out, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, out))
	require.NoError(t, f.Close())
}

func TestReadEmpty(t *testing.T) {
	f, err := Open(writeFile(t, nil), 0, 16, 0)
	require.NoError(t, err)
	n, err := f.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing"), 0, 0, 0)
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, []byte("x"))
	_, err = Open(filepath.Join(path, "child"), 0, 0, 0)
	require.ErrorIs(t, err, ErrOpen)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestCloseError(t *testing.T) {
	f, err := Open(writeFile(t, []byte("x")), 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.ErrorIs(t, f.Close(), ErrClose)
}

func TestAlignedBuffer(t *testing.T) {
	for _, alignment := range []int{0, 1, 512, 4096} {
		buf := alignedBuffer(1000, alignment)
		assert.Len(t, buf, 1000)
		if alignment > 1 {
			assert.Zero(t, uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%uintptr(alignment))
		}
	}
}

func TestNewFile(t *testing.T) {
	osf, err := os.Open(writeFile(t, []byte("hello")))
	require.NoError(t, err)
	f := NewFile(osf, 2, 0)
	assert.Contains(t, f.Name(), "fd =")
	out, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
	require.NoError(t, f.Close())
}
