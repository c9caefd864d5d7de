// Package rbuf provides a buffered reader over a file with optional
// direct I/O.
package rbuf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unsafe"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrOpen         = errors.New("cannot open file")
	ErrClose        = errors.New("cannot close file")
)

// DefaultBufferSize is used when Open is given a nonpositive buffer size.
const DefaultBufferSize = 1 << 20

// DefaultAlignment is the buffer alignment used for direct I/O when the
// caller does not give one.
const DefaultAlignment = 4096

type Flags int

const (
	// Direct asks the OS not to cache the file's pages.  Where this is
	// unsupported the file is read through the page cache instead.
	Direct Flags = 1 << iota
)

// File is a buffered reader over an open file.  It implements io.Reader
// and io.Closer.
type File struct {
	file *os.File
	name string
	buf  []byte
	pos  int
	end  int
	eof  bool
	// A short read from a file opened for direct I/O marks the end of the
	// file since reading on from an unaligned offset may fail.
	direct bool
}

var _ io.ReadCloser = (*File)(nil)

// Open opens path for reading through a buffer of bufSize bytes aligned to
// alignment bytes.
func Open(path string, flags Flags, bufSize, alignment int) (*File, error) {
	var f *os.File
	var err error
	if flags&Direct != 0 {
		if alignment <= 0 {
			alignment = DefaultAlignment
		}
		f, err = openDirect(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	file := newFile(f, path, bufSize, alignment)
	file.direct = flags&Direct != 0
	return file, nil
}

// NewFile wraps an already open file.
func NewFile(f *os.File, bufSize, alignment int) *File {
	return newFile(f, fmt.Sprintf("(fd = %d)", f.Fd()), bufSize, alignment)
}

func newFile(f *os.File, name string, bufSize, alignment int) *File {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	if alignment > 1 {
		bufSize = (bufSize + alignment - 1) / alignment * alignment
	}
	return &File{
		file: f,
		name: name,
		buf:  alignedBuffer(bufSize, alignment),
	}
}

func alignedBuffer(size, alignment int) []byte {
	if alignment <= 1 {
		return make([]byte, size)
	}
	buf := make([]byte, size+alignment)
	var off int
	if rem := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) % uintptr(alignment)); rem != 0 {
		off = alignment - rem
	}
	return buf[off : off+size : off+size]
}

func (f *File) Name() string {
	return f.name
}

// Read reads from the buffer, refilling it from the file when it is
// empty.  Read returns io.EOF at the end of the file.
func (f *File) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if f.pos == f.end {
		if f.eof {
			return 0, io.EOF
		}
		if err := f.fill(); err != nil {
			return 0, err
		}
		if f.pos == f.end {
			return 0, io.EOF
		}
	}
	n := copy(p, f.buf[f.pos:f.end])
	f.pos += n
	return n, nil
}

func (f *File) fill() error {
	f.pos, f.end = 0, 0
	for f.end == 0 {
		n, err := f.file.Read(f.buf)
		f.end = n
		if err == io.EOF {
			f.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot read from file %s: %w", f.name, err)
		}
		if f.direct && n < len(f.buf) {
			f.eof = true
		}
	}
	return nil
}

func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrClose, f.name, err)
	}
	return nil
}
