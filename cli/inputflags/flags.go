package inputflags

import (
	"errors"
	"flag"

	"github.com/brimdata/blockflow/pkg/bytesize"
	"github.com/brimdata/blockflow/pkg/rbuf"
	"github.com/brimdata/blockflow/runtime/vam/op"
)

type Flags struct {
	ScanOpts   op.FileScanOpts
	bufferSize bytesize.Size
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	opts := &f.ScanOpts
	fs.IntVar(&opts.BatchSize, "batchsize", op.DefaultBatchSize, "maximum number of rows per block")
	f.bufferSize = bytesize.New(rbuf.DefaultBufferSize)
	fs.Var(&f.bufferSize, "bufsize", "file read buffer size in B, KiB, MiB, etc.")
	fs.BoolVar(&opts.Direct, "direct", false, "bypass the page cache when reading files where supported")
	fs.StringVar(&opts.PathColumn, "pathcol", "", "add a constant column with this name holding the input file path")
}

// Init is called after flags have been parsed.
func (f *Flags) Init() error {
	if f.ScanOpts.BatchSize <= 0 {
		return errors.New("batch size must be greater than zero")
	}
	if f.bufferSize.Bytes == 0 || f.bufferSize.Bytes > 1<<30 {
		return errors.New("read buffer size must be greater than zero and at most 1GiB")
	}
	f.ScanOpts.BufferSize = int(f.bufferSize.Bytes)
	return nil
}
