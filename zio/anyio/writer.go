package anyio

import (
	"fmt"
	"io"

	"github.com/brimdata/blockflow/vector"
	"github.com/brimdata/blockflow/zio"
	"github.com/brimdata/blockflow/zio/csvio"
	"github.com/brimdata/blockflow/zio/jsonio"
	"github.com/brimdata/blockflow/zio/tableio"
)

type WriterOpts struct {
	Format string
	CSV    csvio.WriterOpts
}

func NewWriter(w io.WriteCloser, opts WriterOpts) (zio.WriteCloser, error) {
	switch opts.Format {
	case "csv", "":
		return csvio.NewWriter(w, opts.CSV), nil
	case "json":
		return jsonio.NewWriter(w), nil
	case "null":
		return &nullWriter{}, nil
	case "table":
		return tableio.NewWriter(w), nil
	case "tsv":
		opts.CSV.Delim = '\t'
		return csvio.NewWriter(w, opts.CSV), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", opts.Format)
	}
}

type nullWriter struct{}

func (*nullWriter) Write(*vector.Block) error {
	return nil
}

func (*nullWriter) Close() error {
	return nil
}
