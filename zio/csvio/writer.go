package csvio

import (
	"encoding/csv"
	"io"
	"slices"

	"github.com/brimdata/blockflow/vector"
)

type WriterOpts struct {
	Delim rune
}

// Writer writes blocks as CSV.  A header line is written before the first
// block and again whenever the column names change.
type Writer struct {
	writer  io.WriteCloser
	encoder *csv.Writer
	names   []string
	record  []string
}

func NewWriter(w io.WriteCloser, opts WriterOpts) *Writer {
	encoder := csv.NewWriter(w)
	if opts.Delim != 0 {
		encoder.Comma = opts.Delim
	}
	return &Writer{
		writer:  w,
		encoder: encoder,
	}
}

func (w *Writer) Write(block *vector.Block) error {
	if w.names == nil || !slices.Equal(w.names, block.Names) {
		if err := w.encoder.Write(block.Names); err != nil {
			return err
		}
		w.names = block.Names
	}
	for slot := range block.Len() {
		w.record = w.record[:0]
		for _, col := range block.Cols {
			w.record = append(w.record, vector.ValueAt(col, slot).Format())
		}
		if err := w.encoder.Write(w.record); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Close() error {
	w.encoder.Flush()
	err := w.encoder.Error()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
