package tableio

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/brimdata/blockflow/vector"
)

// Writer writes blocks as an aligned text table.  The header is repeated
// every limit lines and whenever the column names change.
type Writer struct {
	writer io.WriteCloser
	table  *tabwriter.Writer
	names  []string
	limit  int
	nline  int
}

func NewWriter(w io.WriteCloser) *Writer {
	table := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	return &Writer{
		writer: w,
		table:  table,
		limit:  1000,
	}
}

func (w *Writer) Write(block *vector.Block) error {
	if w.names == nil || !slices.Equal(w.names, block.Names) {
		if w.names != nil {
			w.flush()
			w.nline = 0
		}
		w.writeHeader(block.Names)
		w.names = block.Names
	}
	out := make([]string, len(block.Cols))
	for slot := range block.Len() {
		if w.nline >= w.limit {
			w.flush()
			w.writeHeader(w.names)
			w.nline = 0
		}
		for k, col := range block.Cols {
			out[k] = vector.ValueAt(col, slot).Format()
		}
		w.nline++
		if _, err := fmt.Fprintf(w.table, "%s\n", strings.Join(out, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) flush() error {
	return w.table.Flush()
}

func (w *Writer) writeHeader(names []string) {
	fmt.Fprintf(w.table, "%s\n", strings.Join(names, "\t"))
}

func (w *Writer) Close() error {
	err := w.flush()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
