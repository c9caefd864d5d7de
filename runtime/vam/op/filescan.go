package op

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brimdata/blockflow/pkg/rbuf"
	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/vector"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

const fileScanName = "filescan"

// DefaultBatchSize is the number of rows per block produced by leaf
// operators unless configured otherwise.
const DefaultBatchSize = 8192

type FileScanOpts struct {
	BatchSize  int
	BufferSize int
	Direct     bool
	// PathColumn, if not empty, names a constant column holding the path
	// of the file appended to every block.
	PathColumn string
}

// FileScan reads a CSV file with a header line and emits its rows as
// blocks.  Files whose names end in ".lz4" are decompressed.  Column kinds
// are inferred from the first batch of rows: int64, then float64, then
// bool, else string.
type FileScan struct {
	rctx   *runtime.Context
	path   string
	opts   FileScanOpts
	file   *rbuf.File
	reader *csv.Reader
	names  []string
	kinds  []vector.Kind
	line   int
	done   bool
}

var _ Operator = (*FileScan)(nil)

func NewFileScan(rctx *runtime.Context, path string, opts FileScanOpts) (*FileScan, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	var flags rbuf.Flags
	if opts.Direct {
		flags |= rbuf.Direct
	}
	file, err := rbuf.Open(path, flags, opts.BufferSize, 0)
	if err != nil {
		return nil, err
	}
	var r io.Reader = file
	if strings.HasSuffix(path, ".lz4") {
		r = lz4.NewReader(file)
	}
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	header, err := reader.Read()
	if err != nil {
		file.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("%s: missing CSV header", path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	names := append([]string(nil), header...)
	if opts.PathColumn != "" {
		names = append(names, opts.PathColumn)
	}
	rctx.Logger.Debug("file opened", zap.String("path", path), zap.Strings("columns", header))
	return &FileScan{
		rctx:   rctx,
		path:   path,
		opts:   opts,
		file:   file,
		reader: reader,
		names:  names,
		line:   1,
	}, nil
}

func (f *FileScan) Pull(done bool) (*vector.Block, error) {
	if f.done {
		return nil, nil
	}
	if done {
		return nil, f.close()
	}
	var rows [][]string
	for len(rows) < f.opts.BatchSize {
		rec, err := f.reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			f.close()
			return nil, fmt.Errorf("%s: %w", f.path, err)
		}
		f.line++
		rows = append(rows, append([]string(nil), rec...))
	}
	if len(rows) == 0 {
		return nil, f.close()
	}
	if f.kinds == nil {
		f.kinds = inferKinds(rows, len(f.names))
	}
	block, err := f.build(rows)
	if err != nil {
		f.close()
		return nil, err
	}
	f.rctx.Metrics.Read(fileScanName, block.Len())
	return block, nil
}

func (f *FileScan) build(rows [][]string) (*vector.Block, error) {
	n := uint32(len(rows))
	cols := make([]vector.Any, 0, len(f.names))
	first := f.line - len(rows) + 1
	for k, kind := range f.kinds {
		col, err := parseColumn(kind, rows, k)
		if err != nil {
			var perr *parseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%s: line %d: column %q: %w", f.path, first+perr.row, f.names[k], perr.err)
			}
			return nil, err
		}
		cols = append(cols, col)
	}
	if f.opts.PathColumn != "" {
		cols = append(cols, vector.NewConst(vector.NewStringValue(f.path), n))
	}
	return vector.NewBlock(f.names, cols)
}

func (f *FileScan) close() error {
	f.done = true
	return f.file.Close()
}

func (f *FileScan) Describe() string {
	return fmt.Sprintf("FileScan(%s)", f.path)
}

type parseError struct {
	row int
	err error
}

func (p *parseError) Error() string {
	return p.err.Error()
}

func inferKinds(rows [][]string, ncols int) []vector.Kind {
	kinds := make([]vector.Kind, 0, ncols)
	for k := range rows[0] {
		kinds = append(kinds, inferKind(rows, k))
	}
	return kinds
}

func inferKind(rows [][]string, k int) vector.Kind {
	if allParse(rows, k, func(s string) error { _, err := strconv.ParseInt(s, 10, 64); return err }) {
		return vector.KindInt64
	}
	if allParse(rows, k, func(s string) error { _, err := strconv.ParseFloat(s, 64); return err }) {
		return vector.KindFloat64
	}
	if allParse(rows, k, func(s string) error { _, err := strconv.ParseBool(s); return err }) {
		return vector.KindBool
	}
	return vector.KindString
}

func allParse(rows [][]string, k int, parse func(string) error) bool {
	for _, row := range rows {
		if parse(row[k]) != nil {
			return false
		}
	}
	return true
}

func parseColumn(kind vector.Kind, rows [][]string, k int) (vector.Any, error) {
	n := uint32(len(rows))
	switch kind {
	case vector.KindInt64:
		vec := vector.NewIntEmpty(kind, n)
		for row, rec := range rows {
			v, err := strconv.ParseInt(rec[k], 10, 64)
			if err != nil {
				return nil, &parseError{row, err}
			}
			vec.Append(v)
		}
		return vec, nil
	case vector.KindFloat64:
		vec := vector.NewFloatEmpty(kind, n)
		for row, rec := range rows {
			v, err := strconv.ParseFloat(rec[k], 64)
			if err != nil {
				return nil, &parseError{row, err}
			}
			vec.Append(v)
		}
		return vec, nil
	case vector.KindBool:
		vals := make([]bool, len(rows))
		for row, rec := range rows {
			v, err := strconv.ParseBool(rec[k])
			if err != nil {
				return nil, &parseError{row, err}
			}
			vals[row] = v
		}
		return vector.NewBoolFromSlice(vals), nil
	case vector.KindString:
		vec := vector.NewStringEmpty(n)
		for _, rec := range rows {
			vec.Append(rec[k])
		}
		return vec, nil
	}
	return nil, fmt.Errorf("unsupported column kind %s", kind)
}
