package outputflags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/blockflow/zio"
	"github.com/brimdata/blockflow/zio/anyio"
	"golang.org/x/term"
)

type Flags struct {
	anyio.WriterOpts
	outputFile string
	csvDelim   string
}

func (f *Flags) Options() anyio.WriterOpts {
	return f.WriterOpts
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Format, "f", "", "format for output data [csv,json,null,table,tsv] (default table on a terminal, else csv)")
	fs.StringVar(&f.outputFile, "o", "", "write data to output file")
	fs.StringVar(&f.csvDelim, "csv.delim", ",", "CSV field delimiter")
}

func (f *Flags) Init() error {
	if len(f.csvDelim) != 1 {
		return errors.New("CSV field delimiter must be exactly one character")
	}
	f.CSV.Delim = rune(f.csvDelim[0])
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	if f.Format == "" {
		f.Format = "csv"
		if f.outputFile == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			f.Format = "table"
		}
	}
	return nil
}

func (f *Flags) FileName() string {
	return f.outputFile
}

// Open returns a writer for the output file or standard output.
func (f *Flags) Open() (zio.WriteCloser, error) {
	var w io.WriteCloser = zio.NopCloser(os.Stdout)
	if f.outputFile != "" {
		file, err := os.Create(f.outputFile)
		if err != nil {
			return nil, err
		}
		w = file
	}
	writer, err := anyio.NewWriter(w, f.WriterOpts)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("-f option: %w", err)
	}
	return writer, nil
}
