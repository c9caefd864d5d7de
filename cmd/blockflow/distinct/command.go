package distinct

import (
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/blockflow/cli/inputflags"
	"github.com/brimdata/blockflow/cli/outputflags"
	"github.com/brimdata/blockflow/cli/poolflags"
	"github.com/brimdata/blockflow/cli/queryflags"
	"github.com/brimdata/blockflow/cmd/blockflow/root"
	"github.com/brimdata/blockflow/pkg/charm"
	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/runtime/exec"
	"github.com/brimdata/blockflow/runtime/vam/op"
	"github.com/brimdata/blockflow/vector"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "distinct",
	Usage: "distinct [options] file ...",
	Short: "remove duplicate rows from CSV files",
	Long: `
The "distinct" command reads CSV files with a header line, optionally
compressed with LZ4 when the file name ends in ".lz4", and writes the first
occurrence of each distinct row.

By default all files are read in sequence as a single stream so a row
repeated in different files is written once.  With -perfile, each file is
deduplicated on its own and up to -P files are processed in parallel.
Output blocks of different files may then be interleaved.

Column types are inferred from the first block of each file.  Rows are
compared column by column in header order, so without -perfile every file
must have the same header and the same inferred column types.  A file that
differs from the first one is an error.
`,
	New: New,
}

func init() {
	root.Blockflow.Add(Spec)
}

type Command struct {
	*root.Command
	explain     bool
	perFile     bool
	skip        uint64
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
	poolFlags   poolflags.Flags
	queryFlags  queryflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	c.poolFlags.SetFlags(f)
	c.queryFlags.SetFlags(f)
	f.BoolVar(&c.explain, "C", false, "display the operator tree and exit")
	f.BoolVar(&c.perFile, "perfile", false, "deduplicate each file on its own")
	f.Uint64Var(&c.skip, "skip", 0, "number of distinct rows to skip before output")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return charm.NeedHelp
	}
	rctx, reg, cleanup, err := c.Init(&c.inputFlags, &c.outputFlags, &c.queryFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	var trees []op.Operator
	if c.perFile {
		for _, path := range args {
			scan, err := op.NewFileScan(rctx, path, c.inputFlags.ScanOpts)
			if err != nil {
				closeAll(trees)
				return err
			}
			trees = append(trees, c.tree(rctx, scan))
		}
	} else {
		var scans []op.Operator
		for _, path := range args {
			scan, err := op.NewFileScan(rctx, path, c.inputFlags.ScanOpts)
			if err != nil {
				closeAll(scans)
				return err
			}
			scans = append(scans, scan)
		}
		trees = append(trees, c.tree(rctx, op.NewConcat(scans...)))
	}
	if c.explain {
		for _, tree := range trees {
			fmt.Println(tree.Describe())
		}
		closeAll(trees)
		return nil
	}
	writer, err := c.outputFlags.Open()
	if err != nil {
		closeAll(trees)
		return err
	}
	workers, err := c.poolFlags.Workers(len(trees))
	if err != nil {
		closeAll(trees)
		return err
	}
	pullers := make([]vector.Puller, 0, len(trees))
	for _, tree := range trees {
		rctx.Logger.Debug("operator tree", zap.String("tree", tree.Describe()))
		pullers = append(pullers, tree)
	}
	err = exec.RunParallel(rctx, workers, pullers, writer.Write)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}
	if statsErr := c.queryFlags.PrintStats(os.Stderr, reg); err == nil {
		err = statsErr
	}
	return err
}

func (c *Command) tree(rctx *runtime.Context, parent op.Operator) op.Operator {
	tree := op.Operator(op.NewDistinct(rctx, parent, c.queryFlags.Limits(), c.queryFlags.LimitHint, c.queryFlags.Keys))
	if c.skip > 0 {
		tree = op.NewSkip(tree, c.skip)
	}
	return tree
}

func closeAll(ops []op.Operator) {
	for _, o := range ops {
		o.Pull(true)
	}
}
