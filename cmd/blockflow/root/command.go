package root

import (
	"flag"

	"github.com/brimdata/blockflow/cli"
	"github.com/brimdata/blockflow/pkg/charm"
)

var Blockflow = &charm.Spec{
	Name:  "blockflow",
	Usage: "blockflow [options] <command> [options] [arguments...]",
	Short: "remove duplicate rows from columnar data",
	Long: `
The "blockflow" command reads tabular data a block of rows at a time and
passes it through a DISTINCT operator that keeps the first occurrence of
each key.  Keys are formed from the columns named with -k or from every
column of the input.

The set of keys seen so far may be bounded in rows and in bytes.  When a
bound is exceeded the command either fails or, with -distinct.overflow
truncate, ends its output early without an error.

Run "blockflow <command> -h" for the options of each command.
`,
	New: New,
}

type Command struct {
	cli.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	return charm.NoRun(args)
}
