package sql

import (
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/blockflow/cli/dbflags"
	"github.com/brimdata/blockflow/cli/inputflags"
	"github.com/brimdata/blockflow/cli/outputflags"
	"github.com/brimdata/blockflow/cli/queryflags"
	"github.com/brimdata/blockflow/cmd/blockflow/root"
	"github.com/brimdata/blockflow/pkg/charm"
	"github.com/brimdata/blockflow/runtime/exec"
	"github.com/brimdata/blockflow/runtime/vam/op"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "sql",
	Usage: "sql -driver mysql|postgres -dsn dsn -q query [options]",
	Short: "remove duplicate rows from a SQL result set",
	Long: `
The "sql" command runs a query against a MySQL or PostgreSQL database and
writes the first occurrence of each distinct row of its result set.
The data source name may also be given in the BLOCKFLOW_DSN environment
variable.

Column types are taken from the driver when it reports them and are
otherwise inferred from the first block of rows.  SQL NULL is read as
zero, false, or the empty string.
`,
	RedactedFlags: "dsn",
	New:           New,
}

func init() {
	root.Blockflow.Add(Spec)
}

type Command struct {
	*root.Command
	explain     bool
	dbFlags     dbflags.Flags
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
	queryFlags  queryflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.dbFlags.SetFlags(f)
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	c.queryFlags.SetFlags(f)
	f.BoolVar(&c.explain, "C", false, "display the operator tree and exit")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %q", args)
	}
	rctx, reg, cleanup, err := c.Init(&c.inputFlags, &c.outputFlags, &c.queryFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	db, err := c.dbFlags.Open(rctx)
	if err != nil {
		return err
	}
	defer db.Close()
	scan := op.NewSQLScan(rctx, db, c.dbFlags.Driver, c.dbFlags.Query, nil, c.inputFlags.ScanOpts.BatchSize)
	q := exec.NewQuery(rctx, op.NewDistinct(rctx, scan, c.queryFlags.Limits(), c.queryFlags.LimitHint, c.queryFlags.Keys))
	if c.explain {
		fmt.Println(q.Describe())
		return q.Close()
	}
	rctx.Logger.Debug("operator tree", zap.String("tree", q.Describe()))
	writer, err := c.outputFlags.Open()
	if err != nil {
		q.Close()
		return err
	}
	err = exec.Drain(rctx, q, writer.Write)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}
	if statsErr := c.queryFlags.PrintStats(os.Stderr, reg); err == nil {
		err = statsErr
	}
	return err
}
