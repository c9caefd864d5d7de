package dbflags

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
)

var ErrNoDSN = errors.New("data source must be set (either with the -dsn flag or BLOCKFLOW_DSN environment variable)")

type Flags struct {
	Driver string
	DSN    string
	Query  string
}

func (l *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&l.Driver, "driver", "mysql", "database driver [mysql,postgres]")
	l.DSN = os.Getenv("BLOCKFLOW_DSN")
	fs.StringVar(&l.DSN, "dsn", l.DSN, "data source name (env BLOCKFLOW_DSN)")
	fs.StringVar(&l.Query, "q", "", "query whose result set is read")
}

// Open opens and pings the database.  The driver must have been
// registered with database/sql.
func (l *Flags) Open(ctx context.Context) (*sql.DB, error) {
	if !slices.Contains(sql.Drivers(), l.Driver) {
		return nil, fmt.Errorf("unknown database driver %q", l.Driver)
	}
	if l.DSN == "" {
		return nil, ErrNoDSN
	}
	if l.Query == "" {
		return nil, errors.New("query must be set with the -q flag")
	}
	db, err := sql.Open(l.Driver, l.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", l.Driver, err)
	}
	return db, nil
}
