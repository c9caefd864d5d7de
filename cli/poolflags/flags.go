package poolflags

import (
	"errors"
	"flag"
	"runtime"
)

type Flags struct {
	Parallel int
}

func (l *Flags) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&l.Parallel, "P", 1, "number of input files processed in parallel, each with its own DISTINCT state (0=GOMAXPROCS)")
}

// Workers returns the number of operator trees to run at once for n inputs.
func (l *Flags) Workers(n int) (int, error) {
	p := l.Parallel
	if p < 0 {
		return 0, errors.New("parallelism must not be negative")
	}
	if p == 0 {
		p = runtime.GOMAXPROCS(0)
	}
	return max(min(p, n), 1), nil
}
