// Package cli holds the flags shared by every blockflow command.
package cli

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/brimdata/blockflow/cli/logflags"
	"github.com/brimdata/blockflow/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

type Initializer interface {
	Init() error
}

type Flags struct {
	logFlags logflags.Flags
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.logFlags.SetFlags(fs)
}

// Init initializes each of the flag sets in all and returns a runtime
// context whose logger is tagged with a fresh query ID, the registry
// holding its metrics, and a cleanup function.  The context is canceled on
// SIGINT or SIGTERM.
func (f *Flags) Init(all ...Initializer) (*runtime.Context, *prometheus.Registry, func(), error) {
	for _, flags := range all {
		if err := flags.Init(); err != nil {
			return nil, nil, nil, err
		}
	}
	logger, err := f.logFlags.Open()
	if err != nil {
		return nil, nil, nil, err
	}
	id := ksuid.New()
	logger = logger.With(zap.Stringer("query_id", id))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	reg := prometheus.NewRegistry()
	rctx := runtime.NewContext(ctx, logger, runtime.NewMetrics(reg))
	cleanup := func() {
		rctx.Cancel()
		stop()
		logger.Sync()
	}
	return rctx, reg, cleanup, nil
}
