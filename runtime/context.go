package runtime

import (
	"context"

	"go.uber.org/zap"
)

// Context provides states used by all operators of a query to provide the
// outside context in which they are running.
type Context struct {
	context.Context
	Logger  *zap.Logger
	Metrics *Metrics
	cancel  context.CancelFunc
}

func NewContext(ctx context.Context, logger *zap.Logger, metrics *Metrics) *Context {
	ctx, cancel := context.WithCancel(ctx)
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Context{
		Context: ctx,
		Logger:  logger,
		Metrics: metrics,
		cancel:  cancel,
	}
}

func DefaultContext() *Context {
	return NewContext(context.Background(), nil, nil)
}

// Cancel cancels the context.
func (c *Context) Cancel() {
	c.cancel()
}
