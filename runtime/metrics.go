package runtime

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters updated by operators.  Counters are labeled
// by operator name.
type Metrics struct {
	BlocksRead    *prometheus.CounterVec
	RowsRead      *prometheus.CounterVec
	BlocksEmitted *prometheus.CounterVec
	RowsEmitted   *prometheus.CounterVec
	BlocksSkipped *prometheus.CounterVec
	Overflows     *prometheus.CounterVec
}

// NewMetrics creates the operator counters and registers them with reg
// unless reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BlocksRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockflow_blocks_read_total",
			Help: "Number of blocks pulled by an operator from its input.",
		}, []string{"op"}),
		RowsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockflow_rows_read_total",
			Help: "Number of rows pulled by an operator from its input.",
		}, []string{"op"}),
		BlocksEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockflow_blocks_emitted_total",
			Help: "Number of blocks returned by an operator.",
		}, []string{"op"}),
		RowsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockflow_rows_emitted_total",
			Help: "Number of rows returned by an operator.",
		}, []string{"op"}),
		BlocksSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockflow_blocks_skipped_total",
			Help: "Number of input blocks that produced no output rows.",
		}, []string{"op"}),
		Overflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockflow_overflows_total",
			Help: "Number of times an operator exceeded its resource limits.",
		}, []string{"op", "mode"}),
	}
	if reg != nil {
		reg.MustRegister(m.BlocksRead, m.RowsRead, m.BlocksEmitted, m.RowsEmitted, m.BlocksSkipped, m.Overflows)
	}
	return m
}

// Read records a block of n rows pulled by op.
func (m *Metrics) Read(op string, n uint32) {
	m.BlocksRead.WithLabelValues(op).Inc()
	m.RowsRead.WithLabelValues(op).Add(float64(n))
}

// Emit records a block of n rows returned by op.
func (m *Metrics) Emit(op string, n uint32) {
	m.BlocksEmitted.WithLabelValues(op).Inc()
	m.RowsEmitted.WithLabelValues(op).Add(float64(n))
}
