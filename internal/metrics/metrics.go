package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all the Prometheus metrics for the streaming engine.
type Metrics struct {
	LinesTotal     prometheus.Counter
	LinesAccepted  prometheus.Counter
	LinesRejected  *prometheus.CounterVec
	DigestsWritten prometheus.Counter
	WriteErrors    prometheus.Counter
}

// New creates a Metrics instance registered against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fd_lines_total",
			Help: "Total number of log lines received",
		}),
		LinesAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fd_lines_accepted_total",
			Help: "Total number of log lines aggregated into flows",
		}),
		LinesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fd_lines_rejected_total",
			Help: "Total number of log lines rejected, by reason",
		}, []string{"reason"}),
		DigestsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "fd_digests_written_total",
			Help: "Total number of digest documents written",
		}),
		WriteErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "fd_digest_write_errors_total",
			Help: "Total number of digest write failures",
		}),
	}
}
