package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	metricsOnce sync.Once //nolint:gochecknoglobals

	statements  *prometheus.CounterVec //nolint:gochecknoglobals
	writeErrors prometheus.Counter     //nolint:gochecknoglobals
)

func registerMetrics(app, service string) {
	metricsOnce.Do(func() {
		labels := prometheus.Labels{"app": app, "service": service}

		statements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: labels,
			},
			[]string{"level"},
		)

		writeErrors = promauto.NewCounter(prometheus.CounterOpts{
			Name:        "log_write_errors_total",
			Help:        "Number of log events no writer accepted.",
			ConstLabels: labels,
		})
	})
}

// PrometheusHook counts log statements per level.
type PrometheusHook struct{}

// Run implements zerolog.Hook.
func (PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || statements == nil {
		return
	}

	statements.WithLabelValues(level.String()).Inc()
}

// NewPrometheusHook registers the log metrics once, later calls keep the first labels.
func NewPrometheusHook(app, service string) PrometheusHook {
	registerMetrics(app, service)

	return PrometheusHook{}
}
