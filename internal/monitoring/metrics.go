package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Planner metrics
	ladderComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dca_planner_computations_total",
			Help: "Total number of strategy ladder computations",
		},
		[]string{"mode", "direction"},
	)

	// Backtest metrics
	backtestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dca_planner_backtests_total",
			Help: "Total number of backtest runs",
		},
		[]string{"symbol"},
	)

	backtestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dca_planner_backtest_duration_seconds",
			Help:    "Duration of backtest runs including data retrieval",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Market data metrics
	klinePages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dca_planner_kline_pages_total",
			Help: "Total number of kline pages fetched from data sources",
		},
		[]string{"source"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dca_planner_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(ladderComputations)
	prometheus.MustRegister(backtestsTotal)
	prometheus.MustRegister(backtestDuration)
	prometheus.MustRegister(klinePages)
	prometheus.MustRegister(errorsTotal)
}

// Handler returns the Prometheus metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordLadderComputation records one strategy ladder computation.
func RecordLadderComputation(mode, direction string) {
	ladderComputations.WithLabelValues(mode, direction).Inc()
}

// RecordBacktest records one backtest run and its duration in seconds.
func RecordBacktest(symbol string, seconds float64) {
	backtestsTotal.WithLabelValues(symbol).Inc()
	backtestDuration.Observe(seconds)
}

// RecordKlinePage records one fetched page of kline data.
func RecordKlinePage(source string) {
	klinePages.WithLabelValues(source).Inc()
}

// RecordError records an error metric.
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
