package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/clauseguard-server/internal/domain"
)

// metrics holds the Prometheus instruments for the analysis surface. A
// fresh registry per server keeps parallel test servers from colliding on
// duplicate registration.
type metrics struct {
	registry         *prometheus.Registry
	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	comparisonsTotal prometheus.Counter
	exportsTotal     *prometheus.CounterVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		analysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clauseguard_analyses_total",
			Help: "Completed document analyses by detected type and risk level.",
		}, []string{"document_type", "risk_level"}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clauseguard_analysis_duration_seconds",
			Help:    "Wall-clock duration of a single document analysis.",
			Buckets: prometheus.DefBuckets,
		}),
		comparisonsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "clauseguard_comparisons_total",
			Help: "Completed compare and rank requests.",
		}),
		exportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clauseguard_exports_total",
			Help: "Report exports by format.",
		}, []string{"format"}),
	}
}

func (m *metrics) observeAnalysis(result *domain.AnalysisResult, elapsed time.Duration) {
	m.analysesTotal.WithLabelValues(result.DocumentType.String(), result.Risk.Level.String()).Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
}
