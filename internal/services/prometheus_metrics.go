package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	queryRuns           *prometheus.CounterVec
	queryDuration       prometheus.Histogram
	queryResultCount    prometheus.Histogram
	batchFetches        *prometheus.CounterVec
	batchFetchDuration  prometheus.Histogram
	batchSize           prometheus.Histogram
	sessionResets       prometheus.Counter
	emptyRenders        *prometheus.CounterVec
	activeSessionsTotal prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		queryRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_query_runs_total",
				Help: "Total number of transaction query evaluations",
			},
			[]string{"view"},
		),
		queryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_milliseconds",
				Help:    "Transaction query evaluation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		queryResultCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_result_count",
				Help:    "Number of transactions matched per query evaluation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		batchFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_batch_fetches_total",
				Help: "Total number of transaction batch fetches from the source",
			},
			[]string{"source", "status"},
		),
		batchFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_batch_fetch_duration_milliseconds",
				Help:    "Transaction batch fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		batchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_batch_size",
				Help:    "Number of transactions returned per batch fetch",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		sessionResets: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "view_session_resets_total",
				Help: "Total number of view session filter resets",
			},
		),
		emptyRenders: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_empty_renders_total",
				Help: "Total number of renders that produced an empty page",
			},
			[]string{"kind"},
		),
		activeSessionsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "view_active_sessions_total",
				Help: "Current number of live view sessions",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "query.run":
		m.queryRuns.WithLabelValues(tags["view"]).Inc()
	case "batch.fetch.success":
		m.batchFetches.WithLabelValues(tags["source"], "success").Inc()
	case "batch.fetch.failed":
		reason := tags["reason"]
		if reason == "" {
			reason = "failed"
		}
		m.batchFetches.WithLabelValues(tags["source"], reason).Inc()
	case "session.reset":
		m.sessionResets.Inc()
	case "render.empty":
		if kind := tags["kind"]; kind != "" {
			m.emptyRenders.WithLabelValues(kind).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "query.run":
		m.queryDuration.Observe(float64(duration.Milliseconds()))
	case "batch.fetch":
		m.batchFetchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "query.result_count":
		m.queryResultCount.Observe(value)
	case "batch.size":
		m.batchSize.Observe(value)
	case "sessions.active":
		m.activeSessionsTotal.Set(value)
	}
}
