package services

import (
	"time"
)

// MetricsRecorderInterface abstracts metric emission so the views and
// handlers stay testable without a live Prometheus registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// NoopMetrics discards every recording. Used in tests.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)    {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)    {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
