// Package observability provides Prometheus metrics for the pipeline. The
// pipeline is a batch job without an HTTP listener; counters are gathered
// and logged at the end of each run.
package observability

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all the metric collectors for one pipeline run.
type Metrics struct {
	registry *prometheus.Registry

	recordsParsed *prometheus.CounterVec
	rowsWritten   *prometheus.CounterVec
	batchFailures *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// NewMetrics creates a new instance of Metrics with its own registry.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		recordsParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unicode3_records_parsed_total",
			Help: "Number of records parsed per source file",
		}, []string{"source"}),
		rowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unicode3_rows_written_total",
			Help: "Number of rows inserted per output table",
		}, []string{"table"}),
		batchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unicode3_batch_failures_total",
			Help: "Number of failed batch inserts per output table",
		}, []string{"table"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unicode3_stage_duration_seconds",
			Help:    "Elapsed time per pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"stage"}),
	}

	collectors := []prometheus.Collector{
		m.recordsParsed,
		m.rowsWritten,
		m.batchFailures,
		m.stageDuration,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// RecordRecordsParsed adds n to the parsed-record counter of a source.
func (m *Metrics) RecordRecordsParsed(source string, n int) {
	m.recordsParsed.WithLabelValues(source).Add(float64(n))
}

// RecordRowsWritten adds n to the written-row counter of a table.
func (m *Metrics) RecordRowsWritten(table string, n int) {
	m.rowsWritten.WithLabelValues(table).Add(float64(n))
}

// RecordBatchFailure counts a failed batch insert.
func (m *Metrics) RecordBatchFailure(table string) {
	m.batchFailures.WithLabelValues(table).Inc()
}

// RecordStageDuration observes the elapsed seconds of a pipeline stage.
func (m *Metrics) RecordStageDuration(stage string, seconds float64) {
	m.stageDuration.WithLabelValues(stage).Observe(seconds)
}

// LogSummary gathers all counters and writes one log line per sample.
func (m *Metrics) LogSummary(log *slog.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		log.Warn("Failed to gather metrics", "error", err)
		return
	}
	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		metrics := family.GetMetric()
		sort.Slice(metrics, func(i, j int) bool {
			return labelString(metrics[i]) < labelString(metrics[j])
		})
		for _, metric := range metrics {
			log.Info("Run metric",
				"name", family.GetName(),
				"labels", labelString(metric),
				"value", metric.GetCounter().GetValue())
		}
	}
}

func labelString(metric *dto.Metric) string {
	pairs := make([]string, 0, len(metric.GetLabel()))
	for _, label := range metric.GetLabel() {
		pairs = append(pairs, label.GetName()+"="+label.GetValue())
	}
	return strings.Join(pairs, ",")
}
