// Package metrics provides Prometheus metrics for the podium leaderboard.
package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Manager manages all Prometheus metrics for the leaderboard engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Ingestion metrics
	submissionsScored   prometheus.Counter
	submissionsRejected *prometheus.CounterVec
	teamReplacements    prometheus.Counter
	scoringLatency      prometheus.Histogram

	// Board state metrics
	truthResets    prometheus.Counter
	metricSwitches prometheus.Counter
	teamCount      prometheus.Gauge
	truthSize      prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// init registers the global manager on its own registry so the default Go
// collectors do not leak into dumps.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "board",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.submissionsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_scored_total",
		Help:      "Total number of submissions scored and stored",
	})

	m.submissionsRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_rejected_total",
		Help:      "Total number of rejected submissions by reason",
	}, []string{"reason"})

	m.teamReplacements = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "team_replacements_total",
		Help:      "Total number of re-uploads that replaced a team's submission",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_seconds",
		Help:      "Histogram of end-to-end scoring latency in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.truthResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ground_truth_resets_total",
		Help:      "Total number of ground truth uploads (each clears the board)",
	})

	m.metricSwitches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "metric_switches_total",
		Help:      "Total number of ranking metric changes",
	})

	m.teamCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "team_count",
		Help:      "Current number of teams on the board",
	})

	m.truthSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ground_truth_size",
		Help:      "Number of values in the current ground truth",
	})
}

// Dump renders every registered metric in the Prometheus text format.
func (m *Manager) Dump() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGatherFailed, err)
	}
	var sb strings.Builder
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&sb, mf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrGatherFailed, err)
		}
	}
	return sb.String(), nil
}

// Package-level helpers on the global manager.

// RecordSubmissionScored counts a stored submission.
func RecordSubmissionScored() { globalManager.submissionsScored.Inc() }

// RecordSubmissionRejected counts a rejected submission by reason.
func RecordSubmissionRejected(reason string) {
	globalManager.submissionsRejected.WithLabelValues(reason).Inc()
}

// RecordTeamReplacement counts a re-upload that replaced a team's entry.
func RecordTeamReplacement() { globalManager.teamReplacements.Inc() }

// RecordScoringLatency observes one scoring duration in seconds.
func RecordScoringLatency(seconds float64) { globalManager.scoringLatency.Observe(seconds) }

// RecordTruthReset counts a ground truth replacement.
func RecordTruthReset() { globalManager.truthResets.Inc() }

// RecordMetricSwitch counts a ranking metric change.
func RecordMetricSwitch() { globalManager.metricSwitches.Inc() }

// UpdateTeamCount sets the current number of teams on the board.
func UpdateTeamCount(n int) { globalManager.teamCount.Set(float64(n)) }

// UpdateTruthSize sets the current ground truth length.
func UpdateTruthSize(n int) { globalManager.truthSize.Set(float64(n)) }

// Dump renders the global manager's metrics in the Prometheus text format.
func Dump() (string, error) { return globalManager.Dump() }
