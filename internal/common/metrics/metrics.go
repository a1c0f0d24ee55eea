// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "career_workers"

// Job lifecycle, labelled by Zeebe task type.
var (
	WorkerJobsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_completed_total",
		Help:      "Jobs completed, by task type",
	}, []string{"task_type"})

	WorkerJobsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_failed_total",
		Help:      "Jobs failed, by task type and error code",
	}, []string{"task_type", "error_code"})

	WorkerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Time from job activation to completion or failure",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"task_type"})

	WorkerJobsActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "jobs_active",
		Help:      "Jobs currently being handled",
	}, []string{"task_type"})
)

// Ranking and scoring.
var (
	SkillPrioritizationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "skill_prioritization_duration_seconds",
		Help:      "Duration of one skill gap prioritization",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"career_known"})

	SkillCandidatesExcluded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skill_candidates_excluded_total",
		Help:      "Missing skills dropped because the skill encoder does not know them",
	})

	UnknownCategoricalLabels = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_categorical_labels_total",
		Help:      "Lookups that fell back to the neutral score",
	}, []string{"table"})

	MarketSignalRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_signal_refreshes_total",
		Help:      "Market demand snapshot refreshes by outcome",
	}, []string{"status"})
)

// NotificationsSent counts skill plan deliveries per channel; status is
// "sent" or "failed".
var NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "notifications_total",
	Help:      "Skill plan notifications by channel and outcome",
}, []string{"channel", "status"})
