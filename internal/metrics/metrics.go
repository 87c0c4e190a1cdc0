package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger Metrics
var (
	// ApplicationsSubmitted counts applications accepted by the ledger
	ApplicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_applications_submitted_total",
			Help: "Total applications accepted by the ledger",
		},
	)

	// SubmissionsRefused counts submissions refused before any write, by reason
	SubmissionsRefused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_submissions_refused_total",
			Help: "Submissions refused by the ledger by reason",
		},
		[]string{"reason"},
	)

	// Transitions counts status transition attempts by transition and outcome
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transitions_total",
			Help: "Application status transitions by transition and outcome",
		},
		[]string{"transition", "outcome"},
	)

	// HireRejections counts applications auto-rejected as a side effect of a hire
	HireRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_hire_side_effect_rejections_total",
			Help: "Applications rejected because another application of the job was hired",
		},
	)

	// LockWait tracks how long mutations waited for the store lock
	LockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledger_lock_wait_seconds",
			Help:    "Time spent waiting for the ledger store lock",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Rate limiting Metrics
var (
	// RateLimited counts requests rejected by the submission rate limiter
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_submissions_rate_limited_total",
			Help: "Submission requests rejected by the per-user rate limiter",
		},
	)
)
