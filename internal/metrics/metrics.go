// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upload & Analysis Metrics
var (
	// UploadsTotal tracks uploads by outcome status (ok, invalid, rejected, error)
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_uploads_total",
			Help: "Total CSV uploads by outcome status",
		},
		[]string{"status"},
	)

	// AnalysisDuration tracks end-to-end analysis latency in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_analysis_duration_seconds",
			Help:    "Full parse+score+aggregate duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// ReviewsProcessed tracks total review rows scored
	ReviewsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_reviews_processed_total",
			Help: "Total review rows scored across all uploads",
		},
	)

	// ReviewsBySentiment tracks scored rows by resulting sentiment label
	ReviewsBySentiment = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_reviews_by_sentiment_total",
			Help: "Scored review rows by sentiment label",
		},
		[]string{"label"},
	)

	// AnalysesInFlight tracks analyses currently running
	AnalysesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedback_analyses_in_flight",
			Help: "Number of analyses currently running",
		},
	)
)
