package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_predictions_total",
		Help: "Predictions served, by feedback band.",
	}, []string{"feedback"})

	predictionScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "predictor_score",
		Help:    "Distribution of predicted exam scores.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	persistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_persistence_failures_total",
		Help: "History save attempts that fell back to in-memory state.",
	})

	fallbackActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "predictor_fallback_scorer_active",
		Help: "1 when the heuristic fallback is serving predictions.",
	})
)
