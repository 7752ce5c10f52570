package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"tacticlens/internal/models"
)

var (
	uploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tacticlens_uploads_total",
		Help: "Total dataset uploads accepted",
	})
	classificationRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tacticlens_classification_runs_total",
		Help: "Total classification passes over a dataset",
	})
	recordsClassifiedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tacticlens_records_classified_total",
		Help: "Total records classified across all runs",
	})
	tacticMatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tacticlens_tactic_matches_total",
		Help: "Total records flagged present, by tactic",
	}, []string{"tactic"})
	runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tacticlens_classification_run_duration_seconds",
		Help:    "Duration of dataset classification passes",
		Buckets: prometheus.DefBuckets,
	})
)

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			uploadsTotal,
			classificationRunsTotal,
			recordsClassifiedTotal,
			tacticMatchesTotal,
			runDuration,
		)
	})
}

// RecordUpload counts an accepted dataset upload.
func RecordUpload() {
	uploadsTotal.Inc()
}

// RecordClassificationRun counts one pass over a dataset: its duration, the
// number of records, and per-tactic presence totals.
func RecordClassificationRun(records int, results [][]models.TacticResult, elapsed time.Duration) {
	classificationRunsTotal.Inc()
	recordsClassifiedTotal.Add(float64(records))
	runDuration.Observe(elapsed.Seconds())
	for _, row := range results {
		for _, res := range row {
			if res.Present {
				tacticMatchesTotal.WithLabelValues(res.Tactic).Inc()
			}
		}
	}
}
