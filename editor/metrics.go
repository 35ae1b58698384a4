package editor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Highlighting metrics, shared by every controller in the process.
var (
	highlightPasses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scribe_highlight_passes_total",
		Help: "Count of highlight passes run, by language",
	}, []string{"language"})

	highlightStale = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scribe_highlight_stale_total",
		Help: "Count of highlight results dropped because the text changed while they ran",
	})

	highlightDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scribe_highlight_duration_seconds",
		Help:    "Durations of highlight passes",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"language"})
)

func init() {
	prometheus.MustRegister(highlightPasses)
	prometheus.MustRegister(highlightStale)
	prometheus.MustRegister(highlightDuration)
}

func observeHighlight(lang string, start time.Time) {
	highlightPasses.WithLabelValues(lang).Inc()
	highlightDuration.WithLabelValues(lang).Observe(time.Since(start).Seconds())
}
