// Package metrics exposes game activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gallery"

// Recorder counts rounds, shots and sessions. It is safe for concurrent use
// and satisfies loop.Recorder.
type Recorder struct {
	registry *prometheus.Registry

	roundsStarted   prometheus.Counter
	roundsCompleted prometheus.Counter
	roundScore      prometheus.Histogram
	shots           *prometheus.CounterVec
	sessions        prometheus.Gauge
}

// NewRecorder creates a Recorder on its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		roundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Rounds started.",
		}),
		roundsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_completed_total",
			Help:      "Rounds that ran until the timer expired.",
		}),
		roundScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_score",
			Help:      "Final score of completed rounds.",
			Buckets:   prometheus.LinearBuckets(0, 50, 10),
		}),
		shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shots_total",
			Help:      "Clicks during running rounds, by result.",
		}, []string{"result"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Connected terminal sessions.",
		}),
	}
	r.registry.MustRegister(r.roundsStarted, r.roundsCompleted, r.roundScore, r.shots, r.sessions)
	return r
}

func (r *Recorder) RoundStarted() {
	r.roundsStarted.Inc()
}

func (r *Recorder) RoundEnded(total int) {
	r.roundsCompleted.Inc()
	r.roundScore.Observe(float64(total))
}

func (r *Recorder) Shot(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.shots.WithLabelValues(result).Inc()
}

// SessionStarted and SessionEnded track connected sessions.
func (r *Recorder) SessionStarted() { r.sessions.Inc() }
func (r *Recorder) SessionEnded()   { r.sessions.Dec() }

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
