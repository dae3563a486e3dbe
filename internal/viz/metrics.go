package viz

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts boards, expansions and finished searches of the visualiser.
type Metrics struct {
	registry *prometheus.Registry

	Boards   prometheus.Counter
	Steps    prometheus.Counter
	Searches *prometheus.CounterVec
	Expanded prometheus.Histogram
}

// NewMetrics registers the visualiser metrics on a private registry.
func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		Boards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridastar",
			Subsystem: "viz",
			Name:      "boards_total",
			Help:      "Boards generated by /api/init.",
		}),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridastar",
			Subsystem: "viz",
			Name:      "steps_total",
			Help:      "Node expansions served to clients.",
		}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridastar",
			Subsystem: "viz",
			Name:      "searches_total",
			Help:      "Finished searches by outcome.",
		}, []string{"outcome"}),
		Expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridastar",
			Subsystem: "viz",
			Name:      "expanded_nodes",
			Help:      "Nodes expanded per finished search.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
	}
	metrics.registry.MustRegister(metrics.Boards, metrics.Steps, metrics.Searches, metrics.Expanded)
	return metrics
}

// Handler serves the registry in the Prometheus text format.
func (metrics *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})
}
