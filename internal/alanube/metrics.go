package alanube

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records gateway traffic
type Metrics struct {
	// Requests by operation and HTTP status code ("error" on transport failure)
	Requests *prometheus.CounterVec

	// Request latency by operation
	Latency *prometheus.HistogramVec
}

// NewMetrics registers the gateway metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "alanube_requests_total",
			Help: "Total requests sent to the Alanube gateway by operation and status code",
		}, []string{"operation", "code"}),

		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alanube_request_duration_seconds",
			Help:    "Duration of requests to the Alanube gateway",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
	}
}

// ObserveRequest records one completed request. A zero code means the
// request never got a response.
func (m *Metrics) ObserveRequest(operation string, code int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.Requests.WithLabelValues(operation, label).Inc()
	m.Latency.WithLabelValues(operation).Observe(d.Seconds())
}
