package httpclient

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records outbound call counts and latencies. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Outbound backend requests by method, endpoint and outcome.",
		}, []string{"method", "endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latency of outbound backend requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}

	for _, collector := range []prometheus.Collector{metrics.requests, metrics.duration} {
		if err := registerer.Register(collector); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return metrics, nil
}

func (m *Metrics) observe(method, endpoint string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, endpoint, outcome(err)).Inc()
	m.duration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	if svcErr, ok := IsServiceError(err); ok {
		return strconv.Itoa(svcErr.StatusCode)
	}

	if errors.Is(err, ErrRequestFailed) {
		return "transport_error"
	}

	return "client_error"
}
