// Package metrics defines the Prometheus instrumentation for the travel
// admin client. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travelctl"

// HTTPRequestsTotal counts requests issued through the API client.
// Labels:
//   - method: HTTP method (GET, POST, PATCH, DELETE)
//   - status: numeric response status, or "transport_error" when the request
//     never produced a response
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of backend requests, by method and status.",
	},
	[]string{"method", "status"},
)

// HTTPRequestDuration measures request latency end-to-end.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of backend requests from send to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// SessionExpirationsTotal counts 401 responses that forced a session teardown.
var SessionExpirationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_expirations_total",
		Help:      "Total number of unauthorized responses that cleared the session.",
	},
)

// AuthFailuresTotal counts failed login attempts.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of login attempts rejected by the backend.",
	},
)
