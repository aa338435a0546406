// Package metrics defines the Prometheus metrics exported by the garage
// API. Metric names and labels live here and nowhere else.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "garage"

// HTTPRequestsTotal counts completed HTTP requests.
// Labels:
//   - method: HTTP verb
//   - path: chi route pattern, not the raw URL
//   - status: numeric status code as a string
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from receipt to final byte.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// OrdersCreatedTotal counts accepted service orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of service orders created.",
	},
)

// OrdersCompletedTotal counts orders that reached completion.
var OrdersCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_completed_total",
		Help:      "Total number of service orders completed.",
	},
)

// LoginsTotal counts login attempts by principal kind and outcome.
// Labels:
//   - kind: "customer" or "employee"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal kind and result.",
	},
	[]string{"kind", "result"},
)
