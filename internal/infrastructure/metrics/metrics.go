// Package metrics provides Prometheus metrics for the twilio-api service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued tracks issued access tokens by product (chat, video).
	TokensIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twilio_tokens_issued_total",
			Help: "Total number of access tokens issued",
		},
		[]string{"product"},
	)

	// TokenGenerationDuration tracks token signing time.
	TokenGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "twilio_token_generation_duration_seconds",
			Help:    "Duration of access token generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// UpstreamRequests tracks calls to the Twilio management API.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twilio_upstream_requests_total",
			Help: "Total number of requests to the Twilio management API",
		},
		[]string{"api", "operation", "outcome"},
	)

	// UpstreamRequestDuration tracks the duration of Twilio management API calls.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "twilio_upstream_request_duration_seconds",
			Help:    "Duration of requests to the Twilio management API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api", "operation"},
	)
)

// RecordTokenIssued increments the token issuance counter for a product.
func RecordTokenIssued(product string) {
	TokensIssued.WithLabelValues(product).Inc()
}

// RecordUpstreamRequest records one management API call.
func RecordUpstreamRequest(api, operation, outcome string, seconds float64) {
	UpstreamRequests.WithLabelValues(api, operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(api, operation).Observe(seconds)
}
