package client

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mwatts/anytype-go/internal/logging"
)

// metrics holds the C2 request-duration histogram, the way a teacher
// component instruments its transport layer with prometheus/
// client_golang rather than hand-rolled counters.
type metrics struct {
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "anytype",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Duration of Anytype API requests by operation and outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "outcome"}),
	}
	if reg != nil {
		// Re-registration (e.g. multiple Client instances in tests) is
		// tolerated by reusing the already-registered collector.
		if err := reg.Register(m.requestDuration); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				m.requestDuration = are.ExistingCollector.(*prometheus.HistogramVec)
			}
		}
	}
	return m
}

func (m *metrics) observeRequest(op, outcome string, d time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(op, outcome).Observe(d.Seconds())
}

// logRequest emits the INFO/DEBUG/TRACE-tiered event described by spec
// §4.2: INFO always logs method+path; DEBUG (logr V(1)) adds header
// count, body size, and whether a credential is present; TRACE
// (logr V(2)) adds full, redacted headers and body.
func (c *Client) logRequest(op, method, path string, headers http.Header, body []byte, authPresent bool) {
	log := c.log.WithValues("op", op, "method", method, "path", path)
	log.Info("request")
	log.V(logging.VerbosityDebug).Info("request.debug",
		"header_count", len(headers),
		"body_bytes", len(body),
		"auth_present", authPresent,
	)
	log.V(logging.VerbosityTrace).Info("request.trace",
		"headers", redactHeaders(headers),
		"body", redactBody(body),
	)
}

func (c *Client) logResponse(op string, status int, d time.Duration, headers http.Header, body []byte) {
	log := c.log.WithValues("op", op, "status", status, "duration", d.String())
	log.Info("response")
	log.V(logging.VerbosityDebug).Info("response.debug",
		"header_count", len(headers),
		"body_bytes", len(body),
	)
	log.V(logging.VerbosityTrace).Info("response.trace",
		"headers", redactHeaders(headers),
		"body", redactBody(body),
	)
}
