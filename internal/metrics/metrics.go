package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dreschagin/brand-server/internal/httpx"
	"github.com/dreschagin/brand-server/internal/routing"
	"github.com/prometheus/client_golang/prometheus"
)

// Error kinds reported through HandlerErrors.
const (
	ErrorKindManifestRead  = "manifest_read"
	ErrorKindManifestParse = "manifest_parse"
	ErrorKindFilesystem    = "filesystem"
	ErrorKindPanic         = "panic"
	ErrorKindOther         = "other"
)

// Metrics bundles prometheus collectors used by the brand server.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDurationSec *prometheus.HistogramVec
	HandlerErrors      *prometheus.CounterVec
	RateLimitDropped   prometheus.Counter
}

func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brand_server_requests_total",
			Help: "Total number of brand server HTTP requests.",
		}, []string{"route", "method", "status"}),
		RequestDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brand_server_request_duration_seconds",
			Help:    "Brand server request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		HandlerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brand_server_handler_errors_total",
			Help: "Total number of requests that ended in a handler error, by kind.",
		}, []string{"kind"}),
		RateLimitDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brand_server_ratelimit_dropped_total",
			Help: "Total number of requests dropped by rate limiter.",
		}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSec,
		m.HandlerErrors,
		m.RateLimitDropped,
	)

	return m
}

// HandlerError counts one handler failure of the given kind.
func (m *Metrics) HandlerError(kind string) {
	m.HandlerErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		wrapped := httpx.NewStatusRecorder(w)

		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.Status())
		route := string(routing.Match(r.URL.EscapedPath()))
		m.RequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		m.RequestDurationSec.WithLabelValues(route, r.Method, status).Observe(time.Since(startedAt).Seconds())
	})
}
