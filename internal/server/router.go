package server

import (
	"log/slog"
	"net/http"

	"github.com/dreschagin/brand-server/internal/brand"
	"github.com/dreschagin/brand-server/internal/httpx"
	brandmetrics "github.com/dreschagin/brand-server/internal/metrics"
	"github.com/dreschagin/brand-server/internal/ratelimit"
	"github.com/dreschagin/brand-server/internal/static"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the public handler chain.
type Options struct {
	Site        brand.Site
	MIMETypes   static.MIMETable
	Logger      *slog.Logger
	Metrics     *brandmetrics.Metrics
	Limiter     *ratelimit.Limiter
	Compression bool
}

// NewRouter builds the site handler with its middleware. Policy headers are
// applied outermost so rate-limit and panic responses carry them too.
func NewRouter(opts Options) http.Handler {
	files := static.NewServer(opts.Site.Root, opts.MIMETypes)

	var handler http.Handler = NewHandler(opts.Site, files, opts.Logger, opts.Metrics)
	handler = httpx.WithCompression(opts.Compression, handler)

	var onPanic func()
	if opts.Metrics != nil {
		onPanic = func() { opts.Metrics.HandlerError(brandmetrics.ErrorKindPanic) }
	}
	handler = httpx.WithRecovery(opts.Logger, onPanic, handler)
	handler = opts.Limiter.Middleware(opts.Metrics, handler)
	if opts.Metrics != nil {
		handler = opts.Metrics.Middleware(handler)
	}
	handler = httpx.WithRequestID(handler)
	handler = httpx.WithLogging(opts.Logger, handler)
	handler = httpx.WithPolicyHeaders(handler)

	return handler
}

// NewAdminMux serves health checks and metrics on a listener separate from the site,
// so no path of the site tree is shadowed.
func NewAdminMux(registry *prometheus.Registry, ready func() bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if ready != nil && !ready() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}
