package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dreschagin/brand-server/internal/brand"
	brandmetrics "github.com/dreschagin/brand-server/internal/metrics"
	"github.com/dreschagin/brand-server/internal/ratelimit"
	"github.com/dreschagin/brand-server/internal/server"
	"github.com/dreschagin/brand-server/internal/static"
	"github.com/dreschagin/brand-server/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run serves until ctx is cancelled or a listener fails and returns the
// process exit code.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger := newLogger(cfg.LogLevel, stdout)
	logger.Info("starting NEXUS TLDark brand system server", "root", cfg.Site.Root)

	dirs, err := brand.EnsureAssetDirs(cfg.Site.Root)
	if err != nil {
		logger.Error("server failed", "error", err)
		return 1
	}
	for _, dir := range dirs {
		logger.Info("asset directory ready", "dir", dir+"/")
	}

	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := brandmetrics.New(metricsRegistry)

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	handler := server.NewRouter(server.Options{
		Site:        brand.NewSite(cfg.Site.Root, cfg.Site.ManifestFile),
		MIMETypes:   static.NewMIMETable(nil),
		Logger:      logger,
		Metrics:     metrics,
		Limiter:     limiter,
		Compression: cfg.Compression.Enabled,
	})

	listener, err := net.Listen("tcp", ":"+cfg.ServerPort)
	if err != nil {
		logger.Error("server failed", "error", err)
		return 1
	}

	base := "http://localhost:" + cfg.ServerPort
	logger.Info("brand server listening",
		"port", cfg.ServerPort,
		"site", base,
		"download_guide", base+"/DOWNLOAD_PACKAGE_GUIDE.md",
		"package_info", base+"/download",
		"api_data", base+"/api/brand-info",
	)
	logger.Info("press Ctrl+C to stop the server")

	siteServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 2)
	go func() {
		serveErr <- siteServer.Serve(listener)
	}()

	var adminServer *http.Server
	if cfg.Admin.Addr != "" {
		adminServer = &http.Server{
			Addr:              cfg.Admin.Addr,
			Handler:           server.NewAdminMux(metricsRegistry, nil),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("admin server started", "addr", cfg.Admin.Addr)
			serveErr <- adminServer.ListenAndServe()
		}()
	}

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("server stopped by user")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := siteServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown brand server", "error", err)
	}
	if adminServer != nil {
		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown admin server", "error", err)
		}
	}

	return exitCode
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler)
}
