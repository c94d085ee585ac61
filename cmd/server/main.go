// Command server is the optional small HTTP service §1 allows around
// the core (the core itself is a pure enumerator; this just exposes it
// over HTTP with the same observability conventions the teacher wires
// up for its own server: zap logging, a Prometheus /metrics endpoint,
// and an OpenTelemetry tracer provider).
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/qingchang/grimoire-deduce/internal/config"
	"github.com/qingchang/grimoire-deduce/internal/httpapi"
	"github.com/qingchang/grimoire-deduce/internal/observability"
)

func main() {
	cfg := config.Load()

	logger, err := observability.SetupLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := observability.SetupTracerProvider(ctx, "grimoire-deduce", cfg.TraceStdout, logger)
	if err != nil {
		logger.Fatal("failed to set up tracer provider", zap.Error(err))
	}
	defer tp.Shutdown(ctx)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	srv := &httpapi.Server{Logger: logger, Metrics: metrics, Workers: cfg.Workers}
	router := httpapi.NewRouter(srv)

	// net/http's Server.ErrorLog is a *log.Logger, not a zap logger;
	// route it through the same zap sink everything else logs to.
	errLog := slog.NewLogLogger(observability.ZapToSlog(logger).Handler(), slog.LevelError)

	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ErrorLog: errLog}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{Addr: cfg.PromAddr, Handler: metricsMux, ErrorLog: errLog}

	go func() {
		logger.Info("solve HTTP API listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("metrics listening", zap.String("addr", cfg.PromAddr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	metricsServer.Shutdown(shutdownCtx)
}
