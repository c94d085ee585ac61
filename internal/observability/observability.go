// Package observability wires up the teacher's logging/metrics/tracing
// conventions (zap + Prometheus + OpenTelemetry) for the solver's own
// concerns: solve duration, result counts, and a tracer provider for
// cmd/server, instead of the teacher's websocket/command metrics.
package observability

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
)

// Metrics are the solver's Prometheus instruments. The HTTP service
// updates SolveLatency, ResultTotal and SolveRequests after each call to
// internal/search.Solve; the CLI records none of them, and nothing
// increments CandidateTotal.
type Metrics struct {
	SolveLatency   prometheus.Histogram
	CandidateTotal prometheus.Counter
	ResultTotal    prometheus.Counter
	SolveRequests  *prometheus.CounterVec
}

// NewMetrics registers the solver's instruments against reg, or the
// default registerer when reg is nil.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer.(*prometheus.Registry)
	}
	return &Metrics{
		SolveLatency: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "solve_latency_ms",
			Help:    "Latency of a full Solve call",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		CandidateTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "solve_candidate_total",
			Help: "Villager-group subsets dispatched to workers",
		}),
		ResultTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "solve_result_total",
			Help: "Worlds returned by Solve across all calls",
		}),
		SolveRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "solve_requests_total",
			Help: "Solve invocations by outcome",
		}, []string{"outcome"}),
	}
}

// SetupTracerProvider installs a tracer provider that, when stdout is
// true, exports spans to stdout; otherwise it records but discards
// them. cmd/server installs it at startup; the search engine itself
// starts no spans.
func SetupTracerProvider(ctx context.Context, serviceName string, stdout bool, logger *zap.Logger) (*sdktrace.TracerProvider, error) {
	var exporter *stdouttrace.Exporter
	var err error
	if stdout {
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
	}

	rs := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(rs),
	)
	if exporter != nil {
		tp.RegisterSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter))
	}
	otel.SetTracerProvider(tp)
	logger.Info("tracer initialized")
	return tp, nil
}

// SetupLogger builds the production JSON zap.Logger used by both
// cmd/solve and cmd/server.
func SetupLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	return cfg.Build()
}

// ZapToSlog wraps a zap.Logger as a slog.Logger for the standard-
// library-shaped pieces (http.Server.ErrorLog, which wants a *log.Logger
// built from a slog.Handler) that expect one, so server-level errors
// land in the same zap sink as everything else.
func ZapToSlog(logger *zap.Logger) *slog.Logger {
	return slog.New(slogHandler{logger.Sugar()})
}

type slogHandler struct {
	sugar *zap.SugaredLogger
}

func (h slogHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h slogHandler) Handle(ctx context.Context, r slog.Record) error {
	args := make([]interface{}, 0, r.NumAttrs()*2)
	r.Attrs(func(a slog.Attr) bool {
		args = append(args, a.Key, a.Value.Any())
		return true
	})
	switch r.Level {
	case slog.LevelDebug:
		h.sugar.Debugw(r.Message, args...)
	case slog.LevelInfo:
		h.sugar.Infow(r.Message, args...)
	case slog.LevelWarn:
		h.sugar.Warnw(r.Message, args...)
	case slog.LevelError:
		h.sugar.Errorw(r.Message, args...)
	}
	return nil
}

func (h slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	args := make([]interface{}, 0, len(attrs)*2)
	for _, a := range attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	return slogHandler{h.sugar.With(args...)}
}

func (h slogHandler) WithGroup(name string) slog.Handler {
	return h
}
