package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"azmarcli/internal/config"
)

// TracerName is the instrumentation scope of every span the tool emits
const TracerName = "azmarcli"

// Tracing holds the tracer used by the driver and a shutdown hook that
// flushes pending spans.
type Tracing struct {
	Tracer   trace.Tracer
	Shutdown func(context.Context) error
}

// InitTracing builds a tracer for cfg. The "stdout" exporter writes spans as
// JSON to w; "none" returns a no-op tracer.
func InitTracing(cfg config.TelemetryConfig, w io.Writer, logger *slog.Logger) (*Tracing, error) {
	switch cfg.TraceExporter {
	case "none", "":
		return &Tracing{
			Tracer:   noop.NewTracerProvider().Tracer(TracerName),
			Shutdown: func(context.Context) error { return nil },
		}, nil
	case "stdout":
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(config.AppVersion),
	)

	// Each span is written as soon as it ends.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	logger.Debug("Tracing initialized", slog.String("exporter", cfg.TraceExporter))

	return &Tracing{
		Tracer:   tp.Tracer(TracerName, trace.WithInstrumentationVersion(config.AppVersion)),
		Shutdown: tp.Shutdown,
	}, nil
}

// StartStep opens a span for one processing step against the given input file
func StartStep(ctx context.Context, tracer trace.Tracer, step, path string) (context.Context, trace.Span) {
	return tracer.Start(ctx, step,
		trace.WithAttributes(
			attribute.String("step", step),
			attribute.String("input.path", path),
		))
}

// EndStep records err on span, if any, and ends it
func EndStep(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
