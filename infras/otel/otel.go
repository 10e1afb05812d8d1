package otel

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"tzconv/config"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
	Shutdown(ctx context.Context) error
}

type otelImpl struct {
	tracerProvider oteltrace.TracerProvider
	shutdown       func(ctx context.Context) error
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.tracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

func (o *otelImpl) Shutdown(ctx context.Context) error {
	return o.shutdown(ctx)
}

// New returns a no-op tracer unless tracing is enabled. Enabled spans stay in
// process and are reported to the trace log level when they end.
func New(config *config.Config) Otel {
	if !config.App.Trace.Enable {
		return &otelImpl{
			tracerProvider: noop.NewTracerProvider(),
			shutdown:       func(context.Context) error { return nil },
		}
	}

	traceProvider := trace.NewTracerProvider(
		trace.WithSpanProcessor(NewLogProcessor(log.Logger)),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.App.Name),
		)),
	)

	otel.SetTracerProvider(traceProvider)

	log.Debug().Str("service", config.App.Name).Msg("Tracing enabled")

	return &otelImpl{
		tracerProvider: traceProvider,
		shutdown:       traceProvider.Shutdown,
	}
}
