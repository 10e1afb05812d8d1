package otel

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
)

type logProcessor struct {
	logger zerolog.Logger
}

// NewLogProcessor returns a span processor that writes each finished span to logger at trace level.
func NewLogProcessor(logger zerolog.Logger) trace.SpanProcessor {
	return &logProcessor{logger: logger}
}

func (p *logProcessor) OnStart(_ context.Context, _ trace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(span trace.ReadOnlySpan) {
	event := p.logger.Trace()
	if span.Status().Code == codes.Error {
		event = p.logger.Debug().Str("error", span.Status().Description)
	}

	for _, attr := range span.Attributes() {
		event = event.Str(string(attr.Key), attr.Value.Emit())
	}

	event.
		Str("span", span.Name()).
		Str("scope", span.InstrumentationScope().Name).
		Dur("elapsed", span.EndTime().Sub(span.StartTime())).
		Msg("Span finished")
}

func (p *logProcessor) Shutdown(context.Context) error {
	return nil
}

func (p *logProcessor) ForceFlush(context.Context) error {
	return nil
}
