package mocks

import (
	"context"

	"tzconv/infras/otel"
)

// Otel records the names of the spans it opens and never exports anything.
type Otel struct {
	Spans []string
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.Spans = append(o.Spans, spanName)

	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(context.Context) error {
	return nil
}

func NewOtel() *Otel {
	return &Otel{}
}
