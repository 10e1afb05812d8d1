package mocks

import "tzconv/infras/otel"

type scopeImpl struct{}

// End implements otel.Scope.
func (s *scopeImpl) End() {}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(_ error) {}

// AddEvent implements otel.Scope.
func (s *scopeImpl) AddEvent(_ string) {}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
