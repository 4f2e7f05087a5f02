// Package tracing starts child spans for in-process layers.
//
// Spans are only created under an existing valid parent, so helpers invoked
// from unsampled entry points (health probes, CLI one-shots) do not emit
// orphan root spans.
package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var noop = trace.SpanFromContext(context.Background())

type Scope struct {
	tracer trace.Tracer
	allow  func(name string) bool
}

// NewScope returns a Scope for the given instrumentation name. allow may be
// nil, in which case every non-empty span name is accepted.
func NewScope(instrumentation string, allow func(name string) bool) Scope {
	return Scope{tracer: otel.Tracer(instrumentation), allow: allow}
}

// HasPrefix returns a filter accepting span names that start with prefix.
func HasPrefix(prefix string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, prefix) }
}

func (s Scope) Start(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noop
	}
	if s.allow != nil && !s.allow(name) {
		return ctx, noop
	}
	if s.tracer == nil {
		return ctx, noop
	}
	return s.tracer.Start(ctx, name)
}
