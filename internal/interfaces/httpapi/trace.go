package httpapi

import (
	"context"

	"github.com/riskibarqy/football-live/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Only handler entry points get their own span; middleware and helpers
// run under the otelhttp request span.
var apiSpans = tracing.NewScope("football-live/internal/interfaces/httpapi", tracing.HasPrefix("httpapi.Handler."))

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiSpans.Start(ctx, name)
}
