package tracing

import (
	"context"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName is the default tracer name for catalog spans.
const InstrumentationName = "magazine-catalog"

var tracerName atomic.Value

// SetTracerName changes the tracer name used by GetTracer.
// A blank name restores InstrumentationName.
func SetTracerName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = InstrumentationName
	}
	tracerName.Store(name)
}

// TracerName returns the tracer name currently in use.
func TracerName() string {
	if name, ok := tracerName.Load().(string); ok {
		return name
	}
	return InstrumentationName
}

// GetTracer returns the catalog tracer from the global provider.
// It is looked up on every call so a provider installed after start-up
// (tests, embedding programs) is honoured.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName())
}

// StartSpan starts an internal span named name carrying attrs.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span (when non-nil) and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
