// Package tracing provides OpenTelemetry tracing helpers.
//
// Every catalog use case opens one internal span per operation. Spans are
// no-ops until the embedding program installs a TracerProvider.
//
// Example usage:
//
//	ctx, span := tracing.StartSpan(ctx, "magazine.Contributors",
//	    attribute.String("magazine.id", m.ID.String()))
//	defer func() { tracing.EndSpan(span, err) }()
package tracing
