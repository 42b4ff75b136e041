// Package observability groups the catalog's logging, metrics and tracing
// helpers.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus counters, gauges and histograms for the registries
//   - tracing: OpenTelemetry spans around service operations
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("catalog started")
//
//	    metrics.RecordMagazineCreated()
//	}
package observability
