// Package metrics provides Prometheus metrics and recording helpers for the catalog.
//
// Metrics cover registry growth (articles and magazines created, current
// registry sizes), validation failures by entity and kind, article
// reassignments and derived-query latency. All metrics are registered with
// the Prometheus default registry; exposing them is left to the embedding
// program.
//
// Example usage:
//
//	start := time.Now()
//	authors, err := svc.Contributors(ctx, magazine)
//	metrics.RecordQuery("magazine_contributors", time.Since(start))
package metrics
