// Package metrics provides centralized Prometheus metrics for the catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track catalog mutations
var (
	// ArticlesCreatedTotal counts articles registered since process start
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_articles_created_total",
			Help: "Total number of articles registered in the catalog",
		},
	)

	// MagazinesCreatedTotal counts magazines registered since process start
	MagazinesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_magazines_created_total",
			Help: "Total number of magazines registered in the catalog",
		},
	)

	// ArticleReassignmentsTotal counts successful author/magazine reassignments
	ArticleReassignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_article_reassignments_total",
			Help: "Total number of article author or magazine reassignments",
		},
		[]string{"field"},
	)

	// ValidationFailuresTotal counts rejected constructions and writes
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of validation failures by entity and kind",
		},
		[]string{"entity", "kind"},
	)

	// ArticlesTotal tracks the current size of the article registry
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Number of articles currently registered",
		},
	)

	// MagazinesTotal tracks the current size of the magazine registry
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_magazines_total",
			Help: "Number of magazines currently registered",
		},
	)
)

// Query metrics track derived-query scans
var (
	// QueryDuration measures derived query duration in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of derived catalog queries in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	)
)
