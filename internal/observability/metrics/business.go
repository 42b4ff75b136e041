package metrics

import (
	"time"

	"magazine-catalog/internal/domain/entity"
)

// RecordArticleCreated increments the article counter.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordMagazineCreated increments the magazine counter.
func RecordMagazineCreated() {
	MagazinesCreatedTotal.Inc()
}

// RecordReassignment records a successful article reassignment.
// Field should be "author" or "magazine".
func RecordReassignment(field string) {
	ArticleReassignmentsTotal.WithLabelValues(field).Inc()
}

// RecordValidationFailure records a rejected write for the given entity
// ("author", "magazine", "article"). Errors that are not validation errors
// are recorded with kind "other".
func RecordValidationFailure(entityName string, err error) {
	kind := string(entity.KindOf(err))
	if kind == "" {
		kind = "other"
	}
	ValidationFailuresTotal.WithLabelValues(entityName, kind).Inc()
}

// UpdateArticlesTotal sets the article registry gauge.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// UpdateMagazinesTotal sets the magazine registry gauge.
func UpdateMagazinesTotal(count int64) {
	MagazinesTotal.Set(float64(count))
}

// RecordQuery records how long a derived query took.
// Operation should name the query (e.g., "magazine_contributors").
func RecordQuery(operation string, duration time.Duration) {
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
