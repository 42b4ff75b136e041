// Package article provides use cases for the article registry.
// It creates articles, reassigns their author or magazine, and reads the
// global list of articles.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article is not registered.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates a nil article ID.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
