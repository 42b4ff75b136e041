// Package author provides use cases for authors: creation, article
// authoring and the derived views over the articles an author has written.
package author

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
	"magazine-catalog/internal/usecase/article"
)

// ArticleCreator registers new articles. *article.Service satisfies it.
type ArticleCreator interface {
	Create(ctx context.Context, in article.CreateInput) (*entity.Article, error)
}

// Service provides author use cases.
// Every view is computed by scanning the article registry, so it always
// reflects the current author of each article.
type Service struct {
	Repo    repository.ArticleRepository
	Creator ArticleCreator
	Logger  *slog.Logger
}

// Create validates name and returns a new author.
func (s *Service) Create(ctx context.Context, name string) (_ *entity.Author, err error) {
	ctx, span := tracing.StartSpan(ctx, "author.Create", attribute.String("author.name", name))
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	a, err := entity.NewAuthor(name)
	if err != nil {
		metrics.RecordValidationFailure("author", err)
		logger.Warn("author rejected", slog.String("error", err.Error()))
		return nil, err
	}
	logger.Debug("author created", slog.String("author_id", a.ID.String()), slog.String("name", name))
	return a, nil
}

// Articles returns the articles written by a, in registry order.
// The slice is empty, not nil, when a has written nothing.
func (s *Service) Articles(ctx context.Context, a *entity.Author) (_ []*entity.Article, err error) {
	ctx, done := s.query(ctx, "author.Articles", a)
	defer func() { done(err) }()

	return s.listByAuthor(ctx, a)
}

// Magazines returns the distinct magazines a has written for, in order of
// first appearance. The slice is empty, not nil, when there are none.
func (s *Service) Magazines(ctx context.Context, a *entity.Author) (_ []*entity.Magazine, err error) {
	ctx, done := s.query(ctx, "author.Magazines", a)
	defer func() { done(err) }()

	articles, err := s.listByAuthor(ctx, a)
	if err != nil {
		return nil, err
	}

	magazines := make([]*entity.Magazine, 0, len(articles))
	seen := make(map[uuid.UUID]struct{}, len(articles))
	for _, art := range articles {
		m := art.Magazine()
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		magazines = append(magazines, m)
	}
	return magazines, nil
}

// AddArticle writes a new article for magazine and registers it.
// Validation errors are returned as they come from the article use case.
func (s *Service) AddArticle(ctx context.Context, a *entity.Author, magazine *entity.Magazine, title string) (_ *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "author.AddArticle", attribute.String("article.title", title))
	defer func() { tracing.EndSpan(span, err) }()

	return s.Creator.Create(ctx, article.CreateInput{Author: a, Magazine: magazine, Title: title})
}

// TopicAreas returns the distinct categories of the magazines a has written
// for, in order of first appearance. It returns nil when a has no articles.
func (s *Service) TopicAreas(ctx context.Context, a *entity.Author) (_ []string, err error) {
	ctx, done := s.query(ctx, "author.TopicAreas", a)
	defer func() { done(err) }()

	articles, err := s.listByAuthor(ctx, a)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	var categories []string
	seen := make(map[string]struct{})
	for _, art := range articles {
		c := art.Magazine().Category()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *Service) listByAuthor(ctx context.Context, a *entity.Author) ([]*entity.Article, error) {
	if err := entity.ValidateAuthorRef(a); err != nil {
		return nil, err
	}
	articles, err := s.Repo.ListByAuthor(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("list author articles: %w", err)
	}
	return articles, nil
}

// query opens a span and returns a func that records the query duration and ends it.
func (s *Service) query(ctx context.Context, op string, a *entity.Author) (context.Context, func(error)) {
	start := time.Now()
	var attrs []attribute.KeyValue
	if a != nil {
		attrs = append(attrs, attribute.String("author.id", a.ID.String()))
	}
	ctx, span := tracing.StartSpan(ctx, op, attrs...)
	return ctx, func(err error) {
		metrics.RecordQuery(op, time.Since(start))
		tracing.EndSpan(span, err)
	}
}
