// Package catalog is the entry point for the magazine catalog. A Catalog
// owns the article and magazine registries and exposes the author,
// magazine and article services that operate on them.
//
//	c := catalog.New()
//	carry, _ := c.Authors.Create(ctx, "Carry Bradshaw")
//	vogue, _ := c.Magazines.Create(ctx, "Vogue", "Fashion")
//	_, _ = c.Authors.AddArticle(ctx, carry, vogue, "How to wear a tutu with style")
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
	"magazine-catalog/internal/usecase/article"
	"magazine-catalog/internal/usecase/author"
	"magazine-catalog/internal/usecase/magazine"
	"magazine-catalog/pkg/config"
)

// Catalog wires the registries to the services.
type Catalog struct {
	Authors   *author.Service
	Magazines *magazine.Service
	Articles  *article.Service

	articleRepo  repository.ArticleRepository
	magazineRepo repository.MagazineRepository
	logger       *slog.Logger
}

// Stats is a snapshot of the registry sizes.
type Stats struct {
	Articles  int64
	Magazines int64
}

type options struct {
	logger       *slog.Logger
	threshold    int
	articleRepo  repository.ArticleRepository
	magazineRepo repository.MagazineRepository
}

// Option configures a Catalog.
type Option func(*options)

// WithLogger sets the logger used by every service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithContributorThreshold sets the article count an author must exceed to
// be a contributing author. Non-positive values keep the default.
func WithContributorThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// WithRegistries replaces the in-memory registries.
func WithRegistries(articles repository.ArticleRepository, magazines repository.MagazineRepository) Option {
	return func(o *options) {
		o.articleRepo = articles
		o.magazineRepo = magazines
	}
}

// New builds a Catalog with empty in-memory registries. Without WithLogger
// the services log to stdout as configured by LOG_LEVEL and LOG_FORMAT.
func New(opts ...Option) *Catalog {
	o := options{threshold: magazine.DefaultContributorThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewLogger()
	}
	if o.articleRepo == nil {
		o.articleRepo = memory.NewArticleRepo()
	}
	if o.magazineRepo == nil {
		o.magazineRepo = memory.NewMagazineRepo()
	}

	articles := &article.Service{Repo: o.articleRepo, Logger: o.logger}
	return &Catalog{
		Authors: &author.Service{
			Repo:    o.articleRepo,
			Creator: articles,
			Logger:  o.logger,
		},
		Magazines: &magazine.Service{
			Repo:                 o.magazineRepo,
			ArticleRepo:          o.articleRepo,
			Creator:              articles,
			ContributorThreshold: o.threshold,
			Logger:               o.logger,
		},
		Articles:     articles,
		articleRepo:  o.articleRepo,
		magazineRepo: o.magazineRepo,
		logger:       o.logger,
	}
}

// NewFromConfig builds a Catalog from cfg. The logger writes to stderr with
// the configured level and format, and the tracer name is applied globally.
func NewFromConfig(cfg *config.CatalogConfig, opts ...Option) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.New("catalog: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	tracing.SetTracerName(cfg.Tracing.TracerName)
	base := []Option{
		WithLogger(logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)),
		WithContributorThreshold(cfg.Catalog.ContributorThreshold),
	}
	return New(append(base, opts...)...), nil
}

// Reset clears both registries. Entities created earlier stay usable but are
// no longer visible to any query.
func (c *Catalog) Reset(ctx context.Context) error {
	if err := c.articleRepo.Reset(ctx); err != nil {
		return fmt.Errorf("reset articles: %w", err)
	}
	if err := c.magazineRepo.Reset(ctx); err != nil {
		return fmt.Errorf("reset magazines: %w", err)
	}

	metrics.UpdateArticlesTotal(0)
	metrics.UpdateMagazinesTotal(0)
	c.logger.Info("catalog reset")
	return nil
}

// Stats returns the current registry sizes and refreshes the registry gauges.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	articles, err := c.articleRepo.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count articles: %w", err)
	}
	magazines, err := c.magazineRepo.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count magazines: %w", err)
	}

	metrics.UpdateArticlesTotal(articles)
	metrics.UpdateMagazinesTotal(magazines)
	return Stats{Articles: articles, Magazines: magazines}, nil
}
