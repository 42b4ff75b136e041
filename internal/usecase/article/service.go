package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Author   *entity.Author
	Magazine *entity.Magazine
	Title    string
}

// Service provides article use cases.
// Article creation is centralised here; author and magazine use cases
// delegate to Create.
type Service struct {
	Repo   repository.ArticleRepository
	Logger *slog.Logger
}

// Create validates the input, then registers the article.
// Nothing is registered when validation fails.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.Create", attribute.String("article.title", in.Title))
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	art, err := entity.NewArticle(in.Author, in.Magazine, in.Title)
	if err != nil {
		reject(logger, "article rejected", err)
		return nil, err
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordArticleCreated()
	s.refreshTotal(ctx)
	logger.Debug("article created",
		slog.String("article_id", art.ID.String()),
		slog.String("author", in.Author.Name()),
		slog.String("magazine", in.Magazine.Name()))
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID for uuid.Nil and ErrArticleNotFound when absent.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.Get", attribute.String("article.id", id.String()))
	defer func() { tracing.EndSpan(span, err) }()

	if id == uuid.Nil {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List returns every registered article in creation order.
func (s *Service) List(ctx context.Context) (_ []*entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.List")
	defer func() { tracing.EndSpan(span, err) }()

	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ReassignAuthor moves art to author. The author is validated like at construction.
func (s *Service) ReassignAuthor(ctx context.Context, art *entity.Article, author *entity.Author) (err error) {
	_, span := tracing.StartSpan(ctx, "article.ReassignAuthor")
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	if err := checkArticle(art); err != nil {
		reject(logger, "article reassignment rejected", err)
		return err
	}
	if err := art.SetAuthor(author); err != nil {
		reject(logger, "article reassignment rejected", err)
		return err
	}

	metrics.RecordReassignment("author")
	logger.Debug("article author reassigned",
		slog.String("article_id", art.ID.String()),
		slog.String("author", author.Name()))
	return nil
}

// ReassignMagazine moves art to magazine. The magazine is validated like at construction.
func (s *Service) ReassignMagazine(ctx context.Context, art *entity.Article, magazine *entity.Magazine) (err error) {
	_, span := tracing.StartSpan(ctx, "article.ReassignMagazine")
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	if err := checkArticle(art); err != nil {
		reject(logger, "article reassignment rejected", err)
		return err
	}
	if err := art.SetMagazine(magazine); err != nil {
		reject(logger, "article reassignment rejected", err)
		return err
	}

	metrics.RecordReassignment("magazine")
	logger.Debug("article magazine reassigned",
		slog.String("article_id", art.ID.String()),
		slog.String("magazine", magazine.Name()))
	return nil
}

// Retitle always fails: article titles are immutable.
func (s *Service) Retitle(ctx context.Context, art *entity.Article, title string) (err error) {
	_, span := tracing.StartSpan(ctx, "article.Retitle", attribute.String("article.title", title))
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	if err = checkArticle(art); err == nil {
		err = art.SetTitle(title)
	}
	reject(logger, "article retitle rejected", err)
	return err
}

func (s *Service) refreshTotal(ctx context.Context) {
	if n, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdateArticlesTotal(n)
	}
}

func checkArticle(art *entity.Article) error {
	if art == nil || art.ID == uuid.Nil {
		return &entity.ValidationError{Kind: entity.KindType, Field: "article", Message: "article must be an instance of Article"}
	}
	return nil
}

func reject(logger *slog.Logger, msg string, err error) {
	metrics.RecordValidationFailure("article", err)
	logger.Warn(msg,
		slog.String("kind", string(entity.KindOf(err))),
		slog.String("error", err.Error()))
}
