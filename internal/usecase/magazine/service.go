// Package magazine provides use cases for the magazine registry: creation,
// validated renames, article publishing and the derived views over the
// articles a magazine has published.
package magazine

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

// DefaultContributorThreshold is the article count an author must exceed
// to count as a contributing author.
const DefaultContributorThreshold = 2

// ArticleCreator registers new articles. *article.Service satisfies it.
type ArticleCreator interface {
	Create(ctx context.Context, in article.CreateInput) (*entity.Article, error)
}

// Service provides magazine use cases.
type Service struct {
	Repo        repository.MagazineRepository
	ArticleRepo repository.ArticleRepository
	Creator     ArticleCreator

	// ContributorThreshold overrides DefaultContributorThreshold when positive.
	ContributorThreshold int

	Logger *slog.Logger
}

// Create validates name and category, then registers the magazine.
func (s *Service) Create(ctx context.Context, name, category string) (_ *entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.Create", attribute.String("magazine.name", name))
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	m, err := entity.NewMagazine(name, category)
	if err != nil {
		reject(logger, "magazine rejected", err)
		return nil, err
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	metrics.RecordMagazineCreated()
	if n, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdateMagazinesTotal(n)
	}
	logger.Debug("magazine created",
		slog.String("magazine_id", m.ID.String()),
		slog.String("name", name),
		slog.String("category", category))
	return m, nil
}

// Get retrieves a registered magazine by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.Get", attribute.String("magazine.id", id.String()))
	defer func() { tracing.EndSpan(span, err) }()

	if id == uuid.Nil {
		return nil, ErrInvalidMagazineID
	}

	m, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if m == nil {
		return nil, ErrMagazineNotFound
	}
	return m, nil
}

// List returns every registered magazine in creation order.
func (s *Service) List(ctx context.Context) (_ []*entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.List")
	defer func() { tracing.EndSpan(span, err) }()

	magazines, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

// Search finds magazines whose name contains keyword.
func (s *Service) Search(ctx context.Context, keyword string) (_ []*entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.Search", attribute.String("keyword", keyword))
	defer func() { tracing.EndSpan(span, err) }()

	magazines, err := s.Repo.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search magazines: %w", err)
	}
	return magazines, nil
}

// Rename sets a new name. On failure the previous name is kept.
func (s *Service) Rename(ctx context.Context, m *entity.Magazine, name string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.Rename", attribute.String("magazine.name", name))
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	if err := entity.ValidateMagazineRef(m); err != nil {
		reject(logger, "magazine rename rejected", err)
		return err
	}
	old := m.Name()
	if err := m.SetName(name); err != nil {
		reject(logger, "magazine rename rejected", err)
		return err
	}
	logger.Debug("magazine renamed", slog.String("from", old), slog.String("to", name))
	return nil
}

// Recategorize sets a new category. On failure the previous category is kept.
func (s *Service) Recategorize(ctx context.Context, m *entity.Magazine, category string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.Recategorize", attribute.String("magazine.category", category))
	defer func() { tracing.EndSpan(span, err) }()
	logger := logging.Or(ctx, s.Logger)

	if err := entity.ValidateMagazineRef(m); err != nil {
		reject(logger, "magazine recategorize rejected", err)
		return err
	}
	if err := m.SetCategory(category); err != nil {
		reject(logger, "magazine recategorize rejected", err)
		return err
	}
	logger.Debug("magazine recategorized", slog.String("magazine", m.Name()), slog.String("category", category))
	return nil
}

// Articles returns the articles currently published in m, in registry order.
// The slice is empty, not nil, when there are none.
func (s *Service) Articles(ctx context.Context, m *entity.Magazine) (_ []*entity.Article, err error) {
	ctx, done := s.query(ctx, "magazine.Articles", m)
	defer func() { done(err) }()

	return s.listByMagazine(ctx, m)
}

// AddArticle publishes a new article by author under title and returns it.
// Validation errors are returned as they come from the article use case.
func (s *Service) AddArticle(ctx context.Context, m *entity.Magazine, author *entity.Author, title string) (_ *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "magazine.AddArticle", attribute.String("article.title", title))
	defer func() { tracing.EndSpan(span, err) }()

	return s.Creator.Create(ctx, article.CreateInput{Author: author, Magazine: m, Title: title})
}

// Contributors returns the distinct authors published in m, in order of
// first appearance. The slice is empty, not nil, when there are none.
func (s *Service) Contributors(ctx context.Context, m *entity.Magazine) (_ []*entity.Author, err error) {
	ctx, done := s.query(ctx, "magazine.Contributors", m)
	defer func() { done(err) }()

	articles, err := s.listByMagazine(ctx, m)
	if err != nil {
		return nil, err
	}

	authors, _ := tally(articles)
	return authors, nil
}

// ArticleTitles returns the titles published in m, in registry order.
// It returns nil when m has no articles.
func (s *Service) ArticleTitles(ctx context.Context, m *entity.Magazine) (_ []string, err error) {
	ctx, done := s.query(ctx, "magazine.ArticleTitles", m)
	defer func() { done(err) }()

	articles, err := s.listByMagazine(ctx, m)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.Title())
	}
	return titles, nil
}

// ContributingAuthors returns the authors with more than the contributor
// threshold of articles in m, in order of first appearance.
// It returns nil when no author qualifies.
func (s *Service) ContributingAuthors(ctx context.Context, m *entity.Magazine) (_ []*entity.Author, err error) {
	ctx, done := s.query(ctx, "magazine.ContributingAuthors", m)
	defer func() { done(err) }()

	articles, err := s.listByMagazine(ctx, m)
	if err != nil {
		return nil, err
	}

	threshold := s.threshold()
	authors, counts := tally(articles)
	var out []*entity.Author
	for _, a := range authors {
		if counts[a.ID] > threshold {
			out = append(out, a)
		}
	}
	return out, nil
}

// TopPublisher returns the registered magazine with the most articles.
// Ties go to the magazine created first. It returns nil when no magazine is
// registered or none has published an article.
func (s *Service) TopPublisher(ctx context.Context) (_ *entity.Magazine, err error) {
	ctx, done := s.query(ctx, "magazine.TopPublisher", nil)
	defer func() { done(err) }()

	magazines, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	if len(magazines) == 0 {
		return nil, nil
	}
	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(magazines))
	for _, art := range articles {
		counts[art.Magazine().ID]++
	}

	var top *entity.Magazine
	best := 0
	for _, m := range magazines {
		if counts[m.ID] > best {
			top, best = m, counts[m.ID]
		}
	}
	return top, nil
}

func (s *Service) threshold() int {
	if s.ContributorThreshold > 0 {
		return s.ContributorThreshold
	}
	return DefaultContributorThreshold
}

func (s *Service) listByMagazine(ctx context.Context, m *entity.Magazine) ([]*entity.Article, error) {
	if err := entity.ValidateMagazineRef(m); err != nil {
		return nil, err
	}
	articles, err := s.ArticleRepo.ListByMagazine(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("list magazine articles: %w", err)
	}
	return articles, nil
}

func (s *Service) query(ctx context.Context, op string, m *entity.Magazine) (context.Context, func(error)) {
	start := time.Now()
	var attrs []attribute.KeyValue
	if m != nil {
		attrs = append(attrs, attribute.String("magazine.id", m.ID.String()))
	}
	ctx, span := tracing.StartSpan(ctx, op, attrs...)
	return ctx, func(err error) {
		metrics.RecordQuery(op, time.Since(start))
		tracing.EndSpan(span, err)
	}
}

// tally returns the distinct authors of articles in first-appearance order
// together with the article count per author.
func tally(articles []*entity.Article) ([]*entity.Author, map[uuid.UUID]int) {
	authors := make([]*entity.Author, 0, len(articles))
	counts := make(map[uuid.UUID]int, len(articles))
	for _, art := range articles {
		a := art.Author()
		if counts[a.ID] == 0 {
			authors = append(authors, a)
		}
		counts[a.ID]++
	}
	return authors, counts
}

func reject(logger *slog.Logger, msg string, err error) {
	metrics.RecordValidationFailure("magazine", err)
	logger.Warn(msg,
		slog.String("kind", string(entity.KindOf(err))),
		slog.String("error", err.Error()))
}
