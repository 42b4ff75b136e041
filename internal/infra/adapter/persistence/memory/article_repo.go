package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// ArticleRepo keeps articles in creation order.
// Entities are stored by pointer: article identity is part of the domain and
// each article guards its own mutable references.
type ArticleRepo struct {
	mu       sync.RWMutex
	articles []*entity.Article
	byID     map[uuid.UUID]*entity.Article
}

func NewArticleRepo() repository.ArticleRepository {
	return &ArticleRepo{byID: make(map[uuid.UUID]*entity.Article)}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if article == nil {
		return fmt.Errorf("Create: %w", entity.ErrTypeValidation)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[article.ID]; exists {
		return fmt.Errorf("Create: article %s: %w", article.ID, repository.ErrAlreadyExists)
	}
	repo.articles = append(repo.articles, article)
	repo.byID[article.ID] = article
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.byID[id], nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	return repo.filter(ctx, "List", func(*entity.Article) bool { return true })
}

func (repo *ArticleRepo) ListByAuthor(ctx context.Context, author *entity.Author) ([]*entity.Article, error) {
	return repo.filter(ctx, "ListByAuthor", func(a *entity.Article) bool {
		return a.WrittenBy(author)
	})
}

func (repo *ArticleRepo) ListByMagazine(ctx context.Context, magazine *entity.Magazine) ([]*entity.Article, error) {
	return repo.filter(ctx, "ListByMagazine", func(a *entity.Article) bool {
		return a.PublishedIn(magazine)
	})
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return int64(len(repo.articles)), nil
}

func (repo *ArticleRepo) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Reset: %w", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.articles = nil
	repo.byID = make(map[uuid.UUID]*entity.Article)
	return nil
}

// filter scans the whole registry; there is no secondary index.
func (repo *ArticleRepo) filter(ctx context.Context, op string, keep func(*entity.Article) bool) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Article, 0, len(repo.articles))
	for _, a := range repo.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)
