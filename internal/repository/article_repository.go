package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// ArticleRepository is the registry of every article created in the catalog.
// Listing methods return articles in creation order and return an empty slice
// (not nil) when nothing matches.
type ArticleRepository interface {
	// Create appends the article to the registry.
	// Returns ErrAlreadyExists if an article with the same ID is registered.
	Create(ctx context.Context, article *entity.Article) error
	// Get returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor scans the registry for articles whose current author is author.
	ListByAuthor(ctx context.Context, author *entity.Author) ([]*entity.Article, error)
	// ListByMagazine scans the registry for articles currently published in magazine.
	ListByMagazine(ctx context.Context, magazine *entity.Magazine) ([]*entity.Article, error)
	Count(ctx context.Context) (int64, error)
	// Reset drops every registered article.
	Reset(ctx context.Context) error
}
