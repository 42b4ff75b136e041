package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// MagazineRepository is the registry of every magazine created in the catalog.
type MagazineRepository interface {
	Create(ctx context.Context, magazine *entity.Magazine) error
	// Get returns (nil, nil) if the magazine is not found.
	Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error)
	// List returns magazines in creation order.
	List(ctx context.Context) ([]*entity.Magazine, error)
	// Search matches keyword against magazine names, case-insensitively.
	Search(ctx context.Context, keyword string) ([]*entity.Magazine, error)
	Count(ctx context.Context) (int64, error)
	Reset(ctx context.Context) error
}
