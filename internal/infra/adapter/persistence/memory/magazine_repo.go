package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// MagazineRepo keeps magazines in creation order.
type MagazineRepo struct {
	mu        sync.RWMutex
	magazines []*entity.Magazine
	byID      map[uuid.UUID]*entity.Magazine
}

func NewMagazineRepo() repository.MagazineRepository {
	return &MagazineRepo{byID: make(map[uuid.UUID]*entity.Magazine)}
}

func (repo *MagazineRepo) Create(ctx context.Context, magazine *entity.Magazine) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if magazine == nil {
		return fmt.Errorf("Create: %w", entity.ErrTypeValidation)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[magazine.ID]; exists {
		return fmt.Errorf("Create: magazine %s: %w", magazine.ID, repository.ErrAlreadyExists)
	}
	repo.magazines = append(repo.magazines, magazine)
	repo.byID[magazine.ID] = magazine
	return nil
}

func (repo *MagazineRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.byID[id], nil
}

func (repo *MagazineRepo) List(ctx context.Context) ([]*entity.Magazine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Magazine, len(repo.magazines))
	copy(out, repo.magazines)
	return out, nil
}

func (repo *MagazineRepo) Search(ctx context.Context, keyword string) ([]*entity.Magazine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(keyword))

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Magazine, 0)
	for _, m := range repo.magazines {
		if strings.Contains(strings.ToLower(m.Name()), needle) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (repo *MagazineRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return int64(len(repo.magazines)), nil
}

func (repo *MagazineRepo) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Reset: %w", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.magazines = nil
	repo.byID = make(map[uuid.UUID]*entity.Magazine)
	return nil
}

var _ repository.MagazineRepository = (*MagazineRepo)(nil)
