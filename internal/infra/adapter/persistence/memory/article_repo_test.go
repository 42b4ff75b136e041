package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/repository"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func mustAuthor(t *testing.T) *entity.Author {
	t.Helper()
	a, err := entity.NewAuthor(gofakeit.Name())
	if err != nil {
		t.Fatalf("NewAuthor err=%v", err)
	}
	return a
}

func mustMagazine(t *testing.T, name, category string) *entity.Magazine {
	t.Helper()
	m, err := entity.NewMagazine(name, category)
	if err != nil {
		t.Fatalf("NewMagazine err=%v", err)
	}
	return m
}

func mustArticle(t *testing.T, a *entity.Author, m *entity.Magazine, title string) *entity.Article {
	t.Helper()
	art, err := entity.NewArticle(a, m, title)
	if err != nil {
		t.Fatalf("NewArticle err=%v", err)
	}
	return art
}

func articleIDs(in []*entity.Article) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(in))
	for _, a := range in {
		out = append(out, a.ID)
	}
	return out
}

// ─────────────────────────────────────────────
// 1. Create / Get
// ─────────────────────────────────────────────
func TestArticleRepo_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	art := mustArticle(t, mustAuthor(t), mustMagazine(t, "Vogue", "Fashion"), "How to wear a tutu with style")

	if err := repo.Create(ctx, art); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	got, err := repo.Get(ctx, art.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != art {
		t.Fatalf("Get returned a different article: %v", got)
	}

	missing, err := repo.Get(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestArticleRepo_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	art := mustArticle(t, mustAuthor(t), mustMagazine(t, "Vogue", "Fashion"), "Dating life in NYC")

	if err := repo.Create(ctx, art); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	err := repo.Create(ctx, art)
	if !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("want 1 article, got %d", n)
	}
}

func TestArticleRepo_CreateNil(t *testing.T) {
	repo := memory.NewArticleRepo()
	if err := repo.Create(context.Background(), nil); !errors.Is(err, entity.ErrTypeValidation) {
		t.Fatalf("want ErrTypeValidation, got %v", err)
	}
}

// ─────────────────────────────────────────────
// 2. List / ListByAuthor / ListByMagazine
// ─────────────────────────────────────────────
func TestArticleRepo_Listings(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()

	carry, nathaniel := mustAuthor(t), mustAuthor(t)
	vogue, ad := mustMagazine(t, "Vogue", "Fashion"), mustMagazine(t, "AD", "Architecture")

	a1 := mustArticle(t, carry, vogue, "How to wear a tutu with style")
	a2 := mustArticle(t, nathaniel, vogue, "Dating life in NYC")
	a3 := mustArticle(t, carry, ad, "2023 Eccentric Design Trends")
	for _, a := range []*entity.Article{a1, a2, a3} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create err=%v", err)
		}
	}

	tests := []struct {
		name string
		list func() ([]*entity.Article, error)
		want []uuid.UUID
	}{
		{"all in creation order", func() ([]*entity.Article, error) { return repo.List(ctx) }, []uuid.UUID{a1.ID, a2.ID, a3.ID}},
		{"by author", func() ([]*entity.Article, error) { return repo.ListByAuthor(ctx, carry) }, []uuid.UUID{a1.ID, a3.ID}},
		{"by magazine", func() ([]*entity.Article, error) { return repo.ListByMagazine(ctx, vogue) }, []uuid.UUID{a1.ID, a2.ID}},
		{"unknown author", func() ([]*entity.Article, error) { return repo.ListByAuthor(ctx, mustAuthor(t)) }, []uuid.UUID{}},
		{"nil author", func() ([]*entity.Article, error) { return repo.ListByAuthor(ctx, nil) }, []uuid.UUID{}},
		{"nil magazine", func() ([]*entity.Article, error) { return repo.ListByMagazine(ctx, nil) }, []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.list()
			if err != nil {
				t.Fatalf("list err=%v", err)
			}
			if got == nil {
				t.Fatalf("want empty slice, got nil")
			}
			if diff := cmp.Diff(tt.want, articleIDs(got)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("reassignment is visible to scans", func(t *testing.T) {
		if err := a2.SetMagazine(ad); err != nil {
			t.Fatalf("SetMagazine err=%v", err)
		}
		got, _ := repo.ListByMagazine(ctx, ad)
		if diff := cmp.Diff([]uuid.UUID{a2.ID, a3.ID}, articleIDs(got)); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

// ─────────────────────────────────────────────
// 3. Reset / context
// ─────────────────────────────────────────────
func TestArticleRepo_Reset(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	art := mustArticle(t, mustAuthor(t), mustMagazine(t, "Vogue", "Fashion"), "Dating life in NYC")
	_ = repo.Create(ctx, art)

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset err=%v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("want 0 after reset, got %d", n)
	}
	if got, _ := repo.Get(ctx, art.ID); got != nil {
		t.Fatalf("article still reachable after reset")
	}
	// the same article can be registered again after a reset
	if err := repo.Create(ctx, art); err != nil {
		t.Fatalf("Create after reset err=%v", err)
	}
}

func TestArticleRepo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := memory.NewArticleRepo()

	if _, err := repo.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	art := mustArticle(t, mustAuthor(t), mustMagazine(t, "Vogue", "Fashion"), "Dating life in NYC")
	if err := repo.Create(ctx, art); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// ─────────────────────────────────────────────
// 4. concurrent writers
// ─────────────────────────────────────────────
func TestArticleRepo_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	vogue := mustMagazine(t, "Vogue", "Fashion")
	author := mustAuthor(t)

	const writers = 16
	const perWriter = 25

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < writers; w++ {
		w := w
		eg.Go(func() error {
			for i := 0; i < perWriter; i++ {
				art, err := entity.NewArticle(author, vogue, fmt.Sprintf("Article %02d-%02d", w, i))
				if err != nil {
					return err
				}
				if err := repo.Create(egCtx, art); err != nil {
					return err
				}
				if _, err := repo.ListByMagazine(egCtx, vogue); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatalf("concurrent create err=%v", err)
	}

	if n, _ := repo.Count(ctx); n != writers*perWriter {
		t.Fatalf("want %d articles, got %d", writers*perWriter, n)
	}
}
