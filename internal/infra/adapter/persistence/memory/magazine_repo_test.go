package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/repository"
)

func magazineNames(in []*entity.Magazine) []string {
	out := make([]string, 0, len(in))
	for _, m := range in {
		out = append(out, m.Name())
	}
	return out
}

func seedMagazines(t *testing.T, repo repository.MagazineRepository) []*entity.Magazine {
	t.Helper()
	var out []*entity.Magazine
	for _, nc := range [][2]string{{"Vogue", "Fashion"}, {"AD", "Architecture"}, {"Vanity Fair", "Culture"}} {
		m := mustMagazine(t, nc[0], nc[1])
		if err := repo.Create(context.Background(), m); err != nil {
			t.Fatalf("Create err=%v", err)
		}
		out = append(out, m)
	}
	return out
}

func TestMagazineRepo_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMagazineRepo()
	seeded := seedMagazines(t, repo)

	got, err := repo.Get(ctx, seeded[1].ID)
	if err != nil || got != seeded[1] {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if missing, err := repo.Get(ctx, uuid.New()); missing != nil || err != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", missing, err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff([]string{"Vogue", "AD", "Vanity Fair"}, magazineNames(list)); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	if err := repo.Create(ctx, seeded[0]); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestMagazineRepo_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMagazineRepo()
	seedMagazines(t, repo)

	list, _ := repo.List(ctx)
	list[0] = nil

	again, _ := repo.List(ctx)
	if again[0] == nil {
		t.Fatalf("List must not expose the registry's backing slice")
	}
}

func TestMagazineRepo_Search(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMagazineRepo()
	seedMagazines(t, repo)

	tests := []struct {
		keyword string
		want    []string
	}{
		{"vogue", []string{"Vogue"}},
		{"A", []string{"AD", "Vanity Fair"}},
		{"  fair ", []string{"Vanity Fair"}},
		{"wired", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.keyword)
			if err != nil {
				t.Fatalf("Search err=%v", err)
			}
			if diff := cmp.Diff(tt.want, magazineNames(got)); diff != "" {
				t.Fatalf("Search mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMagazineRepo_Reset(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMagazineRepo()
	seedMagazines(t, repo)

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset err=%v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("want 0 after reset, got %d", n)
	}
}
