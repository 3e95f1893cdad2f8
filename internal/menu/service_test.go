package menu

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := NewInMemoryRepository("")
	if err != nil {
		t.Fatalf("repo init: %v", err)
	}
	return NewService(repo)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.Add(ctx, Item{Name: "Bánh mì", Price: 25000, Category: CategoryBanhMi})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}

	second, err := s.Add(ctx, Item{Name: "Phở", Price: 45000, Category: CategoryPho})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Errorf("second id = %d, want %d", second.ID, first.ID+1)
	}
}

func TestAddRejectsInvalidItems(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tests := []Item{
		{Name: "", Price: 25000},
		{Name: "   ", Price: 25000},
		{Name: "Bánh mì", Price: -1},
	}
	for _, item := range tests {
		if _, err := s.Add(ctx, item); !errors.Is(err, ErrInvalidItem) {
			t.Errorf("Add(%+v): err = %v, want ErrInvalidItem", item, err)
		}
	}
}

func TestAddNormalizesUnknownCategory(t *testing.T) {
	s := newTestService(t)

	item, err := s.Add(context.Background(), Item{Name: "Chè", Price: 15000, Category: "dessert"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Category != CategoryOther {
		t.Errorf("category = %q, want %q", item.Category, CategoryOther)
	}
}

func TestInMemoryRepositorySnapshotSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	ctx := context.Background()

	repo, err := NewInMemoryRepository(path)
	if err != nil {
		t.Fatalf("repo init: %v", err)
	}
	if _, err := repo.Append(ctx, Item{Name: "Bánh mì", Price: 25000, Category: CategoryBanhMi}); err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened, err := NewInMemoryRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	items, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Bánh mì" || items[0].ID != 1 {
		t.Errorf("unexpected snapshot contents: %+v", items)
	}

	next, err := reopened.Append(ctx, Item{Name: "Phở", Price: 45000, Category: CategoryPho})
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if next.ID != 2 {
		t.Errorf("id after reopen = %d, want 2", next.ID)
	}
}
