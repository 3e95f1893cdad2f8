package menu

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidItem = errors.New("menu item needs a name and a non-negative price")

var validCategories = map[string]bool{
	CategoryBanhMi: true,
	CategoryPho:    true,
	CategoryDrink:  true,
	CategoryOther:  true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// Add validates and stores a new menu item. Unknown categories collapse
// to "khac" the same way the console's select does.
func (s *Service) Add(ctx context.Context, item Item) (Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Price < 0 {
		return Item{}, ErrInvalidItem
	}
	if !validCategories[item.Category] {
		item.Category = CategoryOther
	}
	return s.repo.Append(ctx, item)
}
