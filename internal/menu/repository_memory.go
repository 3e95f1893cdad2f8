package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// InMemoryRepository keeps the menu in process, optionally snapshotting
// it to a JSON file after every append so it survives restarts. With an
// empty path it is purely in-memory, which is how tests use it.
type InMemoryRepository struct {
	mu    sync.Mutex
	items []Item
	path  string
}

func NewInMemoryRepository(path string) (*InMemoryRepository, error) {
	r := &InMemoryRepository{path: path}
	if path == "" {
		return r, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return nil, fmt.Errorf("read menu snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &r.items); err != nil {
		return nil, fmt.Errorf("decode menu snapshot: %w", err)
	}
	return r, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) Append(ctx context.Context, item Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = 1
	if n := len(r.items); n > 0 {
		item.ID = r.items[n-1].ID + 1
	}
	r.items = append(r.items, item)

	if err := r.snapshot(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return Item{}, err
	}
	return item, nil
}

func (r *InMemoryRepository) snapshot() error {
	if r.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(r.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode menu snapshot: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write menu snapshot: %w", err)
	}
	return nil
}
