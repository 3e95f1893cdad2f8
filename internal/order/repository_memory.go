package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// document is the persisted shape of the file-backed store. Orders and
// customers live together because customers only ever derive from orders.
type document struct {
	Orders    []Order    `json:"orders"`
	Customers []Customer `json:"customers"`
}

// InMemoryRepository keeps orders and customers in process, optionally
// snapshotting them to a JSON file after every append. With an empty
// path it is purely in-memory, which is how tests use it.
type InMemoryRepository struct {
	mu   sync.Mutex
	doc  document
	path string
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
		return nil, fmt.Errorf("read order snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &r.doc); err != nil {
		return nil, fmt.Errorf("decode order snapshot: %w", err)
	}
	return r, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, len(r.doc.Orders))
	copy(out, r.doc.Orders)
	return out, nil
}

func (r *InMemoryRepository) Append(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = 1
	if n := len(r.doc.Orders); n > 0 {
		o.ID = r.doc.Orders[n-1].ID + 1
	}
	r.doc.Orders = append(r.doc.Orders, *o)

	known := false
	for _, c := range r.doc.Customers {
		if c.Phone == o.Customer.Phone {
			known = true
			break
		}
	}
	if !known {
		r.doc.Customers = append(r.doc.Customers, o.Customer)
	}

	if err := r.snapshot(); err != nil {
		r.doc.Orders = r.doc.Orders[:len(r.doc.Orders)-1]
		if !known {
			r.doc.Customers = r.doc.Customers[:len(r.doc.Customers)-1]
		}
		return err
	}
	return nil
}

func (r *InMemoryRepository) Customers(ctx context.Context) ([]Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Customer, len(r.doc.Customers))
	copy(out, r.doc.Customers)
	return out, nil
}

func (r *InMemoryRepository) snapshot() error {
	if r.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode order snapshot: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write order snapshot: %w", err)
	}
	return nil
}
