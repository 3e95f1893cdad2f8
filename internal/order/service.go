package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrEmptyCart          = errors.New("order has no items")
	ErrIncompleteCustomer = errors.New("customer name and phone are required")
)

// Notifier pushes a notification about an accepted order. Implementations
// must not block order placement.
type Notifier interface {
	OrderPlaced(o Order) error
}

type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService wires the store and an optional notifier (nil disables it).
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Place validates and persists an order. The order code falls back to a
// short server-generated token and createdAt to the current time when
// the client sent neither.
func (s *Service) Place(ctx context.Context, o *Order) error {
	if len(o.Items) == 0 {
		return ErrEmptyCart
	}
	o.Customer.Name = strings.TrimSpace(o.Customer.Name)
	o.Customer.Phone = strings.TrimSpace(o.Customer.Phone)
	if o.Customer.Name == "" || o.Customer.Phone == "" {
		return ErrIncompleteCustomer
	}

	if o.Code == "" {
		o.Code = GenerateCode(time.Now())
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Append(ctx, o); err != nil {
		return err
	}

	if s.notifier != nil {
		placed := *o
		go func() {
			if err := s.notifier.OrderPlaced(placed); err != nil {
				log.Printf("order notify failed code=%s: %v", placed.Code, err)
			}
		}()
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Customers(ctx context.Context) ([]Customer, error) {
	return s.repo.Customers(ctx)
}

// GenerateCode builds the short numeric order token: "DH" plus the last
// six digits of the unix-millisecond clock.
func GenerateCode(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "DH" + ms[len(ms)-6:]
}
