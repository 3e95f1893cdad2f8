package menu

import "context"

// Repository defines the data-access contract for the menu.
// Service depends ONLY on this interface.
type Repository interface {
	// List returns every menu item in insertion order.
	List(ctx context.Context) ([]Item, error)

	// Append stores a new item and returns it with its assigned id
	// (max existing id + 1, or 1 when the menu is empty).
	Append(ctx context.Context, item Item) (Item, error)
}
