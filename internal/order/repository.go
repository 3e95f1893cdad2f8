package order

import "context"

// Repository defines the data-access contract for orders and the
// customer list derived from them. Service depends ONLY on this interface.
type Repository interface {
	// List returns every order in insertion order.
	List(ctx context.Context) ([]Order, error)

	// Append stores the order, assigns its id (strictly greater than any
	// existing one) and records the customer iff the phone is new — both
	// in a single atomic step.
	Append(ctx context.Context, o *Order) error

	// Customers returns the derived customer list.
	Customers(ctx context.Context) ([]Customer, error)
}
