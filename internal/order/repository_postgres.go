package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_code, customer_name, customer_phone, items, total, created_at
		FROM orders
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			o     Order
			items []byte
		)
		if err := rows.Scan(
			&o.ID,
			&o.Code,
			&o.Customer.Name,
			&o.Customer.Phone,
			&items,
			&o.Total,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Append inserts the order and, in the same transaction, the customer
// when the phone has not been seen before.
func (r *PostgresRepository) Append(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_code, customer_name, customer_phone, items, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, o.Code, o.Customer.Name, o.Customer.Phone, items, o.Total, o.CreatedAt).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("append order: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO customers (phone, name)
		VALUES ($1, $2)
		ON CONFLICT (phone) DO NOTHING
	`, o.Customer.Phone, o.Customer.Name)
	if err != nil {
		return fmt.Errorf("append customer: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Customers(ctx context.Context) ([]Customer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT phone, name
		FROM customers
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.Phone, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
