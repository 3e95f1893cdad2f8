package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, cat, descr
		FROM menu_items
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Category, &it.Description); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Append(ctx context.Context, item Item) (Item, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (name, price, cat, descr)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, item.Name, item.Price, item.Category, item.Description).Scan(&item.ID)
	if err != nil {
		return Item{}, fmt.Errorf("append menu item: %w", err)
	}
	return item, nil
}
