package store

import (
	"context"
	"database/sql"
	"fmt"

	"finanzas/internal/category"
	"finanzas/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, type, icon)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Type, c.Icon).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	query := `
		SELECT id, name, type, icon, created_at
		FROM categories
		ORDER BY type, name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		if err := rows.Scan(&c.ID, &c.Name, &typeStr, &c.Icon, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Type = transaction.Type(typeStr)

		cats = append(cats, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}
