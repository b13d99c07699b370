package store

import (
	"context"
	"database/sql"
	"fmt"

	"finanzas/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('expense', 'income')),
		icon VARCHAR(10) DEFAULT '📁',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		description VARCHAR(255) NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('expense', 'income')),
		date DATE NOT NULL,
		payment_method VARCHAR(50),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}

	return nil
}

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	var count int64

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}

	return count, nil
}

func (s *Store) SeedCategories(ctx context.Context, cats []category.CreateParams) error {
	query := `INSERT INTO categories (name, type, icon) VALUES ($1, $2, $3)`

	for _, c := range cats {
		if _, err := s.db.ExecContext(ctx, query, c.Name, c.Type, c.Icon); err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
	}

	return nil
}
