package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"finanzas/internal/report"
	"finanzas/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) TotalByType(ctx context.Context, t transaction.Type) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = $1`

	var total decimal.Decimal

	err := s.db.QueryRowContext(ctx, query, t).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing %s transactions: %w", t, err)
	}

	return total, nil
}

// TotalsByCategory sums amounts per category for the given type. The inner
// join drops categories with no matching transactions.
func (s *Store) TotalsByCategory(ctx context.Context, t transaction.Type) ([]report.CategoryTotal, error) {
	query := `
		SELECT c.name, c.icon, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.type = $1
		GROUP BY c.id, c.name, c.icon
		ORDER BY total DESC
	`

	rows, err := s.db.QueryContext(ctx, query, t)
	if err != nil {
		return nil, fmt.Errorf("summing by category: %w", err)
	}
	defer rows.Close()

	var totals []report.CategoryTotal

	for rows.Next() {
		var ct report.CategoryTotal

		if err := rows.Scan(&ct.Name, &ct.Icon, &ct.Total); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		totals = append(totals, ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category totals: %w", err)
	}

	return totals, nil
}

// Trend aggregates per calendar-month label over a window anchored six months
// back by date arithmetic, not month truncation. Only months that have at
// least one transaction appear.
func (s *Store) Trend(ctx context.Context) ([]report.TrendPoint, error) {
	query := `
		SELECT
			to_char(date, 'YYYY-MM') AS month,
			SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS income,
			SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS expense
		FROM transactions
		WHERE date >= CURRENT_DATE - INTERVAL '6 months'
		GROUP BY to_char(date, 'YYYY-MM')
		ORDER BY month
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying trend: %w", err)
	}
	defer rows.Close()

	var points []report.TrendPoint

	for rows.Next() {
		var p report.TrendPoint

		if err := rows.Scan(&p.Month, &p.Income, &p.Expense); err != nil {
			return nil, fmt.Errorf("scanning trend point: %w", err)
		}

		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend rows: %w", err)
	}

	return points, nil
}
