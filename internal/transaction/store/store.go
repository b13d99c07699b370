package store

import (
	"context"
	"database/sql"
	"fmt"

	"finanzas/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.description, t.amount, t.category_id, t.type, t.date,
	t.payment_method, t.notes, t.created_at, c.name AS category_name, c.type AS category_type
`

// scanTransaction reads a transaction row joined with its category.
// Expected column order: id, description, amount, category_id, type, date,
// payment_method, notes, created_at, category_name, category_type
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var paymentMethod, notes, catName, catType sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Description, &tx.Amount, &tx.CategoryID, &typeStr, &tx.Date,
		&paymentMethod, &notes, &tx.CreatedAt, &catName, &catType,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.PaymentMethod = paymentMethod.String
	tx.Notes = notes.String

	if catName.Valid {
		tx.Category = &transaction.Category{
			Name: catName.String,
			Type: transaction.Type(catType.String),
		}
	}

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (description, amount, category_id, type, date, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Description,
		tx.Amount,
		tx.CategoryID,
		tx.Type,
		tx.Date,
		nullString(tx.PaymentMethod),
		nullString(tx.Notes),
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// UpdateTransaction replaces the full record. There is deliberately no
// existence check; an absent id updates zero rows and reports success.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, params transaction.Params) error {
	query := `
		UPDATE transactions
		SET description = $1, amount = $2, category_id = $3, type = $4, date = $5,
		    payment_method = $6, notes = $7
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		params.Description,
		params.Amount,
		params.CategoryID,
		params.Type,
		params.Date,
		nullString(params.PaymentMethod),
		nullString(params.Notes),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

// nullString maps the empty string to SQL NULL for the optional columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
