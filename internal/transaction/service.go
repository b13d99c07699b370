package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id int64) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, params Params) error
	DeleteTransaction(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Params carries the full writable field set of a transaction. Creates and
// updates both take the whole record; there are no partial updates.
type Params struct {
	Description   string
	Amount        decimal.Decimal
	CategoryID    *int64
	Type          Type
	Date          time.Time
	PaymentMethod string
	Notes         string
}

func (s *Service) Create(ctx context.Context, params Params) (*Transaction, error) {
	tx := &Transaction{
		Description:   params.Description,
		Amount:        params.Amount,
		CategoryID:    params.CategoryID,
		Type:          params.Type,
		Date:          params.Date,
		PaymentMethod: params.PaymentMethod,
		Notes:         params.Notes,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// Update replaces the record unconditionally. Updating an id that does not
// exist is a silent no-op, mirroring the unchecked delete.
func (s *Service) Update(ctx context.Context, id int64, params Params) error {
	return s.repo.UpdateTransaction(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTransaction(ctx, id)
}
