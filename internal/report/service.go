package report

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"finanzas/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	TotalByType(ctx context.Context, t transaction.Type) (decimal.Decimal, error)
	TotalsByCategory(ctx context.Context, t transaction.Type) ([]CategoryTotal, error)
	Trend(ctx context.Context) ([]TrendPoint, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary computes the all-time totals. The two aggregates are independent
// queries with no snapshot consistency between them; concurrent writes can
// land between the two.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var income, expense decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := s.repo.TotalByType(gctx, transaction.TypeIncome)
		income = v

		return err
	})

	g.Go(func() error {
		v, err := s.repo.TotalByType(gctx, transaction.TypeExpense)
		expense = v

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}

func (s *Service) ExpensesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	return s.repo.TotalsByCategory(ctx, transaction.TypeExpense)
}

func (s *Service) IncomesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	return s.repo.TotalsByCategory(ctx, transaction.TypeIncome)
}

// Trend returns the per-month aggregation over the rolling six-month window.
// Months with no transactions are omitted.
func (s *Service) Trend(ctx context.Context) ([]TrendPoint, error) {
	return s.repo.Trend(ctx)
}
