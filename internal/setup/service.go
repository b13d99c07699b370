package setup

import (
	"context"
	"fmt"

	"finanzas/internal/category"
	"finanzas/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=setup
type Repository interface {
	EnsureSchema(ctx context.Context) error
	CountCategories(ctx context.Context) (int64, error)
	SeedCategories(ctx context.Context, cats []category.CreateParams) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DefaultCategories is seeded on first initialization: four income and seven
// expense categories.
var DefaultCategories = []category.CreateParams{
	{Name: "Salary", Type: transaction.TypeIncome, Icon: "💰"},
	{Name: "Freelance", Type: transaction.TypeIncome, Icon: "💻"},
	{Name: "Investment", Type: transaction.TypeIncome, Icon: "📈"},
	{Name: "Other Income", Type: transaction.TypeIncome, Icon: "💵"},
	{Name: "Food", Type: transaction.TypeExpense, Icon: "🍔"},
	{Name: "Transport", Type: transaction.TypeExpense, Icon: "🚗"},
	{Name: "Utilities", Type: transaction.TypeExpense, Icon: "💡"},
	{Name: "Entertainment", Type: transaction.TypeExpense, Icon: "🎬"},
	{Name: "Health", Type: transaction.TypeExpense, Icon: "🏥"},
	{Name: "Education", Type: transaction.TypeExpense, Icon: "📚"},
	{Name: "Other Expenses", Type: transaction.TypeExpense, Icon: "📦"},
}

// Initialize creates the schema if absent and seeds the default categories,
// but only when the categories table is empty. Safe to call repeatedly.
func (s *Service) Initialize(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	count, err := s.repo.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := s.repo.SeedCategories(ctx, DefaultCategories); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	return nil
}
