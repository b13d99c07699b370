package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"finanzas/internal/report"
	"finanzas/internal/transaction"
)

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		TotalByType(gomock.Any(), transaction.TypeIncome).
		Return(decimal.NewFromFloat(100.00), nil)
	repo.EXPECT().
		TotalByType(gomock.Any(), transaction.TypeExpense).
		Return(decimal.NewFromFloat(40.00), nil)

	svc := report.NewService(repo)
	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.True(t, got.TotalIncome.Equal(decimal.NewFromFloat(100.00)))
	assert.True(t, got.TotalExpense.Equal(decimal.NewFromFloat(40.00)))
	assert.True(t, got.Balance.Equal(decimal.NewFromFloat(60.00)))
}

func TestService_Summary_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		TotalByType(gomock.Any(), transaction.TypeIncome).
		Return(decimal.Zero, errors.New("db error")).
		AnyTimes()
	repo.EXPECT().
		TotalByType(gomock.Any(), transaction.TypeExpense).
		Return(decimal.Zero, errors.New("db error")).
		AnyTimes()

	svc := report.NewService(repo)

	got, err := svc.Summary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_ByCategory(t *testing.T) {
	// Categories with no matching transactions never appear; the totals of
	// what does appear add up to the summary total for that type.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expenseTotals := []report.CategoryTotal{
		{Name: "Food", Icon: "🍔", Total: decimal.NewFromFloat(30.00)},
		{Name: "Transport", Icon: "🚗", Total: decimal.NewFromFloat(10.00)},
	}

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		TotalsByCategory(gomock.Any(), transaction.TypeExpense).
		Return(expenseTotals, nil)

	svc := report.NewService(repo)
	got, err := svc.ExpensesByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)

	grand := decimal.Zero
	for _, ct := range got {
		grand = grand.Add(ct.Total)
	}

	assert.True(t, grand.Equal(decimal.NewFromFloat(40.00)))
}

func TestService_Trend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	points := []report.TrendPoint{
		{Month: "2026-07", Income: decimal.NewFromFloat(100), Expense: decimal.NewFromFloat(25)},
		{Month: "2026-08", Income: decimal.NewFromFloat(100), Expense: decimal.NewFromFloat(40)},
	}

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		Trend(gomock.Any()).
		Return(points, nil)

	svc := report.NewService(repo)
	got, err := svc.Trend(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.LessOrEqual(t, len(got), 6)
	assert.Equal(t, "2026-07", got[0].Month)
}
