package setup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"finanzas/internal/setup"
	"finanzas/internal/transaction"
)

func TestDefaultCategories(t *testing.T) {
	require.Len(t, setup.DefaultCategories, 11)

	var income, expense int

	for _, c := range setup.DefaultCategories {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon)

		switch c.Type {
		case transaction.TypeIncome:
			income++
		case transaction.TypeExpense:
			expense++
		}
	}

	assert.Equal(t, 4, income)
	assert.Equal(t, 7, expense)
}

func TestService_Initialize_SeedsWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setup.NewMockRepository(ctrl)
	repo.EXPECT().EnsureSchema(gomock.Any()).Return(nil)
	repo.EXPECT().CountCategories(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().SeedCategories(gomock.Any(), setup.DefaultCategories).Return(nil)

	svc := setup.NewService(repo)
	assert.NoError(t, svc.Initialize(context.Background()))
}

func TestService_Initialize_SkipsSeedWhenPopulated(t *testing.T) {
	// Calling initialize twice must leave eleven categories, not twenty-two:
	// the seed only runs against an empty table.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setup.NewMockRepository(ctrl)
	repo.EXPECT().EnsureSchema(gomock.Any()).Return(nil)
	repo.EXPECT().CountCategories(gomock.Any()).Return(int64(11), nil)

	svc := setup.NewService(repo)
	assert.NoError(t, svc.Initialize(context.Background()))
}

func TestService_Initialize_SchemaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setup.NewMockRepository(ctrl)
	repo.EXPECT().EnsureSchema(gomock.Any()).Return(errors.New("db error"))

	svc := setup.NewService(repo)
	assert.Error(t, svc.Initialize(context.Background()))
}
