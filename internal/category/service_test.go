package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"finanzas/internal/category"
	"finanzas/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params category.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *category.MockRepository)
		wantIcon  string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: category.CreateParams{
					Name: "Rent",
					Type: transaction.TypeExpense,
					Icon: "🏠",
				},
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = 1
						return nil
					})
			},
			wantIcon: "🏠",
		},
		{
			name: "DefaultIconWhenAbsent",
			args: args{
				params: category.CreateParams{
					Name: "Misc",
					Type: transaction.TypeExpense,
				},
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = 2
						return nil
					})
			},
			wantIcon: category.DefaultIcon,
		},
		{
			name: "RepoError",
			args: args{
				params: category.CreateParams{Name: "Rent", Type: transaction.TypeExpense},
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := category.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.wantIcon, got.Icon)
			assert.Equal(t, tt.args.params.Type, got.Type)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().
		ListCategories(gomock.Any()).
		Return([]*category.Category{
			{ID: 5, Name: "Food", Type: transaction.TypeExpense},
			{ID: 1, Name: "Salary", Type: transaction.TypeIncome},
		}, nil)

	svc := category.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
