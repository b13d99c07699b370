package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	transactionHttp "finanzas/internal/http/transaction"
	"finanzas/internal/transaction"
)

func newServer(repo transaction.Repository) *httptest.Server {
	h := transactionHttp.NewHandler(transaction.NewService(repo))

	r := chi.NewRouter()
	r.Route("/transactions", h.Routes)

	return httptest.NewServer(r)
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = 7
			tx.CreatedAt = time.Now()
			return nil
		})

	srv := newServer(repo)
	defer srv.Close()

	body := `{"description":"Groceries","amount":42.50,"type":"expense","date":"2026-08-15","payment_method":"cash"}`

	resp, err := http.Post(srv.URL+"/transactions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "Groceries", got["description"])
	assert.Equal(t, 42.50, got["amount"])
	assert.Equal(t, "2026-08-15", got["date"])
}

func TestHandler_Create_MismatchedCategoryType(t *testing.T) {
	// The server performs no cross-field validation: an income transaction
	// pointing at an expense category is stored as-is.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			require.NotNil(t, tx.CategoryID)
			assert.Equal(t, int64(5), *tx.CategoryID)
			assert.Equal(t, transaction.TypeIncome, tx.Type)

			tx.ID = 8

			return nil
		})

	srv := newServer(repo)
	defer srv.Close()

	body := `{"description":"Refund","amount":15,"type":"income","category_id":5,"date":"2026-08-15"}`

	resp, err := http.Post(srv.URL+"/transactions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHandler_Create_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newServer(transaction.NewMockRepository(ctrl))
	defer srv.Close()

	body := `{"description":"Groceries","amount":10,"type":"expense","date":"15/08/2026"}`

	resp, err := http.Post(srv.URL+"/transactions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), int64(42)).
		Return(nil, transaction.ErrNotFound)

	srv := newServer(repo)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/transactions/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Update_AbsentID(t *testing.T) {
	// Updates have no existence check; an id that matches nothing still
	// returns 204.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateTransaction(gomock.Any(), int64(9999), gomock.Any()).
		Return(nil)

	srv := newServer(repo)
	defer srv.Close()

	body := `{"description":"Ghost","amount":1,"type":"expense","date":"2026-01-01"}`

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/transactions/9999", strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_Delete_AbsentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteTransaction(gomock.Any(), int64(9999)).
		Return(nil)

	srv := newServer(repo)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/transactions/9999", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catID := int64(3)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any()).
		Return([]*transaction.Transaction{
			{
				ID:          2,
				Description: "Salary",
				Type:        transaction.TypeIncome,
				Date:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          1,
				Description: "Groceries",
				Type:        transaction.TypeExpense,
				CategoryID:  &catID,
				Date:        time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC),
				Category:    &transaction.Category{Name: "Food", Type: transaction.TypeExpense},
			},
		}, nil)

	srv := newServer(repo)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/transactions")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got, 2)
	assert.Equal(t, "Food", got[1]["category_name"])
	assert.NotContains(t, got[0], "category_name")
}
