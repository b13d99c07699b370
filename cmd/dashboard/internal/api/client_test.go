package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzas/cmd/dashboard/internal/api"
)

func TestClient_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/summary", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_income":1500,"total_expense":320.5,"balance":1179.5}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL)

	got, err := client.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.TotalIncome)
	assert.Equal(t, 1179.5, got.Balance)
}

func TestClient_Transactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"description":"Groceries","amount":42.5,"type":"expense","date":"2026-08-15","category_name":"Food"}]`))
	}))
	defer srv.Close()

	client := api.New(srv.URL)

	got, err := client.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].CategoryName)
	assert.Equal(t, 42.5, got[0].Amount)
}

func TestClient_CreateTransaction(t *testing.T) {
	var received api.TransactionParams

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := api.New(srv.URL)

	params := api.TransactionParams{
		Description: "Groceries",
		Amount:      42.5,
		Type:        "expense",
		Date:        "2026-08-15",
	}

	require.NoError(t, client.CreateTransaction(context.Background(), params))
	assert.Equal(t, params, received)
}

func TestClient_DeleteTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/transactions/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := api.New(srv.URL)
	assert.NoError(t, client.DeleteTransaction(context.Background(), 9))
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something broke", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := api.New(srv.URL)

	_, err := client.Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "something broke")
}

func TestClient_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/trend", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := api.New(srv.URL + "/")

	got, err := client.Trend(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
