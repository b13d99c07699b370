package system_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	systemHttp "finanzas/internal/http/system"
	"finanzas/internal/setup"
)

func TestHandler_Initialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setup.NewMockRepository(ctrl)
	repo.EXPECT().EnsureSchema(gomock.Any()).Return(nil)
	repo.EXPECT().CountCategories(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().SeedCategories(gomock.Any(), setup.DefaultCategories).Return(nil)

	h := systemHttp.NewHandler(setup.NewService(repo))

	r := chi.NewRouter()
	r.Route("/init", h.Routes)

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/init")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "database initialized", got["message"])
}
