package system

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"finanzas/internal/setup"
)

type Handler struct {
	svc *setup.Service
}

func NewHandler(svc *setup.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.initialize)
}

// initialize creates the schema if needed and seeds default categories when
// the table is empty. Calling it repeatedly is safe.
func (h *Handler) initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Initialize(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := map[string]string{"message": "database initialized"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
