package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"finanzas/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/expenses-by-category", h.expensesByCategory)
	r.Get("/incomes-by-category", h.incomesByCategory)
	r.Get("/trend", h.trend)
}

type summaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

type categoryTotalResponse struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Total float64 `json:"total"`
}

type trendPointResponse struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, summaryResponse{
		TotalIncome:  s.TotalIncome.InexactFloat64(),
		TotalExpense: s.TotalExpense.InexactFloat64(),
		Balance:      s.Balance.InexactFloat64(),
	})
}

func (h *Handler) expensesByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.ExpensesByCategory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toCategoryTotals(totals))
}

func (h *Handler) incomesByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.IncomesByCategory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toCategoryTotals(totals))
}

func (h *Handler) trend(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.Trend(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]trendPointResponse, len(points))
	for i, p := range points {
		resp[i] = trendPointResponse{
			Month:   p.Month,
			Income:  p.Income.InexactFloat64(),
			Expense: p.Expense.InexactFloat64(),
		}
	}

	writeJSON(w, resp)
}

func toCategoryTotals(totals []report.CategoryTotal) []categoryTotalResponse {
	resp := make([]categoryTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = categoryTotalResponse{
			Name:  t.Name,
			Icon:  t.Icon,
			Total: t.Total.InexactFloat64(),
		}
	}

	return resp
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
