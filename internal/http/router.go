package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"finanzas/internal/http/category"
	"finanzas/internal/http/dashboard"
	"finanzas/internal/http/system"
	"finanzas/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	categoriesV1 *category.Handler,
	dashboardV1 *dashboard.Handler,
	systemV1 *system.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/init", systemV1.Routes)
	})

	return router
}

// requestID tags every request and response with an id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}
