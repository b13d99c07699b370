package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"finanzas/internal/category"
	categoryStore "finanzas/internal/category/store"
	"finanzas/internal/config"
	"finanzas/internal/database"
	finanzasHttp "finanzas/internal/http"
	categoryHandler "finanzas/internal/http/category"
	dashboardHandler "finanzas/internal/http/dashboard"
	systemHandler "finanzas/internal/http/system"
	txHandler "finanzas/internal/http/transaction"
	"finanzas/internal/report"
	reportStore "finanzas/internal/report/store"
	"finanzas/internal/setup"
	setupStore "finanzas/internal/setup/store"
	"finanzas/internal/transaction"
	txStore "finanzas/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactionService = transaction.NewService(txStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		reportService      = report.NewService(reportStore.New(db))
		setupService       = setup.NewService(setupStore.New(db))
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		dashboardH   = dashboardHandler.NewHandler(reportService)
		systemH      = systemHandler.NewHandler(setupService)
	)

	router := finanzasHttp.New(transactionH, categoryH, dashboardH, systemH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
