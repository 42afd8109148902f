// Package http wires the bookkeeping API surface onto chi.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/desadigital/bumdeskas/internal/adapter/http/handler"
	"github.com/desadigital/bumdeskas/internal/adapter/http/middleware"
	"github.com/desadigital/bumdeskas/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	JournalHandler      *handler.JournalHandler
	LedgerHandler       *handler.LedgerHandler
	TrialBalanceHandler *handler.TrialBalanceHandler
	StatementHandler    *handler.StatementHandler
	BackupHandler       *handler.BackupHandler
	HealthHandler       *handler.HealthHandler

	IdempotencyStore middleware.IdempotencyStore
	IdempotencyTTL   time.Duration

	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Journal
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.JournalHandler.Create)
			r.Get("/", cfg.JournalHandler.List)
			r.Get("/journal", cfg.JournalHandler.Journal)
			r.Put("/{id}", cfg.JournalHandler.Update)
			r.Delete("/{id}", cfg.JournalHandler.Delete)
		})

		// Ledger (Buku Besar)
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/", cfg.LedgerHandler.List)
			r.Get("/{ref}", cfg.LedgerHandler.Account)
		})

		// Trial balance (Neraca Saldo)
		r.Route("/trial-balance", func(r chi.Router) {
			r.Get("/", cfg.TrialBalanceHandler.List)
			r.Post("/sync", cfg.TrialBalanceHandler.Sync)
			r.Post("/rows", cfg.TrialBalanceHandler.AddRow)
			r.Delete("/rows/{ref}", cfg.TrialBalanceHandler.DeleteRow)
			r.Post("/cleanup", cfg.TrialBalanceHandler.Cleanup)
		})

		// Financial statements
		r.Route("/statements", func(r chi.Router) {
			r.Get("/income", cfg.StatementHandler.Income)
			r.Get("/balance-sheet", cfg.StatementHandler.BalanceSheet)
			r.Get("/cash-flow", cfg.StatementHandler.CashFlow)
			r.Post("/seed", cfg.StatementHandler.Seed)
			r.Put("/equity", cfg.StatementHandler.SetEquity)
			r.Post("/{section}/items", cfg.StatementHandler.AddItem)
			r.Delete("/{section}/items/{label}", cfg.StatementHandler.RemoveItem)
		})

		// Backup
		r.Route("/backup", func(r chi.Router) {
			r.Post("/", cfg.BackupHandler.Backup)
			r.Get("/snapshot", cfg.BackupHandler.Snapshot)
			r.Post("/restore", cfg.BackupHandler.Restore)
		})
	})

	return r
}
