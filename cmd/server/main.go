package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/desadigital/bumdeskas/internal/adapter/github"
	httpAdapter "github.com/desadigital/bumdeskas/internal/adapter/http"
	"github.com/desadigital/bumdeskas/internal/adapter/http/handler"
	"github.com/desadigital/bumdeskas/internal/adapter/memory"
	"github.com/desadigital/bumdeskas/internal/classify"
	"github.com/desadigital/bumdeskas/internal/infrastructure/config"
	"github.com/desadigital/bumdeskas/internal/infrastructure/logger"
	"github.com/desadigital/bumdeskas/internal/infrastructure/metrics"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	// Keyword classification rules
	rules, err := classify.LoadRules(cfg.KeywordRulesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.KeywordRulesPath).Msg("failed to load keyword rules")
	}

	// Initialize in-memory store and repositories
	store := memory.NewStore()
	journalRepo := memory.NewJournalRepository(store)
	tbRepo := memory.NewTrialBalanceRepository(store)
	stmtRepo := memory.NewStatementRepository(store)
	idGen := memory.NewULIDGenerator()

	// Backup store; a nil destination keeps the endpoint disabled.
	var backupStore usecase.BackupStore
	if cfg.BackupEnabled() {
		backupStore = github.NewClient(github.Config{
			APIBaseURL: cfg.BackupAPIBaseURL,
			Repo:       cfg.BackupRepo,
			FilePath:   cfg.BackupFilePath,
			Branch:     cfg.BackupBranch,
			Token:      cfg.BackupToken,
			Retries:    cfg.BackupRetries,
		})
		log.Info().Str("repo", cfg.BackupRepo).Str("path", cfg.BackupFilePath).Msg("remote backup enabled")
	} else {
		backupStore = noopBackupStore{}
		log.Info().Msg("remote backup disabled")
	}

	// Initialize use cases
	journalUC := usecase.NewJournalUseCase(journalRepo, idGen, cfg.StrictEntries)
	ledgerUC := usecase.NewLedgerUseCase(journalRepo, tbRepo)
	tbUC := usecase.NewTrialBalanceUseCase(tbRepo, ledgerUC)
	stmtUC := usecase.NewStatementUseCase(stmtRepo, tbRepo, rules)
	backupUC := usecase.NewBackupUseCase(journalRepo, tbRepo, stmtRepo, idGen, backupStore)

	// Initialize metrics and handlers
	m := metrics.New()
	journalHandler := handler.NewJournalHandler(journalUC, m)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC, m)
	tbHandler := handler.NewTrialBalanceHandler(tbUC, m)
	stmtHandler := handler.NewStatementHandler(stmtUC, m)
	backupHandler := handler.NewBackupHandler(backupUC, cfg.BackupEnabled(), m)
	healthHandler := handler.NewHealthHandler()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		JournalHandler:      journalHandler,
		LedgerHandler:       ledgerHandler,
		TrialBalanceHandler: tbHandler,
		StatementHandler:    stmtHandler,
		BackupHandler:       backupHandler,
		HealthHandler:       healthHandler,
		IdempotencyStore:    memory.NewIdempotencyStore(),
		IdempotencyTTL:      cfg.IdempotencyTTL,
		Logger:              appLogger,
		Metrics:             m,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Bool("strict_entries", cfg.StrictEntries).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// noopBackupStore stands in when no backup destination is configured. The
// handler refuses before reaching it; this guards direct use-case calls.
type noopBackupStore struct{}

func (noopBackupStore) Push(ctx context.Context, content []byte) error {
	return fmt.Errorf("backup destination not configured")
}
