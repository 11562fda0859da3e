package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ledgerbot/internal/config"
	apphttp "ledgerbot/internal/http"
	"ledgerbot/internal/ledger"
	gsheet "ledgerbot/internal/ledger/google"
	mem "ledgerbot/internal/ledger/memory"
	"ledgerbot/internal/queue"
	"ledgerbot/internal/services"
	"ledgerbot/internal/slack"
	"ledgerbot/internal/storage"
)

func main() {
	// .env is for local development; missing file is fine in production.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	store, cleanup, err := openStore(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize ledger store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}
	logger.Info("Initialized ledger backend", "backend", cfg.DataBackend)

	replier := slack.NewClient(cfg.SlackBotToken)
	users := slack.UserMap{Jacob: cfg.SlackUserJacob, Naomi: cfg.SlackUserNaomi}
	svc := services.NewLedgerService(store, nil)

	// With AMQP configured the webhook only enqueues; the worker binary does
	// the store round-trips and posts replies.
	var publisher apphttp.CommandPublisher
	if cfg.AMQPURL != "" {
		queueClient, err := queue.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer queueClient.Close()
		publisher = queueClient
		logger.Info("Commands will be queued", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}

	srv := apphttp.NewServer(":"+cfg.Port, cfg.SlackSigningSecret, users, svc, replier, publisher)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting ledgerbot server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// openStore picks the ledger backend from configuration.
func openStore(ctx context.Context, cfg *config.Config) (ledger.Store, func() error, error) {
	switch cfg.DataBackend {
	case "sheets":
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:      cfg.GoogleSpreadsheetID,
			SheetName:          cfg.GoogleSheetName,
			ServiceAccountJSON: cfg.GoogleServiceAccountJSON,
			ServiceAccountFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			return nil, nil, err
		}
		return cli, nil, nil
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return mem.New(), nil, nil
	}
}
