// ledgerbot-worker consumes queued commands, runs them against the ledger
// store and posts replies. Run it alongside the server when AMQP_URL is set.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"ledgerbot/internal/config"
	"ledgerbot/internal/ledger"
	gsheet "ledgerbot/internal/ledger/google"
	mem "ledgerbot/internal/ledger/memory"
	"ledgerbot/internal/queue"
	"ledgerbot/internal/services"
	"ledgerbot/internal/slack"
	"ledgerbot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting ledgerbot-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
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

	queueClient, err := queue.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer queueClient.Close()

	replier := slack.NewClient(cfg.SlackBotToken)
	users := slack.UserMap{Jacob: cfg.SlackUserJacob, Naomi: cfg.SlackUserNaomi}
	svc := services.NewLedgerService(store, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return queueClient.ConsumeCommands(ctx, func(ctx context.Context, msg *queue.CommandMessage) error {
			handleCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			sender := users.Resolve(msg.UserID)
			reply := svc.HandleCommand(handleCtx, msg.Text, sender)
			if err := replier.Reply(handleCtx, msg.Channel, reply); err != nil {
				// Returning the error requeues the delivery; the command
				// itself succeeded, so log and ack instead.
				logger.Error("Failed to post reply", "error", err, "channel", msg.Channel)
			}
			return nil
		})
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}

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
