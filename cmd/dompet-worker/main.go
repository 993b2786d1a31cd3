package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"dompet/internal/amqp"
	"dompet/internal/cli"
	"dompet/internal/finance"
	"dompet/internal/sheets"
	gsheet "dompet/internal/sheets/google"
	mem "dompet/internal/sheets/memory"
	"dompet/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting dompet-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.InitStore(logger, cfg)
	defer store.Close()

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	var (
		recaps      sheets.RecapWriter
		allocations sheets.AllocationWriter
	)
	switch cfg.ExportBackend {
	case "sheets":
		client, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		recaps, allocations = client, client
		logger.Info("Google Sheets export initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	default:
		target := mem.New()
		recaps, allocations = target, target
		logger.Info("Memory export initialized, sheets disabled")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	tracker := finance.NewTracker(ctx, store, nil)
	mirror := worker.NewMirrorWorker(tracker, recaps, allocations)

	// Export once at startup so the mirror is fresh before any message.
	if err := mirror.Export(ctx); err != nil {
		logger.Error("Startup export failed", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeAggregateChanges(gctx, func(msg *amqp.AggregateChanged) error {
			return mirror.HandleAggregateChanged(gctx, msg)
		})
	})
	g.Go(func() error {
		return mirror.RunPeriodic(gctx, cfg.ExportInterval)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}
