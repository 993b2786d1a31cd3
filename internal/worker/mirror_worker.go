// Package worker mirrors derived finance reports to an external sheet.
// The worker process shares the key-value store with the API process:
// on every change notification it reloads the tracker state and rewrites
// the recap and allocation sheets.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dompet/internal/amqp"
	"dompet/internal/finance"
	"dompet/internal/sheets"
)

type MirrorWorker struct {
	tracker     *finance.Tracker
	recaps      sheets.RecapWriter
	allocations sheets.AllocationWriter
}

func NewMirrorWorker(tracker *finance.Tracker, recaps sheets.RecapWriter, allocations sheets.AllocationWriter) *MirrorWorker {
	return &MirrorWorker{
		tracker:     tracker,
		recaps:      recaps,
		allocations: allocations,
	}
}

// HandleAggregateChanged reloads state from the shared store and re-exports.
// The message only tells us something changed; the store is the source.
func (w *MirrorWorker) HandleAggregateChanged(ctx context.Context, msg *amqp.AggregateChanged) error {
	slog.InfoContext(ctx, "Processing aggregate change",
		"aggregate", msg.Aggregate,
		"revision", msg.Revision)

	w.tracker.Reload(ctx)
	return w.Export(ctx)
}

// Export rewrites both sheets from the current tracker state.
func (w *MirrorWorker) Export(ctx context.Context) error {
	recaps := w.tracker.MonthlyRecap()
	if err := w.recaps.WriteRecaps(ctx, recaps); err != nil {
		return fmt.Errorf("write recaps: %w", err)
	}

	views := w.tracker.AllocationViews()
	if err := w.allocations.WriteAllocations(ctx, views); err != nil {
		return fmt.Errorf("write allocations: %w", err)
	}

	slog.InfoContext(ctx, "Exported finance reports",
		"recap_months", len(recaps),
		"allocations", len(views))
	return nil
}

// RunPeriodic re-exports on a fixed interval as a backup for lost change
// messages. Blocks until the context is done.
func (w *MirrorWorker) RunPeriodic(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tracker.Reload(ctx)
			if err := w.Export(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic export failed", "error", err)
			}
		}
	}
}
