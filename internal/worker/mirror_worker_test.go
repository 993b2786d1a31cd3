package worker

import (
	"context"
	"testing"

	"dompet/internal/amqp"
	"dompet/internal/core"
	"dompet/internal/finance"
	"dompet/internal/sheets/memory"
	"dompet/internal/storage"
)

func TestHandleAggregateChangedReloadsAndExports(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	// The API-side tracker writes, the worker-side tracker mirrors.
	apiTracker := finance.NewTracker(ctx, store, nil)
	workerTracker := finance.NewTracker(ctx, store, nil)

	target := memory.New()
	w := NewMirrorWorker(workerTracker, target, target)

	if _, err := apiTracker.AddTransaction(ctx, core.SourceStudio, finance.TransactionInput{
		Date: core.NewDate(2024, 3, 10), Type: core.TypeIncome, Amount: 2000000, Category: "Gaji",
	}); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	msg := amqp.NewAggregateChanged(finance.KeyStudio, 1)
	if err := w.HandleAggregateChanged(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	recaps := target.Recaps()
	if len(recaps) != 1 {
		t.Fatalf("exported recaps = %d, want 1", len(recaps))
	}
	if recaps[0].TotalIncomeStudio != 2000000 {
		t.Fatalf("exported recap = %+v", recaps[0])
	}

	views := target.Allocations()
	if len(views) != 6 {
		t.Fatalf("exported allocations = %d, want 6 seeds", len(views))
	}
	if target.Writes() != 2 {
		t.Fatalf("writes = %d, want 2", target.Writes())
	}
}

func TestExportEmptyLedgers(t *testing.T) {
	ctx := context.Background()
	tracker := finance.NewTracker(ctx, storage.NewMemoryStore(), nil)
	target := memory.New()
	w := NewMirrorWorker(tracker, target, target)

	if err := w.Export(ctx); err != nil {
		t.Fatalf("export: %v", err)
	}
	if got := len(target.Recaps()); got != 0 {
		t.Fatalf("recaps = %d, want 0 for empty ledgers", got)
	}
}
