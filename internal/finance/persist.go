package finance

import (
	"context"
	"encoding/json"
	"log/slog"

	"dompet/internal/core"
)

// loadLocked pulls every aggregate from the store. Any aggregate that is
// absent, unreadable, or not valid JSON falls back to its first-run value.
// Callers hold t.mu.
func (t *Tracker) loadLocked(ctx context.Context) {
	var allocations []core.Allocation
	if !t.loadJSON(ctx, KeyAllocations, &allocations) {
		allocations = seedAllocations()
	}
	t.allocations = allocations

	var assets core.Assets
	if !t.loadJSON(ctx, KeyAssets, &assets) {
		assets = seedAssets(seedAllocations())
	}
	t.assets = assets

	var updateDate core.Date
	if !t.loadJSON(ctx, KeyAssetUpdateDate, &updateDate) {
		updateDate = core.Date{}
	}
	t.assetUpdateDate = updateDate

	var sideJob []core.Transaction
	if !t.loadJSON(ctx, KeySideJob, &sideJob) {
		sideJob = nil
	}
	t.sideJob = sideJob

	var studio []core.Transaction
	if !t.loadJSON(ctx, KeyStudio, &studio) {
		studio = nil
	}
	t.studio = studio

	var categories []string
	if !t.loadJSON(ctx, KeyCategories, &categories) {
		categories = seedCategories()
	}
	t.categories = categories
}

// loadJSON reads one aggregate. It reports whether dest was populated;
// storage errors and malformed payloads are logged, never propagated.
func (t *Tracker) loadJSON(ctx context.Context, key string, dest any) bool {
	raw, ok, err := t.store.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Failed to read aggregate, using defaults", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.WarnContext(ctx, "Stored aggregate is not valid JSON, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// saveLocked mirrors one aggregate to the store and, on success, notifies
// the publisher. A failed write leaves in-memory state authoritative and
// only logs. Callers hold t.mu.
func (t *Tracker) saveLocked(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode aggregate", "key", key, "error", err)
		return
	}
	if err := t.store.Set(ctx, key, string(data)); err != nil {
		slog.WarnContext(ctx, "Failed to persist aggregate, in-memory state kept", "key", key, "error", err)
		return
	}
	t.revisions[key]++
	if t.events == nil {
		return
	}
	if err := t.events.PublishAggregateChanged(ctx, key, t.revisions[key]); err != nil {
		slog.WarnContext(ctx, "Failed to publish change event", "key", key, "error", err)
	}
}
