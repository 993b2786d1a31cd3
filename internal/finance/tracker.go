// Package finance implements the stateful application service. A Tracker
// owns the four aggregates (assets, two transaction ledgers, allocations)
// plus the category registry, guards them with a mutex, and mirrors every
// mutation to a storage.Store. In-memory state is authoritative; storage is
// a best-effort mirror and a failed write never fails the mutation.
package finance

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"dompet/internal/core"
	"dompet/internal/storage"
)

// Storage keys, one JSON document per aggregate. The mirror worker reads
// the same keys, so these are part of the persistence contract.
const (
	KeyAssets          = "finance_assets"
	KeyAssetUpdateDate = "finance_assetUpdateDate"
	KeySideJob         = "finance_sideJobTransactions"
	KeyStudio          = "finance_studioTransactions"
	KeyAllocations     = "finance_allocations"
	KeyCategories      = "finance_categories"
)

// Publisher emits a notification after an aggregate has been persisted.
// Publish failures are logged and never surface to the caller.
type Publisher interface {
	PublishAggregateChanged(ctx context.Context, aggregate string, revision int64) error
}

// Tracker is the single writer for all finance state.
type Tracker struct {
	mu        sync.Mutex
	store     storage.Store
	events    Publisher
	revisions map[string]int64

	assets          core.Assets
	assetUpdateDate core.Date
	sideJob         []core.Transaction
	studio          []core.Transaction
	allocations     []core.Allocation
	categories      []string
}

// TransactionInput carries the caller-supplied fields of a new transaction.
// The ID is assigned by the tracker.
type TransactionInput struct {
	Date        core.Date
	Type        core.TransactionType
	Amount      int64
	Category    string
	Description string
}

// AllocationInput carries the caller-supplied fields of a new allocation.
type AllocationInput struct {
	Category         string
	TargetPercentage float64
	ActualBalance    int64
	SpecificTarget   *int64
}

// AllocationPatch is a partial update. Nil fields are left unchanged;
// ClearSpecificTarget drops the fixed target so the percentage applies again.
type AllocationPatch struct {
	Category            *string
	TargetPercentage    *float64
	ActualBalance       *int64
	SpecificTarget      *int64
	ClearSpecificTarget bool
}

// NewTracker loads all aggregates from the store, seeding any aggregate
// that is absent or unreadable with the first-run dataset. Unreadable
// state is logged and replaced, never fatal.
func NewTracker(ctx context.Context, store storage.Store, events Publisher) *Tracker {
	t := &Tracker{
		store:     store,
		events:    events,
		revisions: make(map[string]int64),
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loadLocked(ctx)
	return t
}

// Reload replaces the in-memory state with whatever the store holds now.
// The mirror worker uses this to pick up writes made by the API process.
func (t *Tracker) Reload(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loadLocked(ctx)
}

// Assets returns the current snapshot.
func (t *Tracker) Assets() core.Assets {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.assets
}

// AssetUpdateDate reports when the snapshot was last replaced. The zero
// date means it never was.
func (t *Tracker) AssetUpdateDate() core.Date {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.assetUpdateDate
}

// TotalAssets is the sum of the five buckets.
func (t *Tracker) TotalAssets() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.assets.Total()
}

// ReplaceAssets overwrites the snapshot wholesale and records the update day.
func (t *Tracker) ReplaceAssets(ctx context.Context, assets core.Assets, date core.Date) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.assets = assets
	t.assetUpdateDate = date
	t.saveLocked(ctx, KeyAssets, t.assets)
	t.saveLocked(ctx, KeyAssetUpdateDate, t.assetUpdateDate)
}

// Transactions returns a copy of the requested ledger, newest first.
func (t *Tracker) Transactions(source core.Source) ([]core.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ledger, _, err := t.ledgerLocked(source)
	if err != nil {
		return nil, err
	}
	return append([]core.Transaction(nil), *ledger...), nil
}

// AddTransaction assigns a fresh ID and prepends the record to its ledger.
func (t *Tracker) AddTransaction(ctx context.Context, source core.Source, input TransactionInput) (core.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ledger, key, err := t.ledgerLocked(source)
	if err != nil {
		return core.Transaction{}, err
	}
	txn := core.Transaction{
		ID:          uuid.NewString(),
		Date:        input.Date,
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
	}
	*ledger = append([]core.Transaction{txn}, *ledger...)
	t.saveLocked(ctx, key, *ledger)
	return txn, nil
}

// UpdateTransaction replaces the record with the same ID in place. An
// unknown ID is a silent no-op; the ID and position never change.
func (t *Tracker) UpdateTransaction(ctx context.Context, source core.Source, updated core.Transaction) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	ledger, key, err := t.ledgerLocked(source)
	if err != nil {
		return err
	}
	for i, txn := range *ledger {
		if txn.ID == updated.ID {
			updated.ID = txn.ID
			(*ledger)[i] = updated
			t.saveLocked(ctx, key, *ledger)
			return nil
		}
	}
	return nil
}

// DeleteTransaction removes the record with the given ID. An unknown ID is
// a silent no-op.
func (t *Tracker) DeleteTransaction(ctx context.Context, source core.Source, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	ledger, key, err := t.ledgerLocked(source)
	if err != nil {
		return err
	}
	kept := (*ledger)[:0]
	removed := false
	for _, txn := range *ledger {
		if txn.ID == id {
			removed = true
			continue
		}
		kept = append(kept, txn)
	}
	if !removed {
		return nil
	}
	*ledger = kept
	t.saveLocked(ctx, key, *ledger)
	return nil
}

// Allocations returns a copy of the allocation rows.
func (t *Tracker) Allocations() []core.Allocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]core.Allocation(nil), t.allocations...)
}

// AllocationViews derives the computed view against the current total assets.
func (t *Tracker) AllocationViews() []core.AllocationView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.BuildAllocationViews(t.allocations, t.assets.Total())
}

// AddAllocation appends a new allocation row with a fresh ID.
func (t *Tracker) AddAllocation(ctx context.Context, input AllocationInput) core.Allocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	alloc := core.Allocation{
		ID:               uuid.NewString(),
		Category:         input.Category,
		TargetPercentage: input.TargetPercentage,
		ActualBalance:    input.ActualBalance,
		SpecificTarget:   input.SpecificTarget,
	}
	t.allocations = append(t.allocations, alloc)
	t.saveLocked(ctx, KeyAllocations, t.allocations)
	return alloc
}

// UpdateAllocation applies a partial patch to the row with the given ID.
// An unknown ID is a silent no-op.
func (t *Tracker) UpdateAllocation(ctx context.Context, id string, patch AllocationPatch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.allocations {
		if t.allocations[i].ID != id {
			continue
		}
		if patch.Category != nil {
			t.allocations[i].Category = *patch.Category
		}
		if patch.TargetPercentage != nil {
			t.allocations[i].TargetPercentage = *patch.TargetPercentage
		}
		if patch.ActualBalance != nil {
			t.allocations[i].ActualBalance = *patch.ActualBalance
		}
		if patch.ClearSpecificTarget {
			t.allocations[i].SpecificTarget = nil
		} else if patch.SpecificTarget != nil {
			t.allocations[i].SpecificTarget = patch.SpecificTarget
		}
		t.saveLocked(ctx, KeyAllocations, t.allocations)
		return
	}
}

// DeleteAllocation removes the row with the given ID. An unknown ID is a
// silent no-op.
func (t *Tracker) DeleteAllocation(ctx context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.allocations[:0]
	removed := false
	for _, alloc := range t.allocations {
		if alloc.ID == id {
			removed = true
			continue
		}
		kept = append(kept, alloc)
	}
	if !removed {
		return
	}
	t.allocations = kept
	t.saveLocked(ctx, KeyAllocations, t.allocations)
}

// Categories returns a copy of the registry.
func (t *Tracker) Categories() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.categories...)
}

// AddCategory registers a new category name. Names are compared
// case-insensitively; a duplicate or an empty name after trimming is
// rejected with ErrDuplicateCategory. The registry stays sorted.
func (t *Tracker) AddCategory(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDuplicateCategory
	}
	for _, existing := range t.categories {
		if strings.EqualFold(existing, name) {
			return ErrDuplicateCategory
		}
	}
	t.categories = append(t.categories, name)
	sort.Strings(t.categories)
	t.saveLocked(ctx, KeyCategories, t.categories)
	return nil
}

// DeleteCategory removes a name from the registry. A category whose exact
// string is still carried by any transaction in either ledger is rejected
// with ErrCategoryInUse; the registry entry must match exactly too. A name
// that is not registered is a silent no-op.
func (t *Tracker) DeleteCategory(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ledger := range [][]core.Transaction{t.sideJob, t.studio} {
		for _, txn := range ledger {
			if txn.Category == name {
				return ErrCategoryInUse
			}
		}
	}
	kept := t.categories[:0]
	removed := false
	for _, existing := range t.categories {
		if existing == name {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return nil
	}
	t.categories = kept
	t.saveLocked(ctx, KeyCategories, t.categories)
	return nil
}

// RenameCategory renames a registry entry and rewrites the category field
// of every transaction whose category exactly equals the old name. Renaming
// a name to itself (modulo case) is a no-op; an empty new name or a clash
// with a different existing entry is rejected with ErrInvalidCategoryName.
func (t *Tracker) RenameCategory(ctx context.Context, oldName, newName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrInvalidCategoryName
	}
	if strings.EqualFold(oldName, newName) {
		return nil
	}
	for _, existing := range t.categories {
		if strings.EqualFold(existing, newName) {
			return ErrInvalidCategoryName
		}
	}

	renamed := false
	for i, existing := range t.categories {
		if existing == oldName {
			t.categories[i] = newName
			renamed = true
		}
	}
	if !renamed {
		return nil
	}
	sort.Strings(t.categories)
	t.saveLocked(ctx, KeyCategories, t.categories)

	for _, entry := range []struct {
		ledger *[]core.Transaction
		key    string
	}{
		{&t.sideJob, KeySideJob},
		{&t.studio, KeyStudio},
	} {
		touched := false
		for i := range *entry.ledger {
			if (*entry.ledger)[i].Category == oldName {
				(*entry.ledger)[i].Category = newName
				touched = true
			}
		}
		if touched {
			t.saveLocked(ctx, entry.key, *entry.ledger)
		}
	}
	return nil
}

// MonthlyRecap derives the month-by-month report from both ledgers.
func (t *Tracker) MonthlyRecap() []core.MonthlyRecap {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.BuildMonthlyRecap(t.sideJob, t.studio, t.assets.Total())
}

func (t *Tracker) ledgerLocked(source core.Source) (*[]core.Transaction, string, error) {
	switch source {
	case core.SourceSideJob:
		return &t.sideJob, KeySideJob, nil
	case core.SourceStudio:
		return &t.studio, KeyStudio, nil
	}
	return nil, "", core.ErrUnknownSource
}
