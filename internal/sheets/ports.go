package sheets

import (
	"context"

	"dompet/internal/core"
)

// Ports for outbound export adapters.
type (
	// RecapWriter mirrors the derived monthly recap to an external sheet.
	RecapWriter interface {
		WriteRecaps(ctx context.Context, recaps []core.MonthlyRecap) error
	}

	// AllocationWriter mirrors the allocation views to an external sheet.
	AllocationWriter interface {
		WriteAllocations(ctx context.Context, views []core.AllocationView) error
	}
)
