package core

// Realization bands for display.
const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandMet    Band = "met"
)

type (
	Band string

	// Allocation is a savings/spending target tracked against either a
	// percentage of total assets or, when SpecificTarget is set, a fixed
	// amount that overrides the percentage entirely.
	Allocation struct {
		ID               string  `json:"id"`
		Category         string  `json:"category"`
		TargetPercentage float64 `json:"targetPercentage"`
		ActualBalance    int64   `json:"actualBalance"`
		SpecificTarget   *int64  `json:"specificTarget,omitempty"`
	}

	// AllocationView is an allocation together with its derived figures.
	AllocationView struct {
		Allocation
		NominalTarget float64 `json:"nominalTarget"`
		Realization   float64 `json:"realization"`
		Band          Band    `json:"band"`
	}
)

// NominalTarget is the currency amount this allocation aims to reach.
// A set SpecificTarget wins over the percentage.
func (a Allocation) NominalTarget(totalAssets int64) float64 {
	if a.SpecificTarget != nil {
		return float64(*a.SpecificTarget)
	}
	return float64(totalAssets) * a.TargetPercentage / 100
}

// Realization is the actual balance as a percentage of the nominal target,
// defined as 0 when the target is not positive.
func (a Allocation) Realization(totalAssets int64) float64 {
	target := a.NominalTarget(totalAssets)
	if target <= 0 {
		return 0
	}
	return float64(a.ActualBalance) / target * 100
}

// BandFor maps a realization percentage onto its display band.
// The boundary 100 counts as met.
func BandFor(realization float64) Band {
	switch {
	case realization >= 100:
		return BandMet
	case realization >= 50:
		return BandMedium
	default:
		return BandLow
	}
}

// BuildAllocationViews derives the computed view for every allocation row.
func BuildAllocationViews(allocations []Allocation, totalAssets int64) []AllocationView {
	views := make([]AllocationView, len(allocations))
	for i, a := range allocations {
		realization := a.Realization(totalAssets)
		views[i] = AllocationView{
			Allocation:    a,
			NominalTarget: a.NominalTarget(totalAssets),
			Realization:   realization,
			Band:          BandFor(realization),
		}
	}
	return views
}
