package google

import (
	"testing"

	"dompet/internal/core"
)

func TestYearPrefixedName(t *testing.T) {
	tests := []struct {
		name string
		base string
		year int
		want string
	}{
		{"plain base", "Recap", 2024, "2024 Recap"},
		{"already prefixed", "2023 Recap", 2024, "2023 Recap"},
		{"whitespace trimmed", "  Allocations  ", 2024, "2024 Allocations"},
		{"empty", "", 2024, ""},
		{"number-ish but not a year", "1234567", 2024, "2024 1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yearPrefixedName(tt.base, tt.year); got != tt.want {
				t.Errorf("yearPrefixedName(%q, %d) = %q, want %q", tt.base, tt.year, got, tt.want)
			}
		})
	}
}

func TestRecapRows(t *testing.T) {
	recaps := []core.MonthlyRecap{
		{
			Month:             core.MonthKey{Year: 2024, Month: 1},
			InitialBalance:    51700000,
			TotalIncomeStudio: 1000000,
			TotalExpense:      200000,
			FinalBalance:      52500000,
		},
	}

	rows := recapRows(recaps)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "January 2024" {
		t.Errorf("month label = %v", rows[1][0])
	}
	if rows[1][1] != int64(51700000) || rows[1][6] != int64(52500000) {
		t.Errorf("balance columns = %v", rows[1])
	}
}

func TestAllocationRows(t *testing.T) {
	target := int64(5000000)
	views := core.BuildAllocationViews([]core.Allocation{
		{ID: "x", Category: "Dana Darurat", TargetPercentage: 10, ActualBalance: 8000000},
		{ID: "y", Category: "Tunangan", TargetPercentage: 5, ActualBalance: 4000000, SpecificTarget: &target},
	}, 52500000)

	rows := allocationRows(views)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[1][2] != "" {
		t.Errorf("percentage row should leave specific target blank, got %v", rows[1][2])
	}
	if rows[2][2] != int64(5000000) {
		t.Errorf("specific target column = %v", rows[2][2])
	}
	if rows[2][6] != string(core.BandMedium) {
		t.Errorf("band column = %v", rows[2][6])
	}
}
