package finance

import "dompet/internal/core"

// First-run seed data. Reproduced exactly from the original dataset so a
// fresh install derives the same totals.

func seedAllocations() []core.Allocation {
	target := func(v int64) *int64 { return &v }
	return []core.Allocation{
		{ID: "a1", Category: "Tabungan Target 85jt", TargetPercentage: 40, ActualBalance: 20000000, SpecificTarget: target(85000000)},
		{ID: "a2", Category: "Investasi Alat", TargetPercentage: 20, ActualBalance: 12000000, SpecificTarget: target(30000000)},
		{ID: "a3", Category: "Kebutuhan Harian", TargetPercentage: 15, ActualBalance: 5000000},
		{ID: "a4", Category: "Operasional", TargetPercentage: 10, ActualBalance: 3500000},
		{ID: "a5", Category: "Dana Darurat", TargetPercentage: 10, ActualBalance: 8000000},
		{ID: "a6", Category: "Tunangan 5jt", TargetPercentage: 5, ActualBalance: 4000000, SpecificTarget: target(5000000)},
	}
}

func seedCategories() []string {
	return []string{
		"Project A", "Project B", "Gaji", "Makan",
		"Transportasi", "Investasi", "Hiburan", "Lain-lain",
	}
}

// seedAssets places the sum of the seed allocation balances into the first
// bucket so assets and allocations start out consistent.
func seedAssets(allocations []core.Allocation) core.Assets {
	var sum int64
	for _, a := range allocations {
		sum += a.ActualBalance
	}
	return core.Assets{BankA: sum}
}
