package core

import (
	"math"
	"testing"
)

func int64ptr(v int64) *int64 { return &v }

func TestNominalTargetFromPercentage(t *testing.T) {
	cases := []struct {
		pct    float64
		total  int64
		expect float64
	}{
		{40, 52500000, 21000000},
		{15, 52500000, 7875000},
		{100, 1000, 1000},
		{0, 52500000, 0},
		{25, 0, 0},
	}
	for i, tc := range cases {
		a := Allocation{TargetPercentage: tc.pct}
		got := a.NominalTarget(tc.total)
		if math.Abs(got-tc.expect) > 1e-9 {
			t.Fatalf("case %d: nominal target = %v, want %v", i, got, tc.expect)
		}
	}
}

func TestNominalTargetSpecificOverridesPercentage(t *testing.T) {
	a := Allocation{TargetPercentage: 40, SpecificTarget: int64ptr(85000000)}
	if got := a.NominalTarget(52500000); got != 85000000 {
		t.Fatalf("nominal target = %v, want specific target 85000000", got)
	}
	// Percentage value must be irrelevant while the override is set.
	a.TargetPercentage = 0
	if got := a.NominalTarget(52500000); got != 85000000 {
		t.Fatalf("nominal target = %v after zeroing percentage, want 85000000", got)
	}
}

func TestRealization(t *testing.T) {
	a := Allocation{TargetPercentage: 40, ActualBalance: 20000000}
	got := a.Realization(52500000)
	if math.Abs(got-95.2380952380952) > 1e-6 {
		t.Fatalf("realization = %v, want ~95.24", got)
	}
}

func TestRealizationZeroWhenTargetNotPositive(t *testing.T) {
	cases := []Allocation{
		{TargetPercentage: 0, ActualBalance: 5000},
		{TargetPercentage: 40, ActualBalance: 5000},            // with totalAssets 0
		{SpecificTarget: int64ptr(0), ActualBalance: 5000},     // explicit zero target
		{SpecificTarget: int64ptr(-100), ActualBalance: 5000},  // negative target
		{TargetPercentage: -10, ActualBalance: 5000},           // negative percentage
	}
	for i, a := range cases {
		if got := a.Realization(0); got != 0 {
			t.Fatalf("case %d: realization = %v, want 0", i, got)
		}
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		realization float64
		want        Band
	}{
		{0, BandLow},
		{49.999, BandLow},
		{50, BandMedium},
		{99.999, BandMedium},
		{100, BandMet}, // exact boundary counts as met
		{150, BandMet},
	}
	for i, tc := range cases {
		if got := BandFor(tc.realization); got != tc.want {
			t.Fatalf("case %d: band(%v) = %v, want %v", i, tc.realization, got, tc.want)
		}
	}
}

func TestBuildAllocationViews(t *testing.T) {
	allocations := []Allocation{
		{ID: "a1", TargetPercentage: 40, ActualBalance: 20000000, SpecificTarget: int64ptr(85000000)},
		{ID: "a3", TargetPercentage: 15, ActualBalance: 5000000},
	}
	views := BuildAllocationViews(allocations, 52500000)
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].NominalTarget != 85000000 {
		t.Fatalf("a1 nominal target = %v, want 85000000", views[0].NominalTarget)
	}
	if views[0].Band != BandLow {
		t.Fatalf("a1 band = %v, want low", views[0].Band)
	}
	if views[1].NominalTarget != 7875000 {
		t.Fatalf("a3 nominal target = %v, want 7875000", views[1].NominalTarget)
	}
	if views[1].Band != BandMedium {
		t.Fatalf("a3 band = %v, want medium", views[1].Band)
	}
}

func TestAssetsTotal(t *testing.T) {
	a := Assets{BankA: 100, BankB: 200, Cash: 300, Reksadana: 400, EWallet: 500}
	if got := a.Total(); got != 1500 {
		t.Fatalf("total = %d, want 1500", got)
	}
	if got := (Assets{}).Total(); got != 0 {
		t.Fatalf("zero assets total = %d, want 0", got)
	}
	neg := Assets{BankA: -100, Cash: 50}
	if got := neg.Total(); got != -50 {
		t.Fatalf("negative buckets total = %d, want -50 (sign is not validated here)", got)
	}
}
