package core

import (
	"sort"
	"strings"
	"time"
)

// investmentMarker tags the expense subset reported as investment in the
// recap. Matched case-insensitively as a substring, so both "Investasi" and
// "investment" qualify.
const investmentMarker = "invest"

type (
	// MonthKey is the locale-independent (year, month) grouping key.
	// Formatting to a display label happens only at the presentation
	// boundary, never in comparisons.
	MonthKey struct {
		Year  int        `json:"year"`
		Month time.Month `json:"month"`
	}

	// MonthlyRecap is one derived row of the monthly rollup. It is never
	// stored; it is rebuilt from the ledgers and the asset snapshot on
	// every read.
	MonthlyRecap struct {
		Month              MonthKey `json:"month"`
		InitialBalance     int64    `json:"initialBalance"`
		TotalIncomeSideJob int64    `json:"totalIncomeSideJob"`
		TotalIncomeStudio  int64    `json:"totalIncomeStudio"`
		TotalExpense       int64    `json:"totalExpense"`
		Investment         int64    `json:"investment"`
		FinalBalance       int64    `json:"finalBalance"`
	}
)

// Before reports whether k is chronologically earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Label renders the key for display, e.g. "January 2024".
func (k MonthKey) Label() string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// BuildMonthlyRecap derives the recap table from both ledgers and the current
// total assets. Months with no activity are omitted, not zero-filled; zero
// transactions yield an empty slice.
//
// The starting balance is back-computed as totalAssets minus the net change
// of every transaction ever recorded, which assumes asset snapshots are kept
// consistent with ledger activity. That approximation is deliberate; this is
// not a ledger reconciliation.
func BuildMonthlyRecap(sideJob, studio []Transaction, totalAssets int64) []MonthlyRecap {
	type entry struct {
		Transaction
		source Source
	}

	merged := make([]entry, 0, len(sideJob)+len(studio))
	for _, t := range sideJob {
		merged = append(merged, entry{Transaction: t, source: SourceSideJob})
	}
	for _, t := range studio {
		merged = append(merged, entry{Transaction: t, source: SourceStudio})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date.Time)
	})

	groups := make(map[MonthKey]*MonthlyRecap)
	var order []MonthKey
	var netChange int64

	for _, t := range merged {
		key := t.Date.MonthKey()
		row, ok := groups[key]
		if !ok {
			row = &MonthlyRecap{Month: key}
			groups[key] = row
			order = append(order, key)
		}
		if t.Type == TypeIncome {
			netChange += t.Amount
			if t.source == SourceSideJob {
				row.TotalIncomeSideJob += t.Amount
			} else {
				row.TotalIncomeStudio += t.Amount
			}
		} else {
			netChange -= t.Amount
			row.TotalExpense += t.Amount
			if strings.Contains(strings.ToLower(t.Category), investmentMarker) {
				row.Investment += t.Amount
			}
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	balance := totalAssets - netChange
	recap := make([]MonthlyRecap, 0, len(order))
	for _, key := range order {
		row := groups[key]
		row.InitialBalance = balance
		row.FinalBalance = balance + row.TotalIncomeSideJob + row.TotalIncomeStudio - row.TotalExpense
		balance = row.FinalBalance
		recap = append(recap, *row)
	}
	return recap
}
