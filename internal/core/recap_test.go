package core

import (
	"testing"
)

func TestBuildMonthlyRecapEmpty(t *testing.T) {
	if rows := BuildMonthlyRecap(nil, nil, 52500000); len(rows) != 0 {
		t.Fatalf("got %d rows for empty ledgers, want 0", len(rows))
	}
}

func TestBuildMonthlyRecapSingleMonth(t *testing.T) {
	totalAssets := int64(52500000)
	studio := []Transaction{
		{ID: "t1", Date: NewDate(2024, 1, 15), Type: TypeIncome, Amount: 1000000, Category: "Gaji"},
	}
	sideJob := []Transaction{
		{ID: "t2", Date: NewDate(2024, 1, 20), Type: TypeExpense, Amount: 200000, Category: "Makan"},
	}

	rows := BuildMonthlyRecap(sideJob, studio, totalAssets)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Month != (MonthKey{Year: 2024, Month: 1}) {
		t.Fatalf("month = %+v, want January 2024", row.Month)
	}
	if row.TotalIncomeStudio != 1000000 || row.TotalIncomeSideJob != 0 {
		t.Fatalf("income split = side %d / studio %d", row.TotalIncomeSideJob, row.TotalIncomeStudio)
	}
	if row.TotalExpense != 200000 {
		t.Fatalf("total expense = %d, want 200000", row.TotalExpense)
	}
	if want := totalAssets - 800000; row.InitialBalance != want {
		t.Fatalf("initial balance = %d, want %d", row.InitialBalance, want)
	}
	if want := row.InitialBalance + 800000; row.FinalBalance != want {
		t.Fatalf("final balance = %d, want %d", row.FinalBalance, want)
	}
}

func TestBuildMonthlyRecapChainsBalances(t *testing.T) {
	totalAssets := int64(10000000)
	sideJob := []Transaction{
		{ID: "1", Date: NewDate(2023, 11, 3), Type: TypeIncome, Amount: 500000},
		{ID: "2", Date: NewDate(2024, 1, 10), Type: TypeExpense, Amount: 150000},
		{ID: "3", Date: NewDate(2023, 12, 24), Type: TypeIncome, Amount: 700000},
	}
	studio := []Transaction{
		{ID: "4", Date: NewDate(2023, 12, 5), Type: TypeIncome, Amount: 2000000},
		{ID: "5", Date: NewDate(2024, 2, 1), Type: TypeExpense, Amount: 300000},
	}

	rows := BuildMonthlyRecap(sideJob, studio, totalAssets)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	// Chronological month order.
	wantMonths := []MonthKey{
		{Year: 2023, Month: 11},
		{Year: 2023, Month: 12},
		{Year: 2024, Month: 1},
		{Year: 2024, Month: 2},
	}
	for i, want := range wantMonths {
		if rows[i].Month != want {
			t.Fatalf("row %d month = %+v, want %+v", i, rows[i].Month, want)
		}
	}

	// Each month opens with the previous month's closing balance.
	for i := 1; i < len(rows); i++ {
		if rows[i].InitialBalance != rows[i-1].FinalBalance {
			t.Fatalf("row %d initial %d != row %d final %d",
				i, rows[i].InitialBalance, i-1, rows[i-1].FinalBalance)
		}
	}

	// Net flow over all rows equals last final minus first initial.
	var net int64
	for _, r := range rows {
		net += r.TotalIncomeSideJob + r.TotalIncomeStudio - r.TotalExpense
	}
	if got := rows[len(rows)-1].FinalBalance - rows[0].InitialBalance; got != net {
		t.Fatalf("balance delta %d != net flow %d", got, net)
	}

	// The last final balance lands on the current asset total.
	if rows[len(rows)-1].FinalBalance != totalAssets {
		t.Fatalf("last final balance = %d, want %d", rows[len(rows)-1].FinalBalance, totalAssets)
	}
}

func TestBuildMonthlyRecapSeparatesYears(t *testing.T) {
	sideJob := []Transaction{
		{ID: "1", Date: NewDate(2023, 1, 10), Type: TypeIncome, Amount: 100},
		{ID: "2", Date: NewDate(2024, 1, 10), Type: TypeIncome, Amount: 200},
	}
	rows := BuildMonthlyRecap(sideJob, nil, 0)
	if len(rows) != 2 {
		t.Fatalf("two Januaries from different years must not collide: got %d rows", len(rows))
	}
	if rows[0].Month.Year != 2023 || rows[1].Month.Year != 2024 {
		t.Fatalf("rows out of order: %+v", rows)
	}
}

func TestBuildMonthlyRecapInvestmentSubset(t *testing.T) {
	sideJob := []Transaction{
		{ID: "1", Date: NewDate(2024, 3, 1), Type: TypeExpense, Amount: 500000, Category: "Investasi"},
		{ID: "2", Date: NewDate(2024, 3, 2), Type: TypeExpense, Amount: 100000, Category: "Makan"},
		{ID: "3", Date: NewDate(2024, 3, 3), Type: TypeIncome, Amount: 900000, Category: "Investasi"},
	}
	rows := BuildMonthlyRecap(sideJob, nil, 0)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	// Investment is a subset of expense, never additional expense, and
	// income in an investment category does not count.
	if row.TotalExpense != 600000 {
		t.Fatalf("total expense = %d, want 600000", row.TotalExpense)
	}
	if row.Investment != 500000 {
		t.Fatalf("investment = %d, want 500000", row.Investment)
	}
}

func TestMonthKeyLabel(t *testing.T) {
	k := MonthKey{Year: 2024, Month: 1}
	if got := k.Label(); got != "January 2024" {
		t.Fatalf("label = %q, want %q", got, "January 2024")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 2024 || int(d.Month()) != 1 || d.Day() != 15 {
		t.Fatalf("parsed %v", d)
	}

	// RFC 3339 timestamps are truncated to the day.
	d, err = ParseDate("2024-06-30T15:04:05Z")
	if err != nil {
		t.Fatalf("parse rfc3339: %v", err)
	}
	if d.MonthKey() != (MonthKey{Year: 2024, Month: 6}) {
		t.Fatalf("month key = %+v", d.MonthKey())
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}
