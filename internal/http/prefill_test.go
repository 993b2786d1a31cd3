package http

import (
	"testing"

	"dompet/internal/core"
)

func TestParseDeepLink(t *testing.T) {
	today := core.NewDate(2024, 6, 1)

	t.Run("full link", func(t *testing.T) {
		raw := "web+finance://transaction/add?type=Masuk&amount=150000&category=Gaji&description=Honor%20bulan%20ini&date=2024-05-20&source=studio"
		p, err := ParseDeepLink(raw, today)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if p.Type != core.TypeIncome {
			t.Errorf("type = %s", p.Type)
		}
		if p.Source != core.SourceStudio {
			t.Errorf("source = %s", p.Source)
		}
		if p.Amount != 150000 {
			t.Errorf("amount = %d", p.Amount)
		}
		if p.Category != "Gaji" || p.Description != "Honor bulan ini" {
			t.Errorf("category/description = %q %q", p.Category, p.Description)
		}
		if p.Date.MonthKey() != (core.MonthKey{Year: 2024, Month: 5}) {
			t.Errorf("date = %v", p.Date)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		p, err := ParseDeepLink("web+finance://transaction/add", today)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if p.Type != core.TypeExpense {
			t.Errorf("default type = %s", p.Type)
		}
		if p.Source != core.SourceSideJob {
			t.Errorf("default source = %s", p.Source)
		}
		if p.Amount != 0 {
			t.Errorf("default amount = %d", p.Amount)
		}
		if !p.Date.Equal(today.Time) {
			t.Errorf("default date = %v, want today", p.Date)
		}
	})

	t.Run("unknown type and source fall back to defaults", func(t *testing.T) {
		p, err := ParseDeepLink("web+finance://transaction/add?type=weird&source=weird", today)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if p.Type != core.TypeExpense || p.Source != core.SourceSideJob {
			t.Errorf("type=%s source=%s", p.Type, p.Source)
		}
	})

	t.Run("bad amount and date are ignored", func(t *testing.T) {
		p, err := ParseDeepLink("web+finance://transaction/add?amount=abc&date=not-a-date", today)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if p.Amount != 0 {
			t.Errorf("amount = %d", p.Amount)
		}
		if !p.Date.Equal(today.Time) {
			t.Errorf("date = %v", p.Date)
		}
	})

	t.Run("wrong scheme rejected", func(t *testing.T) {
		if _, err := ParseDeepLink("https://transaction/add", today); err == nil {
			t.Fatal("expected error for wrong scheme")
		}
	})

	t.Run("wrong target rejected", func(t *testing.T) {
		if _, err := ParseDeepLink("web+finance://settings/add", today); err == nil {
			t.Fatal("expected error for wrong target")
		}
	})
}
