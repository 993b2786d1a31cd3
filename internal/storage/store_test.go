package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "finance_categories", `["Gaji","Makan"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get(ctx, "finance_categories")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != `["Gaji","Makan"]` {
		t.Fatalf("value = %q", value)
	}

	// Last write wins, whole value.
	if err := s.Set(ctx, "finance_categories", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = s.Get(ctx, "finance_categories")
	if value != `[]` {
		t.Fatalf("value after overwrite = %q", value)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dompet.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, ok, err := s.Get(ctx, "finance_assets"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	payload := `{"bankA":52500000,"bankB":0,"cash":0,"reksadana":0,"eWallet":0}`
	if err := s.Set(ctx, "finance_assets", payload); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get(ctx, "finance_assets")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != payload {
		t.Fatalf("value = %q, want %q", value, payload)
	}

	if err := s.Set(ctx, "finance_assets", `{}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = s.Get(ctx, "finance_assets")
	if value != `{}` {
		t.Fatalf("value after overwrite = %q", value)
	}
}
