// Package core holds the domain types and the pure derivation functions:
// total assets, allocation targets and realization, and the monthly recap.
// Nothing in this package performs I/O; state is passed in as plain values
// so the engine stays unit-testable in isolation.
package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Transaction types use the wire values of the original dataset.
const (
	TypeIncome  TransactionType = "Masuk"
	TypeExpense TransactionType = "Keluar"
)

// Ledger sources. A transaction's ledger is fixed at creation; there is no
// cross-ledger move.
const (
	SourceSideJob Source = "sideJob"
	SourceStudio  Source = "studio"
)

type (
	TransactionType string

	Source string

	// Date is a calendar day. The zero value marshals as null.
	Date struct {
		time.Time
	}

	// Transaction is an immutable-ID ledger record. Amounts are whole
	// rupiah; negative values are accepted as-is at this layer.
	Transaction struct {
		ID          string          `json:"id"`
		Date        Date            `json:"date"`
		Type        TransactionType `json:"type"`
		Amount      int64           `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
	}
)

var ErrUnknownSource = errors.New("unknown transaction source")

// ParseSource maps a wire string onto a ledger source.
func ParseSource(s string) (Source, error) {
	switch Source(strings.TrimSpace(s)) {
	case SourceSideJob:
		return SourceSideJob, nil
	case SourceStudio:
		return SourceStudio, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" calendar day. Full RFC 3339 timestamps are
// accepted too and truncated to the day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

// MonthKey returns the (year, month) grouping key for this day.
func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year(), Month: d.Month()}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
