package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dompet/internal/core"
)

// Deep links use the custom scheme registered by the mobile shell:
//
//	web+finance://transaction/add?type=&amount=&category=&description=&date=&source=
//
// Unknown or missing parameters degrade to defaults instead of failing, so
// a half-filled link still opens a usable form.
const (
	deepLinkScheme = "web+finance"
	deepLinkHost   = "transaction"
	deepLinkPath   = "/add"
)

type Prefill struct {
	Source      core.Source          `json:"source"`
	Date        core.Date            `json:"date"`
	Type        core.TransactionType `json:"type"`
	Amount      int64                `json:"amount"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
}

// ParseDeepLink extracts a transaction prefill from a deep link URL.
// Defaults: expense type, side-job ledger, today's date, zero amount.
func ParseDeepLink(raw string, today core.Date) (Prefill, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Prefill{}, fmt.Errorf("parse deep link: %w", err)
	}
	if u.Scheme != deepLinkScheme {
		return Prefill{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host != deepLinkHost || u.Path != deepLinkPath {
		return Prefill{}, fmt.Errorf("unsupported deep link target %q", u.Host+u.Path)
	}

	q := u.Query()

	p := Prefill{
		Source:      core.SourceSideJob,
		Date:        today,
		Type:        core.TypeExpense,
		Category:    strings.TrimSpace(q.Get("category")),
		Description: strings.TrimSpace(q.Get("description")),
	}

	if q.Get("type") == string(core.TypeIncome) {
		p.Type = core.TypeIncome
	}
	if q.Get("source") == string(core.SourceStudio) {
		p.Source = core.SourceStudio
	}
	if v := strings.TrimSpace(q.Get("amount")); v != "" {
		if amount, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.Amount = amount
		}
	}
	if v := strings.TrimSpace(q.Get("date")); v != "" {
		if date, err := core.ParseDate(v); err == nil {
			p.Date = date
		}
	}

	return p, nil
}

func (s *Server) handlePrefill(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url parameter is required")
		return
	}

	now := time.Now()
	today := core.NewDate(now.Year(), int(now.Month()), now.Day())

	prefill, err := ParseDeepLink(raw, today)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, prefill)
}
