package http

import (
	"log/slog"
	"net/http"

	"dompet/internal/core"
)

type summaryResponse struct {
	TotalAssets int64                 `json:"totalAssets"`
	UpdateDate  core.Date             `json:"updateDate"`
	Allocations []core.AllocationView `json:"allocations"`
	Recap       []core.MonthlyRecap   `json:"recap"`
}

func (s *Server) handleRecap(w http.ResponseWriter, r *http.Request) {
	if recaps, found := s.recapCache.Get(recapCacheKey); found {
		slog.DebugContext(r.Context(), "Recap cache hit")
		writeJSON(w, http.StatusOK, recaps)
		return
	}

	recaps := s.tracker.MonthlyRecap()
	if recaps == nil {
		recaps = []core.MonthlyRecap{}
	}
	s.recapCache.Set(recapCacheKey, recaps)
	writeJSON(w, http.StatusOK, recaps)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if summary, found := s.summaryCache.Get(summaryCacheKey); found {
		slog.DebugContext(r.Context(), "Summary cache hit")
		writeJSON(w, http.StatusOK, summary)
		return
	}

	recaps := s.tracker.MonthlyRecap()
	if recaps == nil {
		recaps = []core.MonthlyRecap{}
	}
	views := s.tracker.AllocationViews()
	if views == nil {
		views = []core.AllocationView{}
	}
	summary := summaryResponse{
		TotalAssets: s.tracker.TotalAssets(),
		UpdateDate:  s.tracker.AssetUpdateDate(),
		Allocations: views,
		Recap:       recaps,
	}
	s.summaryCache.Set(summaryCacheKey, summary)
	writeJSON(w, http.StatusOK, summary)
}
