package http

import (
	"log/slog"
	"net/http"
	"time"

	"dompet/internal/core"
)

type assetsResponse struct {
	Assets     core.Assets `json:"assets"`
	Total      int64       `json:"total"`
	UpdateDate core.Date   `json:"updateDate"`
}

type replaceAssetsRequest struct {
	Assets     core.Assets `json:"assets"`
	UpdateDate core.Date   `json:"updateDate"`
}

func (s *Server) handleGetAssets(w http.ResponseWriter, r *http.Request) {
	assets := s.tracker.Assets()
	writeJSON(w, http.StatusOK, assetsResponse{
		Assets:     assets,
		Total:      assets.Total(),
		UpdateDate: s.tracker.AssetUpdateDate(),
	})
}

// handleReplaceAssets overwrites the five buckets wholesale. A missing
// update date defaults to today.
func (s *Server) handleReplaceAssets(w http.ResponseWriter, r *http.Request) {
	var req replaceAssetsRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid assets payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := req.UpdateDate
	if date.IsZero() {
		now := time.Now()
		date = core.NewDate(now.Year(), int(now.Month()), now.Day())
	}

	s.tracker.ReplaceAssets(r.Context(), req.Assets, date)
	s.invalidateReports()

	assets := s.tracker.Assets()
	writeJSON(w, http.StatusOK, assetsResponse{
		Assets:     assets,
		Total:      assets.Total(),
		UpdateDate: s.tracker.AssetUpdateDate(),
	})
}
