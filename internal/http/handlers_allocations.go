package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"dompet/internal/core"
	"dompet/internal/finance"
)

type createAllocationRequest struct {
	Category         string  `json:"category"`
	TargetPercentage float64 `json:"targetPercentage"`
	ActualBalance    int64   `json:"actualBalance"`
	SpecificTarget   *int64  `json:"specificTarget"`
}

// patchAllocationRequest distinguishes an absent specificTarget (leave as
// is) from an explicit null (clear the fixed target).
type patchAllocationRequest struct {
	Category         *string         `json:"category"`
	TargetPercentage *float64        `json:"targetPercentage"`
	ActualBalance    *int64          `json:"actualBalance"`
	SpecificTarget   json.RawMessage `json:"specificTarget"`
}

func (s *Server) handleListAllocations(w http.ResponseWriter, r *http.Request) {
	views := s.tracker.AllocationViews()
	if views == nil {
		views = []core.AllocationView{}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateAllocation(w http.ResponseWriter, r *http.Request) {
	var req createAllocationRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid allocation payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		writeError(w, http.StatusUnprocessableEntity, "category is required")
		return
	}

	alloc := s.tracker.AddAllocation(r.Context(), finance.AllocationInput{
		Category:         req.Category,
		TargetPercentage: req.TargetPercentage,
		ActualBalance:    req.ActualBalance,
		SpecificTarget:   req.SpecificTarget,
	})
	s.invalidateReports()
	writeJSON(w, http.StatusCreated, alloc)
}

func (s *Server) handlePatchAllocation(w http.ResponseWriter, r *http.Request) {
	var req patchAllocationRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid allocation patch", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := finance.AllocationPatch{
		Category:         req.Category,
		TargetPercentage: req.TargetPercentage,
		ActualBalance:    req.ActualBalance,
	}
	if len(req.SpecificTarget) > 0 {
		if bytes.Equal(bytes.TrimSpace(req.SpecificTarget), []byte("null")) {
			patch.ClearSpecificTarget = true
		} else {
			var target int64
			if err := json.Unmarshal(req.SpecificTarget, &target); err != nil {
				writeError(w, http.StatusUnprocessableEntity, "specificTarget must be a number or null")
				return
			}
			patch.SpecificTarget = &target
		}
	}

	s.tracker.UpdateAllocation(r.Context(), r.PathValue("id"), patch)
	s.invalidateReports()
	writeJSON(w, http.StatusOK, s.tracker.AllocationViews())
}

func (s *Server) handleDeleteAllocation(w http.ResponseWriter, r *http.Request) {
	s.tracker.DeleteAllocation(r.Context(), r.PathValue("id"))
	s.invalidateReports()
	w.WriteHeader(http.StatusNoContent)
}
