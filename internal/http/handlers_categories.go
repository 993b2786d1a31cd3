package http

import (
	"log/slog"
	"net/http"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type renameCategoryRequest struct {
	NewName string `json:"newName"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Categories())
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid category payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.tracker.AddCategory(r.Context(), req.Name); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, s.tracker.Categories())
}

func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	var req renameCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid rename payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.tracker.RenameCategory(r.Context(), r.PathValue("name"), req.NewName); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.invalidateReports()
	writeJSON(w, http.StatusOK, s.tracker.Categories())
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteCategory(r.Context(), r.PathValue("name")); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
