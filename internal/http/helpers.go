package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dompet/internal/core"
	"dompet/internal/finance"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses the request body into dest, rejecting unknown fields.
func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, finance.ErrDuplicateCategory), errors.Is(err, finance.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, finance.ErrInvalidCategoryName):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrUnknownSource):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
