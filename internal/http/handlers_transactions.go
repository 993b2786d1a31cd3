package http

import (
	"log/slog"
	"net/http"

	"dompet/internal/core"
	"dompet/internal/finance"
)

type transactionRequest struct {
	Date        core.Date            `json:"date"`
	Type        core.TransactionType `json:"type"`
	Amount      int64                `json:"amount"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
}

func (t transactionRequest) validate() (string, bool) {
	if t.Date.IsZero() {
		return "date is required", false
	}
	if t.Type != core.TypeIncome && t.Type != core.TypeExpense {
		return "type must be Masuk or Keluar", false
	}
	return "", true
}

func sourceFromPath(r *http.Request) (core.Source, error) {
	return core.ParseSource(r.PathValue("source"))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	source, err := sourceFromPath(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	txns, err := s.tracker.Transactions(source)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	if txns == nil {
		txns = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txns)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	source, err := sourceFromPath(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid transaction payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	txn, err := s.tracker.AddTransaction(r.Context(), source, finance.TransactionInput{
		Date:        req.Date,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.invalidateReports()
	writeJSON(w, http.StatusCreated, txn)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	source, err := sourceFromPath(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "Invalid transaction payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	updated := core.Transaction{
		ID:          r.PathValue("id"),
		Date:        req.Date,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.tracker.UpdateTransaction(r.Context(), source, updated); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.invalidateReports()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	source, err := sourceFromPath(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := s.tracker.DeleteTransaction(r.Context(), source, r.PathValue("id")); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	s.invalidateReports()
	w.WriteHeader(http.StatusNoContent)
}
