package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tally/internal/core"
	"tally/internal/export"
	"tally/internal/ledger"
)

type createTransactionRequest struct {
	Amount      core.Money `json:"amount"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
}

type transactionResponse struct {
	ID          int64      `json:"id"`
	Amount      core.Money `json:"amount"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type summaryResponse struct {
	Income       core.Money            `json:"income"`
	Expense      core.Money            `json:"expense"`
	Balance      core.Money            `json:"balance"`
	Transactions []transactionResponse `json:"transactions"`
}

func toTransactionResponse(t core.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Category:    string(t.Category),
		Description: t.Description,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

// handleTransactions dispatches /api/transactions by method.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodDelete:
		s.handleDeleteTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		// Money rejects zero, negative and malformed amounts during decode.
		if core.IsValidationError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	category, err := core.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid category %q", req.Category))
		return
	}

	tx, err := s.ledger.Record(r.Context(), ownerFromContext(r.Context()), req.Amount, category, sanitizeInput(req.Description))
	if err != nil {
		switch {
		case core.IsValidationError(err):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledger.ErrUnauthenticated):
			writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			slog.ErrorContext(r.Context(), "Create transaction failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date range: expect startDate and endDate as YYYY-MM-DD with startDate <= endDate")
		return
	}

	sum, err := s.ledger.List(r.Context(), ownerFromContext(r.Context()), rng)
	if err != nil {
		if errors.Is(err, ledger.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		slog.ErrorContext(r.Context(), "List transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := summaryResponse{
		Income:       sum.TotalIncome,
		Expense:      sum.TotalExpense,
		Balance:      sum.Balance(),
		Transactions: make([]transactionResponse, 0, len(sum.Transactions)),
	}
	for _, t := range sum.Transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "invalid transaction id")
		return
	}

	err = s.ledger.Delete(r.Context(), ownerFromContext(r.Context()), id)
	if err != nil {
		switch {
		// Missing and foreign ids present identically so ids cannot be probed.
		case errors.Is(err, ledger.ErrNotFound), errors.Is(err, ledger.ErrForbidden):
			writeError(w, http.StatusForbidden, "not allowed to delete")
		case errors.Is(err, ledger.ErrUnauthenticated):
			writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			slog.ErrorContext(r.Context(), "Delete transaction failed", "error", err, "transaction_id", id)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExport streams the owner's ledger as a CSV attachment. The same
// from/to filtering as the list endpoint applies.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if format := r.URL.Query().Get("format"); format != "" && format != "csv" {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("unsupported export format %q", format))
		return
	}

	rng, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date range: expect startDate and endDate as YYYY-MM-DD with startDate <= endDate")
		return
	}

	sum, err := s.ledger.List(r.Context(), ownerFromContext(r.Context()), rng)
	if err != nil {
		if errors.Is(err, ledger.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteCSV(w, sum); err != nil {
		slog.ErrorContext(r.Context(), "CSV rendering failed", "error", err)
	}
}
