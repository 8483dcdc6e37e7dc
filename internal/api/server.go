// Package api exposes the services over a plain JSON HTTP API.
// Handlers only parse requests, call a service and serialize the result;
// all business rules live below this layer.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/service"
	"github.com/budgetguru/backend/internal/storage"
)

// Server bundles the service handlers behind one mux.
type Server struct {
	groups       *service.GroupService
	transactions *service.TransactionService
	budgets      *service.BudgetService
	assets       *service.AssetService
	settlements  *service.SettlementService
}

// NewServer wires all services onto the given store.
func NewServer(store storage.Store) *Server {
	return &Server{
		groups:       service.NewGroupService(store),
		transactions: service.NewTransactionService(store),
		budgets:      service.NewBudgetService(store),
		assets:       service.NewAssetService(store),
		settlements:  service.NewSettlementService(store),
	}
}

// Register attaches all routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/groups", s.handleListGroups)
	mux.HandleFunc("POST /api/groups", s.handleCreateGroup)
	mux.HandleFunc("PUT /api/groups/{id}", s.handleUpdateGroup)
	mux.HandleFunc("DELETE /api/groups/{id}", s.handleDeleteGroup)
	mux.HandleFunc("DELETE /api/groups/{id}/profiles/{profileId}", s.handleRemoveProfile)

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	mux.HandleFunc("GET /api/budgets", s.handleGetBudgets)
	mux.HandleFunc("POST /api/budgets", s.handleReplaceBudgets)

	mux.HandleFunc("GET /api/assets", s.handleListAssets)
	mux.HandleFunc("POST /api/assets", s.handleCreateAsset)
	mux.HandleFunc("PUT /api/assets/{id}", s.handleUpdateAsset)
	mux.HandleFunc("DELETE /api/assets/{id}", s.handleDeleteAsset)

	mux.HandleFunc("GET /api/expense-split/{groupId}", s.handleExpenseSplit)
	mux.HandleFunc("POST /api/settle-expense", s.handleSettleExpense)
}

// writeJSON serializes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service errors to status codes. Typed apperrors carry
// their own status; anything else is an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status(), map[string]string{"error": appErr.Message})
		return
	}
	slog.Error("Unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// decode parses the request body into v.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
