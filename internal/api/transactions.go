package api

import (
	"net/http"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("groupId")
	profileID := ""
	if r.URL.Query().Get("viewMode") == "individual" {
		profileID = r.URL.Query().Get("profileId")
	}

	transactions, err := s.transactions.List(r.Context(), groupID, profileID)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]transactionJSON, len(transactions))
	for i, t := range transactions {
		out[i] = toTransactionJSON(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in transactionJSON
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}
	tx := transactionFromJSON(in)
	if err := s.transactions.Create(r.Context(), tx); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionJSON(*tx))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var in transactionJSON
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}
	tx := transactionFromJSON(in)
	tx.ID = r.PathValue("id")
	if err := s.transactions.Update(r.Context(), tx); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionJSON(*tx))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}

func transactionFromJSON(in transactionJSON) *models.Transaction {
	assetID := in.AssetID
	if assetID == "none" {
		assetID = ""
	}
	return &models.Transaction{
		ProfileID:           in.ProfileID,
		GroupID:             in.GroupID,
		AssetID:             assetID,
		Amount:              in.Amount,
		Date:                in.Date,
		Description:         in.Description,
		Category:            in.Category,
		Kind:                models.TransactionKind(in.Kind),
		IsRecurring:         in.IsRecurring,
		RecurringFrequency:  models.RecurringFrequency(in.RecurringFrequency),
		RecurringDayOfMonth: in.RecurringDayOfMonth,
	}
}
