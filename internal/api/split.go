package api

import (
	"net/http"

	"github.com/budgetguru/backend/internal/apperror"
)

func (s *Server) handleExpenseSplit(w http.ResponseWriter, r *http.Request) {
	summary, err := s.settlements.Split(r.Context(), r.PathValue("groupId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSplitSummaryJSON(summary))
}

func (s *Server) handleSettleExpense(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FromProfileID string  `json:"fromProfileId"`
		ToProfileID   string  `json:"toProfileId"`
		GroupID       string  `json:"groupId"`
		Amount        float64 `json:"amount"`
	}
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}

	err := s.settlements.RecordSettlement(r.Context(), in.FromProfileID, in.ToProfileID, in.GroupID, in.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "settlement recorded successfully"})
}
