package api

import (
	"net/http"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/service"
)

func (s *Server) handleGetBudgets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groupID := q.Get("groupId")

	var reports []models.BudgetReport
	var err error
	if q.Get("viewMode") == "group" {
		reports, err = s.budgets.GroupReports(r.Context(), groupID)
	} else {
		reports, err = s.budgets.ProfileReports(r.Context(), groupID, q.Get("profileId"))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]budgetReportJSON, len(reports))
	for i, rep := range reports {
		out[i] = toBudgetReportJSON(rep)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReplaceBudgets(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProfileID string       `json:"profileId"`
		GroupID   string       `json:"groupId"`
		Budgets   []budgetJSON `json:"budgets"`
	}
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}

	inputs := make([]service.BudgetInput, len(in.Budgets))
	for i, b := range in.Budgets {
		inputs[i] = service.BudgetInput{Category: b.Category, Amount: b.Amount}
	}

	saved, err := s.budgets.Replace(r.Context(), in.ProfileID, in.GroupID, inputs)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]budgetJSON, len(saved))
	for i, b := range saved {
		out[i] = budgetJSON{ID: b.ID, Category: b.Category, Amount: b.Amount}
	}
	writeJSON(w, http.StatusCreated, out)
}
