package calculator

import (
	"testing"

	"github.com/budgetguru/backend/internal/models"
)

func TestBudgetReports(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: "Groceries", Amount: 500},
		{ID: "b2", Category: "Transport", Amount: 200},
		{ID: "b3", Category: "Dining", Amount: 150},
		{ID: "b4", Category: "Hobbies", Amount: 100},
	}
	spent := map[string]float64{
		"Groceries": 520,
		"Transport": 160,
		"Dining":    30,
		"groceries": 9999, // category match is exact
	}

	reports := BudgetReports(budgets, spent)
	if len(reports) != len(budgets) {
		t.Fatalf("got %d reports, want %d", len(reports), len(budgets))
	}

	tests := []struct {
		category   string
		spent      float64
		remaining  float64
		percentage float64
		status     models.BudgetStatus
	}{
		{"Groceries", 520, -20, 104, models.BudgetOver},
		{"Transport", 160, 40, 80, models.BudgetNearLimit},
		{"Dining", 30, 120, 20, models.BudgetOnTrack},
		{"Hobbies", 0, 100, 0, models.BudgetOnTrack},
	}
	for i, tt := range tests {
		r := reports[i]
		if r.Category != tt.category {
			t.Fatalf("report[%d].Category = %q, want %q", i, r.Category, tt.category)
		}
		if r.Spent != tt.spent {
			t.Errorf("%s: Spent = %v, want %v", tt.category, r.Spent, tt.spent)
		}
		if r.Remaining != tt.remaining {
			t.Errorf("%s: Remaining = %v, want %v", tt.category, r.Remaining, tt.remaining)
		}
		if r.Percentage != tt.percentage {
			t.Errorf("%s: Percentage = %v, want %v", tt.category, r.Percentage, tt.percentage)
		}
		if r.Status != tt.status {
			t.Errorf("%s: Status = %q, want %q", tt.category, r.Status, tt.status)
		}
	}
}

func TestBudgetReportsExactlyFullIsNearLimit(t *testing.T) {
	reports := BudgetReports(
		[]models.Budget{{Category: "Rent", Amount: 1000}},
		map[string]float64{"Rent": 1000},
	)
	if got := reports[0].Status; got != models.BudgetNearLimit {
		t.Errorf("Status at 100%% = %q, want %q", got, models.BudgetNearLimit)
	}
}

func TestBudgetReportsZeroCapReportsZeroPercent(t *testing.T) {
	reports := BudgetReports(
		[]models.Budget{{Category: "Misc", Amount: 0}},
		map[string]float64{"Misc": 42},
	)
	r := reports[0]
	if r.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0", r.Percentage)
	}
	if r.Status != models.BudgetOnTrack {
		t.Errorf("Status = %q, want %q", r.Status, models.BudgetOnTrack)
	}
}
