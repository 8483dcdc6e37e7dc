package calculator

import (
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
)

// nearLimitPercent is where a budget's status flips from On Track to Near
// Limit. Over Budget starts strictly above 100%.
const nearLimitPercent = 80

// BudgetReports derives the current month's figures for each budget from the
// month's per-category expense totals. Categories match exactly; a category
// with no spend this month reports zero.
func BudgetReports(budgets []models.Budget, spentByCategory map[string]float64) []models.BudgetReport {
	reports := make([]models.BudgetReport, len(budgets))
	for i, b := range budgets {
		spent := spentByCategory[b.Category]
		var pct float64
		if b.Amount > 0 {
			pct = spent / b.Amount * 100
		}
		reports[i] = models.BudgetReport{
			Budget:     b,
			Spent:      money.Round2(spent),
			Remaining:  money.Round2(b.Amount - spent),
			Percentage: money.Round2(pct),
			Status:     budgetStatus(pct),
		}
	}
	return reports
}

func budgetStatus(percentage float64) models.BudgetStatus {
	switch {
	case percentage > 100:
		return models.BudgetOver
	case percentage >= nearLimitPercent:
		return models.BudgetNearLimit
	default:
		return models.BudgetOnTrack
	}
}
