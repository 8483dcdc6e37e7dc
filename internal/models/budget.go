package models

// BudgetStatus is the derived health band of a budget for the current month.
type BudgetStatus string

const (
	BudgetOnTrack   BudgetStatus = "On Track"
	BudgetNearLimit BudgetStatus = "Near Limit"
	BudgetOver      BudgetStatus = "Over Budget"
)

// Budget is a per-profile, per-group monthly spending cap for one category.
// Only the cap is persisted; spend figures are derived from the current
// month's expense transactions at read time.
type Budget struct {
	// ID is the unique identifier for the budget (UUID format).
	ID string

	// ProfileID is the owning profile.
	ProfileID string

	// GroupID is the owning group.
	GroupID string

	// Category is the expense category the cap applies to.
	Category string

	// Amount is the monthly cap, > 0, two decimal places.
	Amount float64

	// CreatedAt is the Unix timestamp when the budget was created.
	CreatedAt int64
}

// BudgetReport is a budget with its derived figures for the current month.
type BudgetReport struct {
	Budget

	// Spent is the sum of this month's matching expense transactions.
	Spent float64

	// Remaining is Amount - Spent (negative when over budget).
	Remaining float64

	// Percentage is Spent / Amount * 100 (0 when Amount is 0).
	Percentage float64

	// Status is the band derived from Percentage.
	Status BudgetStatus
}
