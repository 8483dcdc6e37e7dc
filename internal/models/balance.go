package models

// Balance is one profile's derived net position within a group.
// Positive means the profile is owed money; negative means it owes.
// Balances are never persisted.
type Balance struct {
	// ProfileID identifies the member.
	ProfileID string

	// Name is the member's display name.
	Name string

	// Color is the member's color tag, carried through for callers.
	Color string

	// Paid is the total of expenses this member paid.
	Paid float64

	// Balance is Paid minus the fair share, adjusted by recorded settlements.
	Balance float64
}

// Settlement is a proposed transfer from a debtor to a creditor.
// It becomes durable only once recorded as a pair of transactions.
type Settlement struct {
	// From is the display name of the member who pays.
	From string

	// To is the display name of the member who receives.
	To string

	// Amount is the transfer amount, two decimal places, always > 0.
	Amount float64
}

// SplitSummary is the full expense-split view for a group: the totals, every
// member's balance and the proposed settlements that would zero them out.
type SplitSummary struct {
	TotalExpense   float64
	PerPersonShare float64
	Balances       []Balance
	Settlements    []Settlement
}
