package models

import "fmt"

// TransactionKind is the closed set of transaction types.
// There are exactly four; anything else is a construction-time error.
type TransactionKind string

const (
	KindIncome             TransactionKind = "income"
	KindExpense            TransactionKind = "expense"
	KindSettlementPaid     TransactionKind = "settlement_paid"
	KindSettlementReceived TransactionKind = "settlement_received"
)

// ParseTransactionKind validates a raw kind string.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch k := TransactionKind(s); k {
	case KindIncome, KindExpense, KindSettlementPaid, KindSettlementReceived:
		return k, nil
	}
	return "", fmt.Errorf("invalid transaction kind: %q", s)
}

// RecurringFrequency is how often a recurring transaction repeats.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// ParseRecurringFrequency validates a raw frequency string.
func ParseRecurringFrequency(s string) (RecurringFrequency, error) {
	switch f := RecurringFrequency(s); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return f, nil
	}
	return "", fmt.Errorf("invalid recurring frequency: %q", s)
}

// LastDayOfMonth is the day-of-month sentinel meaning "last day of the month",
// so monthly recurrences work in February and 30-day months.
const LastDayOfMonth = 32

// SettlementCategory is the category assigned to both halves of a recorded
// settlement pair.
const SettlementCategory = "Settlement"

// Transaction is a single financial event owned by one profile in one group.
//
// Amounts are always positive and rounded to two decimal places; the kind
// determines direction. Settlement kinds are only ever created in matched
// pairs by the settlement recorder, sharing a PairID.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// ProfileID is the owning profile.
	ProfileID string

	// GroupID is the owning group.
	GroupID string

	// AssetID optionally links the transaction to an asset ("" when unlinked).
	AssetID string

	// Amount is the monetary value, always > 0, two decimal places.
	Amount float64

	// Date is the calendar date in YYYY-MM-DD form. No time component.
	Date string

	// Description is free text, trimmed.
	Description string

	// Category is the spending/income category tag.
	Category string

	// Kind is one of the four transaction kinds.
	Kind TransactionKind

	// IsRecurring marks a recurring transaction template.
	IsRecurring bool

	// RecurringFrequency is set only when IsRecurring is true.
	RecurringFrequency RecurringFrequency

	// RecurringDayOfMonth is 1-31, or LastDayOfMonth; only meaningful for
	// monthly frequency.
	RecurringDayOfMonth int

	// PairID links the two halves of a settlement pair ("" otherwise).
	PairID string

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}
