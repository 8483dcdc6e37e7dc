// Package calculator implements the pure computation core: balance
// aggregation, settlement planning, asset depreciation and budget reporting.
// Nothing in this package touches storage; callers supply materialized
// records and persist whatever comes back.
package calculator

import (
	"fmt"

	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
)

// BalanceSheet is the aggregate result of balancing a group's transactions.
type BalanceSheet struct {
	// TotalExpense is the sum of all expense transactions in the group.
	TotalExpense float64

	// PerPersonShare is TotalExpense divided evenly by member count.
	PerPersonShare float64

	// Balances holds one entry per group member, in member order.
	Balances []models.Balance
}

// ComputeBalances aggregates a group's transactions into one balance per
// member.
//
// Each member's balance starts at paid - fairShare. Recorded settlements then
// adjust it: a settlement_paid moves the debtor's balance up (they owe less),
// a settlement_received moves the creditor's balance down (they are owed
// less). Balances are rounded to two decimals; before settlement adjustments
// they sum to ~0, and adjustments arrive in equal-and-opposite pairs, so the
// zero-sum invariant holds throughout.
//
// Settlement transactions owned by a profile no longer in the group are
// skipped; income transactions never contribute.
func ComputeBalances(profiles []models.Profile, transactions []models.Transaction) (*BalanceSheet, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("cannot compute balances for a group with no members")
	}

	var totalExpense float64
	paidBy := make(map[string]float64, len(profiles))
	for _, tx := range transactions {
		if tx.Kind != models.KindExpense {
			continue
		}
		totalExpense += tx.Amount
		paidBy[tx.ProfileID] += tx.Amount
	}
	perShare := totalExpense / float64(len(profiles))

	byProfile := make(map[string]int, len(profiles))
	balances := make([]models.Balance, len(profiles))
	for i, p := range profiles {
		byProfile[p.ID] = i
		balances[i] = models.Balance{
			ProfileID: p.ID,
			Name:      p.Name,
			Color:     p.Color,
			Paid:      paidBy[p.ID],
			Balance:   paidBy[p.ID] - perShare,
		}
	}

	for _, tx := range transactions {
		i, ok := byProfile[tx.ProfileID]
		if !ok {
			continue
		}
		switch tx.Kind {
		case models.KindSettlementPaid:
			balances[i].Balance += tx.Amount
		case models.KindSettlementReceived:
			balances[i].Balance -= tx.Amount
		}
	}

	for i := range balances {
		balances[i].Paid = money.Round2(balances[i].Paid)
		balances[i].Balance = money.Round2(balances[i].Balance)
	}

	return &BalanceSheet{
		TotalExpense:   money.Round2(totalExpense),
		PerPersonShare: money.Round2(perShare),
		Balances:       balances,
	}, nil
}
