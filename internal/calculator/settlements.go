package calculator

import (
	"math"
	"sort"

	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
)

// settleEpsilon is the floating-point noise floor: residual balances below it
// count as settled, and no transfer smaller than it is ever proposed.
const settleEpsilon = 0.005

type settleParty struct {
	name      string
	remaining float64
}

// PlanSettlements produces the ordered list of transfers that zero out the
// given balances. Executing every returned settlement drives each balance to
// within a cent of zero, using at most debtors+creditors-1 transfers.
//
// Debtors and creditors are each sorted ascending by magnitude, smallest
// first, with ties keeping input order. Two cursors then walk the lists,
// transferring min(debt, credit) at each step. Resolving small parties first
// clears more members early; it deliberately does not minimize the transfer
// count, and the ordering is part of the observable contract, so keep it.
func PlanSettlements(balances []models.Balance) []models.Settlement {
	var debtors, creditors []settleParty
	for _, b := range balances {
		switch {
		case b.Balance < 0:
			debtors = append(debtors, settleParty{name: b.Name, remaining: math.Abs(b.Balance)})
		case b.Balance > 0:
			creditors = append(creditors, settleParty{name: b.Name, remaining: b.Balance})
		}
	}
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].remaining < debtors[j].remaining })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].remaining < creditors[j].remaining })

	var settlements []models.Settlement
	di, ci := 0, 0
	for di < len(debtors) && ci < len(creditors) {
		debtor := &debtors[di]
		creditor := &creditors[ci]

		amount := math.Min(debtor.remaining, creditor.remaining)
		if amount > settleEpsilon {
			settlements = append(settlements, models.Settlement{
				From:   debtor.name,
				To:     creditor.name,
				Amount: money.Round2(amount),
			})
			debtor.remaining -= amount
			creditor.remaining -= amount
		}

		if debtor.remaining < settleEpsilon {
			di++
		}
		if creditor.remaining < settleEpsilon {
			ci++
		}
	}

	return settlements
}
