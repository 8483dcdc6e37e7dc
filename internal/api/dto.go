package api

import "github.com/budgetguru/backend/internal/models"

// JSON shapes for the API. Domain models stay free of serialization tags;
// these mirror them field for field.

type profileJSON struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

type groupJSON struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name"`
	Category  string        `json:"type"`
	Profiles  []profileJSON `json:"profiles"`
	CreatedAt int64         `json:"createdAt,omitempty"`
}

type transactionJSON struct {
	ID                  string  `json:"id,omitempty"`
	ProfileID           string  `json:"profileId"`
	GroupID             string  `json:"groupId"`
	AssetID             string  `json:"assetId,omitempty"`
	Amount              float64 `json:"amount"`
	Date                string  `json:"date"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	Kind                string  `json:"type"`
	IsRecurring         bool    `json:"isRecurring,omitempty"`
	RecurringFrequency  string  `json:"recurringFrequency,omitempty"`
	RecurringDayOfMonth int     `json:"recurringDayOfMonth,omitempty"`
	PairID              string  `json:"pairId,omitempty"`
	CreatedAt           int64   `json:"createdAt,omitempty"`
}

type budgetJSON struct {
	ID       string  `json:"id,omitempty"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type budgetReportJSON struct {
	budgetJSON
	ProfileID  string  `json:"profileId,omitempty"`
	GroupID    string  `json:"groupId,omitempty"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

type assetJSON struct {
	ID                   string  `json:"id,omitempty"`
	ProfileID            string  `json:"profileId"`
	GroupID              string  `json:"groupId"`
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	InitialValue         float64 `json:"initialValue"`
	CurrentValue         float64 `json:"currentValue"`
	PurchaseDate         string  `json:"purchaseDate"`
	DepreciationRate     float64 `json:"depreciationRate"`
	LastDepreciationDate string  `json:"lastDepreciationDate,omitempty"`
}

type balanceJSON struct {
	ProfileID string  `json:"profileId"`
	Name      string  `json:"name"`
	Color     string  `json:"color,omitempty"`
	Paid      float64 `json:"paid"`
	Balance   float64 `json:"balance"`
}

type settlementJSON struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type splitSummaryJSON struct {
	TotalExpense   float64          `json:"totalExpense"`
	PerPersonShare float64          `json:"perPersonShare"`
	Balances       []balanceJSON    `json:"balances"`
	Settlements    []settlementJSON `json:"settlements"`
}

func toGroupJSON(g *models.Group) groupJSON {
	profiles := make([]profileJSON, len(g.Profiles))
	for i, p := range g.Profiles {
		profiles[i] = profileJSON{ID: p.ID, Name: p.Name, Color: p.Color, CreatedAt: p.CreatedAt}
	}
	return groupJSON{
		ID:        g.ID,
		Name:      g.Name,
		Category:  string(g.Category),
		Profiles:  profiles,
		CreatedAt: g.CreatedAt,
	}
}

func toTransactionJSON(t models.Transaction) transactionJSON {
	return transactionJSON{
		ID:                  t.ID,
		ProfileID:           t.ProfileID,
		GroupID:             t.GroupID,
		AssetID:             t.AssetID,
		Amount:              t.Amount,
		Date:                t.Date,
		Description:         t.Description,
		Category:            t.Category,
		Kind:                string(t.Kind),
		IsRecurring:         t.IsRecurring,
		RecurringFrequency:  string(t.RecurringFrequency),
		RecurringDayOfMonth: t.RecurringDayOfMonth,
		PairID:              t.PairID,
		CreatedAt:           t.CreatedAt,
	}
}

func toBudgetReportJSON(r models.BudgetReport) budgetReportJSON {
	return budgetReportJSON{
		budgetJSON: budgetJSON{ID: r.ID, Category: r.Category, Amount: r.Amount},
		ProfileID:  r.ProfileID,
		GroupID:    r.GroupID,
		Spent:      r.Spent,
		Remaining:  r.Remaining,
		Percentage: r.Percentage,
		Status:     string(r.Status),
	}
}

func toAssetJSON(a models.Asset) assetJSON {
	return assetJSON{
		ID:                   a.ID,
		ProfileID:            a.ProfileID,
		GroupID:              a.GroupID,
		Name:                 a.Name,
		Type:                 string(a.Type),
		InitialValue:         a.InitialValue,
		CurrentValue:         a.CurrentValue,
		PurchaseDate:         a.PurchaseDate,
		DepreciationRate:     a.DepreciationRate,
		LastDepreciationDate: a.LastDepreciationDate,
	}
}

func toSplitSummaryJSON(s *models.SplitSummary) splitSummaryJSON {
	balances := make([]balanceJSON, len(s.Balances))
	for i, b := range s.Balances {
		balances[i] = balanceJSON{ProfileID: b.ProfileID, Name: b.Name, Color: b.Color, Paid: b.Paid, Balance: b.Balance}
	}
	settlements := make([]settlementJSON, len(s.Settlements))
	for i, st := range s.Settlements {
		settlements[i] = settlementJSON{From: st.From, To: st.To, Amount: st.Amount}
	}
	return splitSummaryJSON{
		TotalExpense:   s.TotalExpense,
		PerPersonShare: s.PerPersonShare,
		Balances:       balances,
		Settlements:    settlements,
	}
}
