package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
)

func TestSplit(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "Alice", "Bob")
	alice, bob := group.Profiles[0], group.Profiles[1]
	seedExpense(t, store, group, alice.ID, 100, "2026-09-01", "Groceries")

	summary, err := svc.Split(ctx, group.ID)
	require.NoError(t, err)
	require.Equal(t, 100.0, summary.TotalExpense)
	require.Equal(t, 50.0, summary.PerPersonShare)

	require.Len(t, summary.Balances, 2)
	require.Equal(t, alice.ID, summary.Balances[0].ProfileID)
	require.Equal(t, 50.0, summary.Balances[0].Balance)
	require.Equal(t, bob.ID, summary.Balances[1].ProfileID)
	require.Equal(t, -50.0, summary.Balances[1].Balance)

	require.Len(t, summary.Settlements, 1)
	require.Equal(t, models.Settlement{From: "Bob", To: "Alice", Amount: 50}, summary.Settlements[0])
}

func TestSplitGroupNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)
	ctx := context.Background()

	_, err := svc.Split(ctx, "missing")
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = svc.ComputeBalances(ctx, "")
	require.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
}

func TestSplitEmptyGroupIsNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)
	ctx := context.Background()

	// A group with no members can only exist through direct storage writes,
	// but the split must still refuse it rather than divide by zero.
	empty := &models.Group{Name: "Ghost town", Category: models.GroupOther}
	require.NoError(t, store.CreateGroup(ctx, empty))

	_, err := svc.Split(ctx, empty.ID)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRecordSettlement(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)
	svc.now = fixedNow("2026-09-15")
	ctx := context.Background()

	group := seedGroup(t, store, "Alice", "Bob")
	alice, bob := group.Profiles[0], group.Profiles[1]
	seedExpense(t, store, group, alice.ID, 100, "2026-09-01", "Groceries")

	require.NoError(t, svc.RecordSettlement(ctx, bob.ID, alice.ID, group.ID, 50))

	transactions, err := store.ListTransactions(ctx, group.ID, "")
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	var paid, received *models.Transaction
	for i := range transactions {
		switch transactions[i].Kind {
		case models.KindSettlementPaid:
			paid = &transactions[i]
		case models.KindSettlementReceived:
			received = &transactions[i]
		}
	}
	require.NotNil(t, paid)
	require.NotNil(t, received)

	require.Equal(t, bob.ID, paid.ProfileID)
	require.Equal(t, "Settlement paid to Alice", paid.Description)
	require.Equal(t, alice.ID, received.ProfileID)
	require.Equal(t, "Settlement received from Bob", received.Description)
	for _, tx := range []*models.Transaction{paid, received} {
		require.Equal(t, 50.0, tx.Amount)
		require.Equal(t, "2026-09-15", tx.Date)
		require.Equal(t, models.SettlementCategory, tx.Category)
	}
	require.NotEmpty(t, paid.PairID)
	require.Equal(t, paid.PairID, received.PairID)

	// Recording the settlement zeroes the balances and the next split
	// proposes nothing.
	summary, err := svc.Split(ctx, group.ID)
	require.NoError(t, err)
	for _, b := range summary.Balances {
		require.Zero(t, b.Balance)
	}
	require.Empty(t, summary.Settlements)
}

func TestRecordSettlementRoundsAmount(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "Alice", "Bob")
	alice, bob := group.Profiles[0], group.Profiles[1]

	require.NoError(t, svc.RecordSettlement(ctx, bob.ID, alice.ID, group.ID, 33.333))

	transactions, err := store.ListTransactions(ctx, group.ID, "")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	for _, tx := range transactions {
		require.Equal(t, 33.33, tx.Amount)
	}
}

func TestRecordSettlementValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "Alice", "Bob")
	alice, bob := group.Profiles[0], group.Profiles[1]

	tests := []struct {
		name   string
		from   string
		to     string
		group  string
		amount float64
		kind   apperror.Kind
	}{
		{"missing from", "", alice.ID, group.ID, 10, apperror.KindInvalidInput},
		{"missing to", bob.ID, "", group.ID, 10, apperror.KindInvalidInput},
		{"missing group", bob.ID, alice.ID, "", 10, apperror.KindInvalidInput},
		{"zero amount", bob.ID, alice.ID, group.ID, 0, apperror.KindInvalidInput},
		{"negative amount", bob.ID, alice.ID, group.ID, -5, apperror.KindInvalidInput},
		{"unknown group", bob.ID, alice.ID, "missing", 10, apperror.KindNotFound},
		{"unknown payer", "missing", alice.ID, group.ID, 10, apperror.KindNotFound},
		{"unknown payee", bob.ID, "missing", group.ID, 10, apperror.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RecordSettlement(ctx, tt.from, tt.to, tt.group, tt.amount)
			require.True(t, apperror.IsKind(err, tt.kind), "got %v", err)
		})
	}

	// Nothing may have been written by any of the rejected calls.
	transactions, err := store.ListTransactions(ctx, group.ID, "")
	require.NoError(t, err)
	require.Empty(t, transactions)
}
