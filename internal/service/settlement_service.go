package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/calculator"
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
	"github.com/budgetguru/backend/internal/storage"
)

// SettlementService computes group balances, plans settlements and records
// confirmed transfers.
type SettlementService struct {
	store storage.Store
	now   func() time.Time
}

// NewSettlementService creates a SettlementService with the given storage
// backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store, now: time.Now}
}

// ComputeBalances returns one balance per member of the group.
// Fails with a not-found error when the group is missing or has no members:
// an empty group is a data problem, not a group of zero balances.
func (s *SettlementService) ComputeBalances(ctx context.Context, groupID string) ([]models.Balance, error) {
	sheet, err := s.balanceSheet(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return sheet.Balances, nil
}

// Split returns the full expense-split view for a group: totals, balances and
// the proposed settlements that would zero them out.
func (s *SettlementService) Split(ctx context.Context, groupID string) (*models.SplitSummary, error) {
	sheet, err := s.balanceSheet(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return &models.SplitSummary{
		TotalExpense:   sheet.TotalExpense,
		PerPersonShare: sheet.PerPersonShare,
		Balances:       sheet.Balances,
		Settlements:    calculator.PlanSettlements(sheet.Balances),
	}, nil
}

func (s *SettlementService) balanceSheet(ctx context.Context, groupID string) (*calculator.BalanceSheet, error) {
	if groupID == "" {
		return nil, apperror.InvalidInput("group id is required")
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperror.NotFound("group not found: %s", groupID)
		}
		return nil, err
	}
	if len(group.Profiles) == 0 {
		return nil, apperror.NotFound("group %s has no members", groupID)
	}

	transactions, err := s.store.ListTransactions(ctx, groupID, "")
	if err != nil {
		return nil, err
	}

	sheet, err := calculator.ComputeBalances(group.Profiles, transactions)
	if err != nil {
		return nil, apperror.DataIntegrity(err, "failed to compute balances for group %s", groupID)
	}
	return sheet, nil
}

// RecordSettlement durably records a confirmed transfer as a pair of linked
// transactions: settlement_paid on the debtor, settlement_received on the
// creditor, same amount, same group, same date, written atomically.
//
// There is no idempotency key: a caller retrying after an ambiguous failure
// can record the same settlement twice. Known gap, kept deliberately.
func (s *SettlementService) RecordSettlement(ctx context.Context, fromProfileID, toProfileID, groupID string, amount float64) error {
	if fromProfileID == "" || toProfileID == "" || groupID == "" {
		return apperror.InvalidInput("fromProfileId, toProfileId and groupId are required")
	}
	if amount <= 0 {
		return apperror.InvalidInput("settlement amount must be positive")
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("group not found: %s", groupID)
		}
		return err
	}

	from := group.ProfileByID(fromProfileID)
	to := group.ProfileByID(toProfileID)
	if from == nil || to == nil {
		return apperror.NotFound("one or both profiles not found in group %s", groupID)
	}

	amount = money.Round2(amount)
	date := s.now().UTC().Format(calculator.DateLayout)
	pairID := uuid.New().String()

	paid := &models.Transaction{
		ProfileID:   fromProfileID,
		GroupID:     groupID,
		Amount:      amount,
		Date:        date,
		Description: "Settlement paid to " + to.Name,
		Category:    models.SettlementCategory,
		Kind:        models.KindSettlementPaid,
		PairID:      pairID,
	}
	received := &models.Transaction{
		ProfileID:   toProfileID,
		GroupID:     groupID,
		Amount:      amount,
		Date:        date,
		Description: "Settlement received from " + from.Name,
		Category:    models.SettlementCategory,
		Kind:        models.KindSettlementReceived,
		PairID:      pairID,
	}

	if err := s.store.CreateSettlementPair(ctx, paid, received); err != nil {
		slog.Error("RecordSettlement failed", "group_id", groupID, "error", err)
		return apperror.TransactionFailure(err, "failed to record settlement")
	}

	slog.Info("Settlement recorded",
		"group_id", groupID,
		"from", from.Name,
		"to", to.Name,
		"amount", amount,
		"pair_id", pairID,
	)
	return nil
}
