package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/calculator"
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
	"github.com/budgetguru/backend/internal/storage"
)

// TransactionService manages income and expense transactions.
// Settlement transactions are never created here; only the settlement
// recorder may write those, and always in pairs.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a TransactionService with the given storage
// backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

// List retrieves a group's transactions newest first; pass a profile ID to
// narrow to one member.
func (s *TransactionService) List(ctx context.Context, groupID, profileID string) ([]models.Transaction, error) {
	if groupID == "" {
		return nil, apperror.InvalidInput("group id is required")
	}
	return s.store.ListTransactions(ctx, groupID, profileID)
}

// Create persists a new income or expense transaction.
func (s *TransactionService) Create(ctx context.Context, tx *models.Transaction) error {
	if err := s.validate(ctx, tx); err != nil {
		return err
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return err
	}
	slog.Info("Transaction created",
		"transaction_id", tx.ID,
		"group_id", tx.GroupID,
		"kind", tx.Kind,
		"amount", tx.Amount,
	)
	return nil
}

// Update overwrites a transaction's editable fields. Amount and kind edits
// are allowed, but nothing downstream is recalculated automatically; derived
// views pick the change up on their next read.
func (s *TransactionService) Update(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		return apperror.InvalidInput("transaction id is required")
	}
	existing, err := s.store.GetTransaction(ctx, tx.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("transaction not found: %s", tx.ID)
		}
		return err
	}
	tx.GroupID = existing.GroupID
	if tx.ProfileID == "" {
		tx.ProfileID = existing.ProfileID
	}
	if err := s.validate(ctx, tx); err != nil {
		return err
	}
	if err := s.store.UpdateTransaction(ctx, tx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("transaction not found: %s", tx.ID)
		}
		return err
	}
	slog.Info("Transaction updated", "transaction_id", tx.ID)
	return nil
}

// Delete removes a transaction by ID.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperror.InvalidInput("transaction id is required")
	}
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("transaction not found: %s", id)
		}
		return err
	}
	slog.Info("Transaction deleted", "transaction_id", id)
	return nil
}

func (s *TransactionService) validate(ctx context.Context, tx *models.Transaction) error {
	if tx.ProfileID == "" || tx.GroupID == "" {
		return apperror.InvalidInput("profile id and group id are required")
	}

	switch tx.Kind {
	case models.KindIncome, models.KindExpense:
	case models.KindSettlementPaid, models.KindSettlementReceived:
		return apperror.InvalidInput("settlement transactions can only be created by recording a settlement")
	default:
		return apperror.InvalidInput("invalid transaction kind: %q", tx.Kind)
	}

	if tx.Amount <= 0 {
		return apperror.InvalidInput("amount must be positive")
	}
	tx.Amount = money.Round2(tx.Amount)

	if _, err := time.Parse(calculator.DateLayout, tx.Date); err != nil {
		return apperror.InvalidInput("date must be YYYY-MM-DD")
	}

	tx.Description = strings.TrimSpace(tx.Description)
	if tx.Description == "" {
		return apperror.InvalidInput("description is required")
	}
	tx.Category = strings.TrimSpace(tx.Category)
	if tx.Category == "" {
		return apperror.InvalidInput("category is required")
	}

	if tx.IsRecurring {
		if _, err := models.ParseRecurringFrequency(string(tx.RecurringFrequency)); err != nil {
			return apperror.InvalidInput("%v", err)
		}
		if tx.RecurringFrequency == models.FrequencyMonthly {
			if tx.RecurringDayOfMonth < 1 || tx.RecurringDayOfMonth > models.LastDayOfMonth {
				return apperror.InvalidInput("recurring day of month must be 1-31, or %d for the last day", models.LastDayOfMonth)
			}
		}
	} else {
		tx.RecurringFrequency = ""
		tx.RecurringDayOfMonth = 0
	}

	// The owning profile must belong to the named group.
	group, err := s.store.GetGroup(ctx, tx.GroupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("group not found: %s", tx.GroupID)
		}
		return err
	}
	if group.ProfileByID(tx.ProfileID) == nil {
		return apperror.NotFound("profile %s not found in group %s", tx.ProfileID, tx.GroupID)
	}
	return nil
}
