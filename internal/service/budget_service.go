package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/calculator"
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
	"github.com/budgetguru/backend/internal/storage"
)

// Budget amounts accepted by Replace. The cap keeps typos (an extra few
// zeros) out of the database.
const (
	minBudgetAmount = 0.01
	maxBudgetAmount = 10_000_000
)

// BudgetInput is one category cap in a replace batch.
type BudgetInput struct {
	Category string
	Amount   float64
}

// BudgetService manages per-profile monthly category caps and derives their
// current-month spend figures.
type BudgetService struct {
	store storage.Store
	now   func() time.Time
}

// NewBudgetService creates a BudgetService with the given storage backend.
func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store, now: time.Now}
}

// ProfileReports returns one report per budget of the profile, with spent,
// remaining, percentage and status derived from the current month's expenses.
func (s *BudgetService) ProfileReports(ctx context.Context, groupID, profileID string) ([]models.BudgetReport, error) {
	if groupID == "" || profileID == "" {
		return nil, apperror.InvalidInput("group id and profile id are required")
	}
	budgets, err := s.store.ListBudgetsByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	firstDay, lastDay := monthBounds(s.now())
	spent, err := s.store.SumMonthlyExpenses(ctx, groupID, profileID, firstDay, lastDay)
	if err != nil {
		return nil, err
	}
	return calculator.BudgetReports(budgets, spent), nil
}

// GroupReports aggregates budgets per category across every member of the
// group and derives spend figures from the whole group's expenses.
func (s *BudgetService) GroupReports(ctx context.Context, groupID string) ([]models.BudgetReport, error) {
	if groupID == "" {
		return nil, apperror.InvalidInput("group id is required")
	}
	budgets, err := s.store.ListBudgetsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	// Collapse per-profile caps into one cap per category.
	byCategory := make(map[string]*models.Budget)
	var order []string
	for _, b := range budgets {
		if agg, ok := byCategory[b.Category]; ok {
			agg.Amount = money.Round2(agg.Amount + b.Amount)
			continue
		}
		byCategory[b.Category] = &models.Budget{
			ID:       b.Category,
			GroupID:  groupID,
			Category: b.Category,
			Amount:   b.Amount,
		}
		order = append(order, b.Category)
	}
	sort.Strings(order)
	aggregated := make([]models.Budget, len(order))
	for i, category := range order {
		aggregated[i] = *byCategory[category]
	}

	firstDay, lastDay := monthBounds(s.now())
	spent, err := s.store.SumMonthlyExpenses(ctx, groupID, "", firstDay, lastDay)
	if err != nil {
		return nil, err
	}
	return calculator.BudgetReports(aggregated, spent), nil
}

// Replace swaps a profile's entire budget set: delete-all-then-insert, not a
// merge. Categories within one batch must be unique case-insensitively.
func (s *BudgetService) Replace(ctx context.Context, profileID, groupID string, inputs []BudgetInput) ([]models.Budget, error) {
	if profileID == "" || groupID == "" {
		return nil, apperror.InvalidInput("profile id and group id are required")
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperror.NotFound("group not found: %s", groupID)
		}
		return nil, err
	}
	if group.ProfileByID(profileID) == nil {
		return nil, apperror.NotFound("profile %s not found in group %s", profileID, groupID)
	}

	seen := make(map[string]bool, len(inputs))
	budgets := make([]models.Budget, len(inputs))
	for i, in := range inputs {
		category := strings.TrimSpace(in.Category)
		if category == "" {
			return nil, apperror.InvalidInput("each budget must have a category")
		}
		if in.Amount < minBudgetAmount {
			return nil, apperror.InvalidInput("budget amount for %q must be at least %.2f", category, minBudgetAmount)
		}
		if in.Amount > maxBudgetAmount {
			return nil, apperror.InvalidInput("budget amount for %q cannot exceed %d", category, maxBudgetAmount)
		}
		key := strings.ToLower(category)
		if seen[key] {
			return nil, apperror.InvalidInput("duplicate budget category: %q", category)
		}
		seen[key] = true

		budgets[i] = models.Budget{
			Category: category,
			Amount:   money.Round2(in.Amount),
		}
	}

	saved, err := s.store.ReplaceBudgets(ctx, profileID, groupID, budgets)
	if err != nil {
		slog.Error("ReplaceBudgets failed", "profile_id", profileID, "error", err)
		return nil, apperror.TransactionFailure(err, "failed to save budgets")
	}
	slog.Info("Budgets replaced", "profile_id", profileID, "count", len(saved))
	return saved, nil
}

// monthBounds returns the first and last day of t's calendar month in
// YYYY-MM-DD form.
func monthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(calculator.DateLayout), last.Format(calculator.DateLayout)
}
