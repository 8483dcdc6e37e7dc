package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetguru/backend/internal/models"
)

// ReplaceBudgets deletes all of a profile's budgets and inserts the given set
// in one database transaction. The replace is destructive by design: the
// caller always sends the complete set.
func (s *SQLiteStore) ReplaceBudgets(ctx context.Context, profileID, groupID string, budgets []models.Budget) ([]models.Budget, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM budgets WHERE profile_id = ?", profileID); err != nil {
		return nil, fmt.Errorf("failed to clear budgets: %w", err)
	}

	now := time.Now().Unix()
	saved := make([]models.Budget, len(budgets))
	for i, b := range budgets {
		b.ID = uuid.New().String()
		b.ProfileID = profileID
		b.GroupID = groupID
		b.CreatedAt = now

		_, err = tx.ExecContext(ctx,
			"INSERT INTO budgets (id, profile_id, group_id, category, amount, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			b.ID, b.ProfileID, b.GroupID, b.Category, b.Amount, b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert budget: %w", err)
		}
		saved[i] = b
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit budgets: %w", err)
	}
	return saved, nil
}

// ListBudgetsByProfile retrieves a profile's budgets.
func (s *SQLiteStore) ListBudgetsByProfile(ctx context.Context, profileID string) ([]models.Budget, error) {
	return s.listBudgets(ctx, "profile_id", profileID)
}

// ListBudgetsByGroup retrieves all budgets in a group.
func (s *SQLiteStore) ListBudgetsByGroup(ctx context.Context, groupID string) ([]models.Budget, error) {
	return s.listBudgets(ctx, "group_id", groupID)
}

func (s *SQLiteStore) listBudgets(ctx context.Context, column, id string) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, profile_id, group_id, category, amount, created_at FROM budgets WHERE "+column+" = ? ORDER BY category",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.ProfileID, &b.GroupID, &b.Category, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}
