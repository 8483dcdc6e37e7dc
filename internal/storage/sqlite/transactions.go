package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/storage"
)

const transactionColumns = `id, profile_id, group_id, asset_id, amount, date, description, category, kind,
	is_recurring, recurring_frequency, recurring_day_of_month, pair_id, created_at`

// CreateTransaction persists a new transaction to the database.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	prepareTransaction(tx)
	if _, err := s.db.ExecContext(ctx, insertTransactionSQL, insertTransactionArgs(tx)...); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// CreateSettlementPair writes both halves of a settlement in one database
// transaction. On any failure the transaction rolls back and neither row
// survives, so a concurrent balance read never observes half a settlement.
func (s *SQLiteStore) CreateSettlementPair(ctx context.Context, paid, received *models.Transaction) error {
	prepareTransaction(paid)
	prepareTransaction(received)

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, insertTransactionSQL, insertTransactionArgs(paid)...); err != nil {
		return fmt.Errorf("failed to insert settlement_paid: %w", err)
	}
	if _, err := dbTx.ExecContext(ctx, insertTransactionSQL, insertTransactionArgs(received)...); err != nil {
		return fmt.Errorf("failed to insert settlement_received: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement pair: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	tx, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransaction overwrites a transaction's editable fields.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	var freq, dayOfMonth any
	if tx.IsRecurring {
		freq = string(tx.RecurringFrequency)
		if tx.RecurringDayOfMonth != 0 {
			dayOfMonth = tx.RecurringDayOfMonth
		}
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions
		 SET profile_id = ?, asset_id = ?, amount = ?, date = ?, description = ?, category = ?, kind = ?,
		     is_recurring = ?, recurring_frequency = ?, recurring_day_of_month = ?
		 WHERE id = ?`,
		tx.ProfileID, nullable(tx.AssetID), tx.Amount, tx.Date, tx.Description, tx.Category, string(tx.Kind),
		tx.IsRecurring, freq, dayOfMonth, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check transaction update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("transaction %s: %w", tx.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check transaction delete: %w", err)
	} else if n == 0 {
		return fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ListTransactions retrieves a group's transactions, newest first. An empty
// profileID returns the whole group's.
func (s *SQLiteStore) ListTransactions(ctx context.Context, groupID, profileID string) ([]models.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE group_id = ?"
	args := []any{groupID}
	if profileID != "" {
		query += " AND profile_id = ?"
		args = append(args, profileID)
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// SumMonthlyExpenses totals expense transactions per category within the
// inclusive [firstDay, lastDay] date range.
func (s *SQLiteStore) SumMonthlyExpenses(ctx context.Context, groupID, profileID, firstDay, lastDay string) (map[string]float64, error) {
	query := `SELECT category, SUM(amount) FROM transactions
	          WHERE group_id = ? AND kind = ? AND date >= ? AND date <= ?`
	args := []any{groupID, string(models.KindExpense), firstDay, lastDay}
	if profileID != "" {
		query += " AND profile_id = ?"
		args = append(args, profileID)
	}
	query += " GROUP BY category"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var sum float64
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan expense sum: %w", err)
		}
		totals[category] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense sums: %w", err)
	}
	return totals, nil
}

const insertTransactionSQL = `INSERT INTO transactions (` + transactionColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func prepareTransaction(tx *models.Transaction) {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt == 0 {
		tx.CreatedAt = time.Now().Unix()
	}
}

func insertTransactionArgs(tx *models.Transaction) []any {
	var freq, dayOfMonth any
	if tx.IsRecurring {
		freq = string(tx.RecurringFrequency)
		if tx.RecurringDayOfMonth != 0 {
			dayOfMonth = tx.RecurringDayOfMonth
		}
	}
	return []any{
		tx.ID, tx.ProfileID, tx.GroupID, nullable(tx.AssetID), tx.Amount, tx.Date,
		tx.Description, tx.Category, string(tx.Kind),
		tx.IsRecurring, freq, dayOfMonth, nullable(tx.PairID), tx.CreatedAt,
	}
}

// scanTransaction reads one row in transactionColumns order. The kind column
// goes through the enum parser so an out-of-set value in storage surfaces as
// an error instead of leaking.
func scanTransaction(scan func(dest ...any) error) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var assetID, freq, pairID sql.NullString
	var dayOfMonth sql.NullInt64
	var kind string

	err := scan(&tx.ID, &tx.ProfileID, &tx.GroupID, &assetID, &tx.Amount, &tx.Date,
		&tx.Description, &tx.Category, &kind,
		&tx.IsRecurring, &freq, &dayOfMonth, &pairID, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}

	if tx.Kind, err = models.ParseTransactionKind(kind); err != nil {
		return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
	}
	if assetID.Valid {
		tx.AssetID = assetID.String
	}
	if freq.Valid {
		if tx.RecurringFrequency, err = models.ParseRecurringFrequency(freq.String); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
	}
	if dayOfMonth.Valid {
		tx.RecurringDayOfMonth = int(dayOfMonth.Int64)
	}
	if pairID.Valid {
		tx.PairID = pairID.String
	}
	return tx, nil
}
