// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/budgetguru/backend/internal/models"
)

// ErrNotFound is wrapped by store implementations when a referenced record
// does not exist. Check with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations the services depend on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, ...)
// without changing the service layer.
type Store interface {
	// CreateGroup persists a new group with its profiles, populating IDs and
	// timestamps.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group and its ordered profiles.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups with their profiles.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// UpdateGroup updates a group's name, category and profile set. Profiles
	// carrying an ID are updated in place; profiles without one are added;
	// existing profiles absent from the set are deleted with their dependent
	// records.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and everything belonging to it.
	DeleteGroup(ctx context.Context, groupID string) error

	// DeleteProfile removes one profile from a group, cascading to its
	// transactions, budgets and assets.
	DeleteProfile(ctx context.Context, groupID, profileID string) error

	// CreateTransaction persists a new transaction, populating ID and
	// timestamp.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// UpdateTransaction overwrites a transaction's editable fields.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, id string) error

	// ListTransactions retrieves a group's transactions newest first.
	// An empty profileID returns the whole group's.
	ListTransactions(ctx context.Context, groupID, profileID string) ([]models.Transaction, error)

	// CreateSettlementPair writes both halves of a settlement atomically:
	// either both rows are committed or neither is.
	CreateSettlementPair(ctx context.Context, paid, received *models.Transaction) error

	// SumMonthlyExpenses totals expense transactions per category within the
	// inclusive date range. An empty profileID aggregates the whole group.
	SumMonthlyExpenses(ctx context.Context, groupID, profileID, firstDay, lastDay string) (map[string]float64, error)

	// ReplaceBudgets deletes all of a profile's budgets and inserts the given
	// set in a single transaction.
	ReplaceBudgets(ctx context.Context, profileID, groupID string, budgets []models.Budget) ([]models.Budget, error)

	// ListBudgetsByProfile retrieves a profile's budgets.
	ListBudgetsByProfile(ctx context.Context, profileID string) ([]models.Budget, error)

	// ListBudgetsByGroup retrieves all budgets in a group.
	ListBudgetsByGroup(ctx context.Context, groupID string) ([]models.Budget, error)

	// CreateAsset persists a new asset, populating ID and timestamps.
	CreateAsset(ctx context.Context, asset *models.Asset) error

	// GetAsset retrieves an asset by ID.
	GetAsset(ctx context.Context, id string) (*models.Asset, error)

	// ListAssets retrieves a group's assets; an empty profileID returns the
	// whole group's.
	ListAssets(ctx context.Context, groupID, profileID string) ([]models.Asset, error)

	// UpdateAsset overwrites an asset's fields.
	UpdateAsset(ctx context.Context, asset *models.Asset) error

	// DeleteAsset removes an asset by ID, unlinking any transactions that
	// reference it.
	DeleteAsset(ctx context.Context, id string) error

	// ApplyDepreciation conditionally writes a recomputed current value,
	// keyed on the previously observed last-depreciation date. Returns false
	// without writing when another request already advanced the asset.
	ApplyDepreciation(ctx context.Context, assetID string, newValue float64, newLastDate, prevLastDate string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
