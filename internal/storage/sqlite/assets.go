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

const assetColumns = `id, profile_id, group_id, name, type, initial_value, current_value,
	purchase_date, depreciation_rate, last_depreciation_date, created_at, updated_at`

// CreateAsset persists a new asset to the database.
func (s *SQLiteStore) CreateAsset(ctx context.Context, asset *models.Asset) error {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if asset.CreatedAt == 0 {
		asset.CreatedAt = now
	}
	asset.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assets (`+assetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.ID, asset.ProfileID, asset.GroupID, asset.Name, string(asset.Type),
		asset.InitialValue, asset.CurrentValue, asset.PurchaseDate,
		asset.DepreciationRate, nullable(asset.LastDepreciationDate),
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

// GetAsset retrieves an asset by ID.
func (s *SQLiteStore) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+assetColumns+" FROM assets WHERE id = ?", id)
	asset, err := scanAsset(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("asset %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// ListAssets retrieves a group's assets; an empty profileID returns the whole
// group's.
func (s *SQLiteStore) ListAssets(ctx context.Context, groupID, profileID string) ([]models.Asset, error) {
	query := "SELECT " + assetColumns + " FROM assets WHERE group_id = ?"
	args := []any{groupID}
	if profileID != "" {
		query += " AND profile_id = ?"
		args = append(args, profileID)
	}
	query += " ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		asset, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}
	return assets, nil
}

// UpdateAsset overwrites an asset's fields.
func (s *SQLiteStore) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	asset.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE assets
		 SET name = ?, type = ?, initial_value = ?, current_value = ?, purchase_date = ?,
		     depreciation_rate = ?, last_depreciation_date = ?, updated_at = ?
		 WHERE id = ?`,
		asset.Name, string(asset.Type), asset.InitialValue, asset.CurrentValue,
		asset.PurchaseDate, asset.DepreciationRate, nullable(asset.LastDepreciationDate),
		asset.UpdatedAt, asset.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check asset update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("asset %s: %w", asset.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteAsset removes an asset; linked transactions keep their rows with the
// asset reference cleared (ON DELETE SET NULL).
func (s *SQLiteStore) DeleteAsset(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check asset delete: %w", err)
	} else if n == 0 {
		return fmt.Errorf("asset %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ApplyDepreciation writes a recomputed current value only if the asset's
// last-depreciation date still matches what the caller read. Under concurrent
// reads of the same asset exactly one writer wins; the losers report false
// and skip their write, preventing a double-applied year.
func (s *SQLiteStore) ApplyDepreciation(ctx context.Context, assetID string, newValue float64, newLastDate, prevLastDate string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE assets
		 SET current_value = ?, last_depreciation_date = ?, updated_at = ?
		 WHERE id = ? AND IFNULL(last_depreciation_date, '') = ?`,
		newValue, newLastDate, time.Now().Unix(), assetID, prevLastDate,
	)
	if err != nil {
		return false, fmt.Errorf("failed to apply depreciation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check depreciation update: %w", err)
	}
	return n > 0, nil
}

// scanAsset reads one row in assetColumns order.
func scanAsset(scan func(dest ...any) error) (*models.Asset, error) {
	asset := &models.Asset{}
	var assetType string
	var lastDep sql.NullString

	err := scan(&asset.ID, &asset.ProfileID, &asset.GroupID, &asset.Name, &assetType,
		&asset.InitialValue, &asset.CurrentValue, &asset.PurchaseDate,
		&asset.DepreciationRate, &lastDep, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if asset.Type, err = models.ParseAssetType(assetType); err != nil {
		return nil, fmt.Errorf("asset %s: %w", asset.ID, err)
	}
	if lastDep.Valid {
		asset.LastDepreciationDate = lastDep.String
	}
	return asset, nil
}
