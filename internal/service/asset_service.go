package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/calculator"
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/storage"
)

// AssetService manages depreciable assets.
//
// Listing assets is a documented read-triggers-write: any whole years of
// depreciation outstanding are applied and persisted before the assets are
// returned, because downstream computations rely on a correct current value.
type AssetService struct {
	store storage.Store
	now   func() time.Time
}

// NewAssetService creates an AssetService with the given storage backend.
func NewAssetService(store storage.Store) *AssetService {
	return &AssetService{store: store, now: time.Now}
}

// Create persists a new asset. The current value always starts at the
// initial value; depreciation only accrues from the purchase date onward.
func (s *AssetService) Create(ctx context.Context, asset *models.Asset) error {
	if err := s.validate(asset); err != nil {
		return err
	}
	asset.CurrentValue = asset.InitialValue
	if asset.LastDepreciationDate == "" {
		asset.LastDepreciationDate = asset.PurchaseDate
	}
	if err := s.store.CreateAsset(ctx, asset); err != nil {
		return err
	}
	slog.Info("Asset created", "asset_id", asset.ID, "name", asset.Name, "type", asset.Type)
	return nil
}

// List returns a group's assets (optionally one profile's) with incremental
// depreciation applied and persisted.
//
// The write is guarded by the last-depreciation date observed at read time;
// when a concurrent request wins the race this request re-reads the asset
// instead of double-applying a year.
func (s *AssetService) List(ctx context.Context, groupID, profileID string) ([]models.Asset, error) {
	if groupID == "" {
		return nil, apperror.InvalidInput("group id is required")
	}
	assets, err := s.store.ListAssets(ctx, groupID, profileID)
	if err != nil {
		return nil, err
	}

	asOf := s.now()
	for i := range assets {
		updated, changed, err := calculator.Recalculate(assets[i], asOf, calculator.ModeIncremental)
		if err != nil {
			return nil, apperror.DataIntegrity(err, "asset %s has invalid depreciation dates", assets[i].ID)
		}
		if !changed {
			continue
		}

		applied, err := s.store.ApplyDepreciation(ctx, updated.ID,
			updated.CurrentValue, updated.LastDepreciationDate, assets[i].LastDepreciationDate)
		if err != nil {
			return nil, err
		}
		if !applied {
			// Lost the race; take whatever the winner wrote.
			fresh, err := s.store.GetAsset(ctx, updated.ID)
			if err != nil {
				return nil, err
			}
			assets[i] = *fresh
			continue
		}
		slog.Info("Depreciation applied",
			"asset_id", updated.ID,
			"current_value", updated.CurrentValue,
			"as_of", updated.LastDepreciationDate,
		)
		assets[i] = updated
	}
	return assets, nil
}

// Update overwrites an asset's fields and recalculates its current value from
// scratch: initial value decayed once per whole year since purchase. The
// last-depreciation date is realigned to now even when no year has elapsed.
func (s *AssetService) Update(ctx context.Context, asset *models.Asset) error {
	if asset.ID == "" {
		return apperror.InvalidInput("asset id is required")
	}
	if err := s.validate(asset); err != nil {
		return err
	}
	if _, err := s.store.GetAsset(ctx, asset.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("asset not found: %s", asset.ID)
		}
		return err
	}

	updated, _, err := calculator.Recalculate(*asset, s.now(), calculator.ModeFull)
	if err != nil {
		return apperror.DataIntegrity(err, "asset %s has invalid depreciation dates", asset.ID)
	}
	*asset = updated

	if err := s.store.UpdateAsset(ctx, asset); err != nil {
		return err
	}
	slog.Info("Asset updated", "asset_id", asset.ID, "current_value", asset.CurrentValue)
	return nil
}

// Delete removes an asset; transactions that referenced it are unlinked, not
// deleted.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperror.InvalidInput("asset id is required")
	}
	if err := s.store.DeleteAsset(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("asset not found: %s", id)
		}
		return err
	}
	slog.Info("Asset deleted", "asset_id", id)
	return nil
}

func (s *AssetService) validate(asset *models.Asset) error {
	if asset.ProfileID == "" || asset.GroupID == "" {
		return apperror.InvalidInput("profile id and group id are required")
	}
	if asset.Name == "" {
		return apperror.InvalidInput("asset name is required")
	}
	if _, err := models.ParseAssetType(string(asset.Type)); err != nil {
		return apperror.InvalidInput("%v", err)
	}
	if asset.InitialValue <= 0 {
		return apperror.InvalidInput("initial value must be positive")
	}
	if asset.DepreciationRate < 0 || asset.DepreciationRate > 100 {
		return apperror.InvalidInput("depreciation rate must be between 0 and 100")
	}
	if _, err := time.Parse(calculator.DateLayout, asset.PurchaseDate); err != nil {
		return apperror.InvalidInput("purchase date must be YYYY-MM-DD")
	}
	return nil
}
