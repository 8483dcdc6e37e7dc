package models

import "fmt"

// AssetType classifies a depreciable asset.
type AssetType string

const (
	AssetVehicle     AssetType = "Vehicle"
	AssetProperty    AssetType = "Property"
	AssetElectronics AssetType = "Electronics"
	AssetInvestment  AssetType = "Investment"
	AssetOther       AssetType = "Other"
)

// ParseAssetType validates a raw asset type string.
func ParseAssetType(s string) (AssetType, error) {
	switch t := AssetType(s); t {
	case AssetVehicle, AssetProperty, AssetElectronics, AssetInvestment, AssetOther:
		return t, nil
	}
	return "", fmt.Errorf("invalid asset type: %q", s)
}

// Asset is a depreciable item owned by a profile.
//
// CurrentValue is derived: it always equals InitialValue with one year of
// compound decay applied per whole year elapsed, floored at zero. Reads apply
// any outstanding years incrementally (relative to LastDepreciationDate) and
// persist the result; updates recompute from scratch.
type Asset struct {
	// ID is the unique identifier for the asset (UUID format).
	ID string

	// ProfileID is the owning profile.
	ProfileID string

	// GroupID is the owning group.
	GroupID string

	// Name is the display name of the asset.
	Name string

	// Type classifies the asset.
	Type AssetType

	// InitialValue is the purchase value, > 0.
	InitialValue float64

	// CurrentValue is the depreciated value, >= 0.
	CurrentValue float64

	// PurchaseDate is the purchase date in YYYY-MM-DD form.
	PurchaseDate string

	// DepreciationRate is the annual depreciation percentage, 0-100.
	DepreciationRate float64

	// LastDepreciationDate is the date depreciation was last applied, in
	// YYYY-MM-DD form. Empty means depreciation has never been applied and
	// the purchase date is used as the baseline.
	LastDepreciationDate string

	// CreatedAt is the Unix timestamp when the asset was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last mutation.
	UpdatedAt int64
}
