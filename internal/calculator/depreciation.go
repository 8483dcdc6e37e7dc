package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/money"
)

// DateLayout is the date-only format used across the domain.
const DateLayout = "2006-01-02"

// RecalcMode selects how an asset's current value is recomputed.
type RecalcMode int

const (
	// ModeFull recomputes from the initial value and purchase date.
	// Used on explicit asset updates.
	ModeFull RecalcMode = iota

	// ModeIncremental applies only the years elapsed since the last applied
	// depreciation to the current value. Used on every asset read.
	ModeIncremental
)

// Recalculate returns a copy of asset with its current value brought up to
// asOf, and reports whether anything changed (callers persist only on
// change).
//
// Depreciation compounds once per whole calendar year elapsed; partial years
// never depreciate. Values floor at zero.
//
// Full mode restarts from InitialValue and the purchase date, and always
// resets LastDepreciationDate to asOf, even when no whole year has elapsed.
// Incremental mode decays CurrentValue relative to LastDepreciationDate
// (purchase date when unset); with no whole year elapsed or a zero rate it is
// a no-op, not an error.
//
// A missing or unparseable baseline date is a data-integrity failure: the
// engine never substitutes "today", which would fabricate depreciation.
func Recalculate(asset models.Asset, asOf time.Time, mode RecalcMode) (models.Asset, bool, error) {
	if asset.PurchaseDate == "" {
		return asset, false, fmt.Errorf("asset %s has no purchase date", asset.ID)
	}
	purchase, err := time.Parse(DateLayout, asset.PurchaseDate)
	if err != nil {
		return asset, false, fmt.Errorf("asset %s has malformed purchase date %q: %w", asset.ID, asset.PurchaseDate, err)
	}

	switch mode {
	case ModeFull:
		years := wholeYearsBetween(purchase, asOf)
		value := asset.InitialValue
		if asset.DepreciationRate > 0 && years > 0 {
			for i := 0; i < years; i++ {
				value *= 1 - asset.DepreciationRate/100
			}
		}
		asset.CurrentValue = money.Round2(math.Max(0, value))
		asset.LastDepreciationDate = asOf.Format(DateLayout)
		return asset, true, nil

	case ModeIncremental:
		baseline := purchase
		if asset.LastDepreciationDate != "" {
			baseline, err = time.Parse(DateLayout, asset.LastDepreciationDate)
			if err != nil {
				return asset, false, fmt.Errorf("asset %s has malformed last depreciation date %q: %w", asset.ID, asset.LastDepreciationDate, err)
			}
		}
		years := wholeYearsBetween(baseline, asOf)
		if asset.DepreciationRate <= 0 || years <= 0 {
			return asset, false, nil
		}
		value := asset.CurrentValue
		for i := 0; i < years; i++ {
			value *= 1 - asset.DepreciationRate/100
		}
		asset.CurrentValue = money.Round2(math.Max(0, value))
		asset.LastDepreciationDate = asOf.Format(DateLayout)
		return asset, true, nil
	}

	return asset, false, fmt.Errorf("unknown recalculation mode: %d", mode)
}

// wholeYearsBetween returns the number of whole calendar years from "from" to
// "to": the count of anniversaries of "from" that have passed. Negative when
// "to" precedes "from".
func wholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := time.Date(from.Year()+years, from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(cutoff) {
		years--
	}
	return years
}
