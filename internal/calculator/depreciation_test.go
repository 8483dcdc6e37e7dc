package calculator

import (
	"testing"
	"time"

	"github.com/budgetguru/backend/internal/models"
)

func date(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecalculateFull(t *testing.T) {
	tests := []struct {
		name      string
		asset     models.Asset
		asOf      time.Time
		wantValue float64
		wantErr   bool
	}{
		{
			name: "two whole years compound",
			asset: models.Asset{
				InitialValue:     100000,
				CurrentValue:     100000,
				DepreciationRate: 10,
				PurchaseDate:     "2024-06-15",
			},
			asOf:      date("2026-06-20"),
			wantValue: 81000,
		},
		{
			name: "partial year keeps the initial value",
			asset: models.Asset{
				InitialValue:     5000,
				CurrentValue:     5000,
				DepreciationRate: 20,
				PurchaseDate:     "2026-01-10",
			},
			asOf:      date("2026-11-30"),
			wantValue: 5000,
		},
		{
			name: "anniversary day counts as a whole year",
			asset: models.Asset{
				InitialValue:     1000,
				CurrentValue:     1000,
				DepreciationRate: 50,
				PurchaseDate:     "2025-03-01",
			},
			asOf:      date("2026-03-01"),
			wantValue: 500,
		},
		{
			name: "zero rate never depreciates",
			asset: models.Asset{
				InitialValue:     750,
				CurrentValue:     750,
				DepreciationRate: 0,
				PurchaseDate:     "2020-01-01",
			},
			asOf:      date("2026-01-01"),
			wantValue: 750,
		},
		{
			name: "full recalc discards a stale current value",
			asset: models.Asset{
				InitialValue:     100000,
				CurrentValue:     12.34,
				DepreciationRate: 10,
				PurchaseDate:     "2025-06-15",
			},
			asOf:      date("2026-06-20"),
			wantValue: 90000,
		},
		{
			name: "value floors at zero",
			asset: models.Asset{
				InitialValue:     300,
				CurrentValue:     300,
				DepreciationRate: 100,
				PurchaseDate:     "2024-01-01",
			},
			asOf:      date("2026-01-02"),
			wantValue: 0,
		},
		{
			name: "missing purchase date",
			asset: models.Asset{
				InitialValue:     100,
				DepreciationRate: 10,
			},
			asOf:    date("2026-01-01"),
			wantErr: true,
		},
		{
			name: "malformed purchase date",
			asset: models.Asset{
				InitialValue:     100,
				DepreciationRate: 10,
				PurchaseDate:     "15/06/2024",
			},
			asOf:    date("2026-01-01"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed, err := Recalculate(tt.asset, tt.asOf, ModeFull)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Recalculate failed: %v", err)
			}
			if !changed {
				t.Error("full mode should always report a change")
			}
			if got.CurrentValue != tt.wantValue {
				t.Errorf("CurrentValue = %v, want %v", got.CurrentValue, tt.wantValue)
			}
			if want := tt.asOf.Format(DateLayout); got.LastDepreciationDate != want {
				t.Errorf("LastDepreciationDate = %q, want %q", got.LastDepreciationDate, want)
			}
		})
	}
}

func TestRecalculateIncremental(t *testing.T) {
	asset := models.Asset{
		InitialValue:         100000,
		CurrentValue:         90000,
		DepreciationRate:     10,
		PurchaseDate:         "2024-06-15",
		LastDepreciationDate: "2025-06-20",
	}

	got, changed, err := Recalculate(asset, date("2026-06-25"), ModeIncremental)
	if err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}
	if !changed {
		t.Fatal("expected a change after a whole year")
	}
	if got.CurrentValue != 81000 {
		t.Errorf("CurrentValue = %v, want 81000", got.CurrentValue)
	}
	if got.LastDepreciationDate != "2026-06-25" {
		t.Errorf("LastDepreciationDate = %q, want 2026-06-25", got.LastDepreciationDate)
	}

	// A second pass on the same day finds no whole year elapsed.
	again, changed, err := Recalculate(got, date("2026-06-25"), ModeIncremental)
	if err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}
	if changed {
		t.Error("no-op expected on the same day")
	}
	if again.CurrentValue != got.CurrentValue || again.LastDepreciationDate != got.LastDepreciationDate {
		t.Errorf("no-op mutated the asset: %+v", again)
	}
}

func TestRecalculateIncrementalFallsBackToPurchaseDate(t *testing.T) {
	asset := models.Asset{
		InitialValue:     2000,
		CurrentValue:     2000,
		DepreciationRate: 25,
		PurchaseDate:     "2025-01-01",
	}

	got, changed, err := Recalculate(asset, date("2026-02-01"), ModeIncremental)
	if err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}
	if !changed {
		t.Fatal("expected a change")
	}
	if got.CurrentValue != 1500 {
		t.Errorf("CurrentValue = %v, want 1500", got.CurrentValue)
	}
}

func TestRecalculateIncrementalMalformedLastDate(t *testing.T) {
	asset := models.Asset{
		InitialValue:         100,
		CurrentValue:         100,
		DepreciationRate:     10,
		PurchaseDate:         "2024-01-01",
		LastDepreciationDate: "yesterday",
	}
	if _, _, err := Recalculate(asset, date("2026-01-01"), ModeIncremental); err == nil {
		t.Fatal("expected error for malformed last depreciation date")
	}
}

func TestRecalculateValueNeverIncreases(t *testing.T) {
	asset := models.Asset{
		InitialValue:     100000,
		CurrentValue:     100000,
		DepreciationRate: 7.5,
		PurchaseDate:     "2020-02-29",
	}

	prev := asset.CurrentValue
	for year := 2020; year <= 2035; year++ {
		got, _, err := Recalculate(asset, date(time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).Format(DateLayout)), ModeFull)
		if err != nil {
			t.Fatalf("Recalculate failed for %d: %v", year, err)
		}
		if got.CurrentValue > prev {
			t.Fatalf("value rose from %v to %v in %d", prev, got.CurrentValue, year)
		}
		if got.CurrentValue < 0 {
			t.Fatalf("value went negative in %d: %v", year, got.CurrentValue)
		}
		prev = got.CurrentValue
	}
}

func TestWholeYearsBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-06-15", "2026-06-20", 2},
		{"2024-06-15", "2026-06-14", 1},
		{"2024-06-15", "2025-06-15", 1},
		{"2026-01-10", "2026-11-30", 0},
		{"2024-02-29", "2025-02-28", 0},
		{"2026-06-15", "2024-06-15", -2},
	}
	for _, tt := range tests {
		if got := wholeYearsBetween(date(tt.from), date(tt.to)); got != tt.want {
			t.Errorf("wholeYearsBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}
