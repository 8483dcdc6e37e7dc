package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/budgetguru/backend/internal/storage/sqlite"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	mux := http.NewServeMux()
	NewServer(store).Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if out != nil && rec.Code < 400 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestHealthz(t *testing.T) {
	mux := newTestMux(t)
	rec := doJSON(t, mux, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExpenseSplitFlow(t *testing.T) {
	mux := newTestMux(t)

	var group groupJSON
	rec := doJSON(t, mux, http.MethodPost, "/api/groups", groupJSON{
		Name:     "Flat 4B",
		Category: "roommates",
		Profiles: []profileJSON{{Name: "Alice"}, {Name: "Bob"}},
	}, &group)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, group.ID)
	require.Len(t, group.Profiles, 2)
	alice, bob := group.Profiles[0], group.Profiles[1]

	var tx transactionJSON
	rec = doJSON(t, mux, http.MethodPost, "/api/transactions", transactionJSON{
		ProfileID:   alice.ID,
		GroupID:     group.ID,
		Amount:      100,
		Date:        "2026-09-01",
		Description: "Groceries run",
		Category:    "Groceries",
		Kind:        "expense",
	}, &tx)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, tx.ID)

	var summary splitSummaryJSON
	rec = doJSON(t, mux, http.MethodGet, "/api/expense-split/"+group.ID, nil, &summary)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 100.0, summary.TotalExpense)
	require.Equal(t, 50.0, summary.PerPersonShare)
	require.Len(t, summary.Settlements, 1)
	require.Equal(t, settlementJSON{From: "Bob", To: "Alice", Amount: 50}, summary.Settlements[0])

	rec = doJSON(t, mux, http.MethodPost, "/api/settle-expense", map[string]any{
		"fromProfileId": bob.ID,
		"toProfileId":   alice.ID,
		"groupId":       group.ID,
		"amount":        50,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/expense-split/"+group.ID, nil, &summary)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, summary.Settlements)
	for _, b := range summary.Balances {
		require.Zero(t, b.Balance)
	}

	// Both halves of the settlement are visible as transactions.
	var transactions []transactionJSON
	rec = doJSON(t, mux, http.MethodGet, "/api/transactions?groupId="+group.ID, nil, &transactions)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, transactions, 3)
}

func TestErrorMapping(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/expense-split/missing", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/groups", groupJSON{
		Name:     "G",
		Category: "club",
		Profiles: []profileJSON{{Name: "A"}},
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/settle-expense", strings.NewReader("{not json"))
	raw := httptest.NewRecorder()
	mux.ServeHTTP(raw, req)
	require.Equal(t, http.StatusBadRequest, raw.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(raw.Body).Decode(&body))
	require.NotEmpty(t, body["error"])
}

func TestBudgetEndpoints(t *testing.T) {
	mux := newTestMux(t)

	var group groupJSON
	rec := doJSON(t, mux, http.MethodPost, "/api/groups", groupJSON{
		Name:     "Solo",
		Category: "personal",
		Profiles: []profileJSON{{Name: "Alice"}},
	}, &group)
	require.Equal(t, http.StatusCreated, rec.Code)
	alice := group.Profiles[0]

	var saved []budgetJSON
	rec = doJSON(t, mux, http.MethodPost, "/api/budgets", map[string]any{
		"profileId": alice.ID,
		"groupId":   group.ID,
		"budgets":   []budgetJSON{{Category: "Groceries", Amount: 500}},
	}, &saved)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, saved, 1)

	var reports []budgetReportJSON
	rec = doJSON(t, mux, http.MethodGet,
		"/api/budgets?groupId="+group.ID+"&profileId="+alice.ID, nil, &reports)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, reports, 1)
	require.Equal(t, "Groceries", reports[0].Category)
	require.Equal(t, "On Track", reports[0].Status)
}

func TestAssetEndpoints(t *testing.T) {
	mux := newTestMux(t)

	var group groupJSON
	rec := doJSON(t, mux, http.MethodPost, "/api/groups", groupJSON{
		Name:     "Solo",
		Category: "personal",
		Profiles: []profileJSON{{Name: "Alice"}},
	}, &group)
	require.Equal(t, http.StatusCreated, rec.Code)
	alice := group.Profiles[0]

	var asset assetJSON
	rec = doJSON(t, mux, http.MethodPost, "/api/assets", assetJSON{
		ProfileID:        alice.ID,
		GroupID:          group.ID,
		Name:             "Car",
		Type:             "Vehicle",
		InitialValue:     9000,
		PurchaseDate:     "2024-06-15",
		DepreciationRate: 10,
	}, &asset)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, asset.ID)
	require.Equal(t, 9000.0, asset.CurrentValue)

	var assets []assetJSON
	rec = doJSON(t, mux, http.MethodGet, "/api/assets?groupId="+group.ID+"&profileId="+alice.ID, nil, &assets)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, assets, 1)

	rec = doJSON(t, mux, http.MethodDelete, "/api/assets/"+asset.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/api/assets/"+asset.ID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
