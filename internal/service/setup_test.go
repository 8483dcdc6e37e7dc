package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/storage"
	"github.com/budgetguru/backend/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedGroup(t *testing.T, store storage.Store, names ...string) *models.Group {
	t.Helper()
	group := &models.Group{Name: "Household", Category: models.GroupRoommates}
	for _, name := range names {
		group.Profiles = append(group.Profiles, models.Profile{Name: name})
	}
	require.NoError(t, store.CreateGroup(context.Background(), group))
	return group
}

func seedExpense(t *testing.T, store storage.Store, group *models.Group, profileID string, amount float64, date, category string) {
	t.Helper()
	require.NoError(t, store.CreateTransaction(context.Background(), &models.Transaction{
		ProfileID:   profileID,
		GroupID:     group.ID,
		Amount:      amount,
		Date:        date,
		Description: category,
		Category:    category,
		Kind:        models.KindExpense,
	}))
}

func fixedNow(date string) func() time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}
