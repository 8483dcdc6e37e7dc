package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
)

func TestGroupCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group := &models.Group{
		Name:     "  Flat 4B ",
		Category: models.GroupRoommates,
		Profiles: []models.Profile{{Name: " Alice "}, {Name: "Bob"}},
	}
	require.NoError(t, svc.Create(ctx, group))
	require.NotEmpty(t, group.ID)

	got, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	require.Equal(t, "Flat 4B", got.Name)
	require.Equal(t, "Alice", got.Profiles[0].Name)

	groups, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestGroupCreateValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	tests := []struct {
		name  string
		group *models.Group
	}{
		{"blank name", &models.Group{Name: "  ", Category: models.GroupFamily, Profiles: []models.Profile{{Name: "A"}}}},
		{"unknown category", &models.Group{Name: "G", Category: "club", Profiles: []models.Profile{{Name: "A"}}}},
		{"no profiles", &models.Group{Name: "G", Category: models.GroupFamily}},
		{"blank profile name", &models.Group{Name: "G", Category: models.GroupFamily, Profiles: []models.Profile{{Name: " "}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, tt.group)
			require.True(t, apperror.IsKind(err, apperror.KindInvalidInput), "got %v", err)
		})
	}
}

func TestGroupUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "Alice", "Bob")
	group.Name = "Renamed"
	group.Profiles = append(group.Profiles, models.Profile{Name: "Carol"})
	require.NoError(t, svc.Update(ctx, group))

	got, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Len(t, got.Profiles, 3)

	err = svc.Update(ctx, &models.Group{
		ID: "missing", Name: "G", Category: models.GroupOther,
		Profiles: []models.Profile{{Name: "A"}},
	})
	require.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}

func TestGroupRemoveProfile(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "Alice", "Bob")
	alice, bob := group.Profiles[0], group.Profiles[1]

	err := svc.RemoveProfile(ctx, group.ID, "missing")
	require.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)

	require.NoError(t, svc.RemoveProfile(ctx, group.ID, bob.ID))

	got, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, got.Profiles, 1)

	// The last member can only go by deleting the whole group.
	err = svc.RemoveProfile(ctx, group.ID, alice.ID)
	require.True(t, apperror.IsKind(err, apperror.KindInvalidInput), "got %v", err)

	require.NoError(t, svc.Delete(ctx, group.ID))
	_, err = svc.Get(ctx, group.ID)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
}
