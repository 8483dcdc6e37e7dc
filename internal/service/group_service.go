package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
	"github.com/budgetguru/backend/internal/storage"
)

// GroupService manages groups and their member profiles.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// Create persists a new group. A group must be born with at least one
// profile.
func (s *GroupService) Create(ctx context.Context, group *models.Group) error {
	if err := validateGroup(group); err != nil {
		return err
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return err
	}
	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "members", len(group.Profiles))
	return nil
}

// Get retrieves a group with its profiles.
func (s *GroupService) Get(ctx context.Context, groupID string) (*models.Group, error) {
	if groupID == "" {
		return nil, apperror.InvalidInput("group id is required")
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperror.NotFound("group not found: %s", groupID)
		}
		return nil, err
	}
	return group, nil
}

// List retrieves all groups.
func (s *GroupService) List(ctx context.Context) ([]*models.Group, error) {
	return s.store.ListGroups(ctx)
}

// Update overwrites a group's name, category and profile set. Profiles
// dropped from the set are deleted along with their transactions, budgets
// and assets.
func (s *GroupService) Update(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		return apperror.InvalidInput("group id is required")
	}
	if err := validateGroup(group); err != nil {
		return err
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("group not found: %s", group.ID)
		}
		return err
	}
	slog.Info("Group updated", "group_id", group.ID)
	return nil
}

// Delete removes a group with all of its profiles, transactions, budgets and
// assets.
func (s *GroupService) Delete(ctx context.Context, groupID string) error {
	if groupID == "" {
		return apperror.InvalidInput("group id is required")
	}
	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("group not found: %s", groupID)
		}
		return err
	}
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// RemoveProfile deletes one profile and everything it owns. The last profile
// cannot be removed; delete the group instead.
func (s *GroupService) RemoveProfile(ctx context.Context, groupID, profileID string) error {
	if groupID == "" || profileID == "" {
		return apperror.InvalidInput("group id and profile id are required")
	}
	group, err := s.Get(ctx, groupID)
	if err != nil {
		return err
	}
	if group.ProfileByID(profileID) == nil {
		return apperror.NotFound("profile %s not found in group %s", profileID, groupID)
	}
	if len(group.Profiles) == 1 {
		return apperror.InvalidInput("cannot remove the last profile; delete the group instead")
	}
	if err := s.store.DeleteProfile(ctx, groupID, profileID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperror.NotFound("profile %s not found in group %s", profileID, groupID)
		}
		return err
	}
	slog.Info("Profile removed", "group_id", groupID, "profile_id", profileID)
	return nil
}

func validateGroup(group *models.Group) error {
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return apperror.InvalidInput("group name is required")
	}
	if _, err := models.ParseGroupCategory(string(group.Category)); err != nil {
		return apperror.InvalidInput("%v", err)
	}
	if len(group.Profiles) == 0 {
		return apperror.InvalidInput("a group needs at least one profile")
	}
	for i := range group.Profiles {
		group.Profiles[i].Name = strings.TrimSpace(group.Profiles[i].Name)
		if group.Profiles[i].Name == "" {
			return apperror.InvalidInput("each profile must have a name")
		}
	}
	return nil
}
