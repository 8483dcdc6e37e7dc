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

// CreateGroup persists a new group with its profiles.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, category, created_at) VALUES (?, ?, ?, ?)",
		group.ID, group.Name, string(group.Category), group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i := range group.Profiles {
		p := &group.Profiles[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if p.Color == "" {
			p.Color = models.DefaultProfileColor
		}
		if p.CreatedAt == 0 {
			p.CreatedAt = group.CreatedAt
		}
		p.GroupID = group.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO profiles (id, group_id, name, color, position, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, group.ID, p.Name, p.Color, i, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID, including its ordered profiles.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	var category string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, category, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &category, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	group.Category, err = models.ParseGroupCategory(category)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", groupID, err)
	}

	group.Profiles, err = s.listProfiles(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// ListGroups retrieves all groups with their profiles.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, created_at FROM groups ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		var category string
		if err := rows.Scan(&group.ID, &group.Name, &category, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		if group.Category, err = models.ParseGroupCategory(category); err != nil {
			return nil, fmt.Errorf("group %s: %w", group.ID, err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, group := range groups {
		if group.Profiles, err = s.listProfiles(ctx, group.ID); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// UpdateGroup updates a group's name, category and profile set.
// Profiles with IDs are updated, new ones inserted, and profiles missing from
// the set deleted (cascading to their transactions, budgets and assets).
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE groups SET name = ?, category = ? WHERE id = ?",
		group.Name, string(group.Category), group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check group update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("group %s: %w", group.ID, storage.ErrNotFound)
	}

	kept := make(map[string]bool, len(group.Profiles))
	now := time.Now().Unix()
	for i := range group.Profiles {
		p := &group.Profiles[i]
		p.GroupID = group.ID
		if p.Color == "" {
			p.Color = models.DefaultProfileColor
		}
		if p.ID == "" {
			p.ID = uuid.New().String()
			p.CreatedAt = now
			_, err = tx.ExecContext(ctx,
				"INSERT INTO profiles (id, group_id, name, color, position, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				p.ID, group.ID, p.Name, p.Color, i, p.CreatedAt,
			)
		} else {
			_, err = tx.ExecContext(ctx,
				"UPDATE profiles SET name = ?, color = ?, position = ? WHERE id = ? AND group_id = ?",
				p.Name, p.Color, i, p.ID, group.ID,
			)
		}
		if err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
		kept[p.ID] = true
	}

	// Delete profiles no longer in the set.
	rows, err := tx.QueryContext(ctx, "SELECT id FROM profiles WHERE group_id = ?", group.ID)
	if err != nil {
		return fmt.Errorf("failed to list existing profiles: %w", err)
	}
	var toDelete []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan profile id: %w", err)
		}
		if !kept[id] {
			toDelete = append(toDelete, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate profiles: %w", err)
	}
	for _, id := range toDelete {
		if _, err := tx.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteGroup removes a group; cascades take its profiles, transactions,
// budgets and assets with it.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check group delete: %w", err)
	} else if n == 0 {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	return nil
}

// DeleteProfile removes one profile from a group; cascades take its
// transactions, budgets and assets.
func (s *SQLiteStore) DeleteProfile(ctx context.Context, groupID, profileID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM profiles WHERE id = ? AND group_id = ?", profileID, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check profile delete: %w", err)
	} else if n == 0 {
		return fmt.Errorf("profile %s in group %s: %w", profileID, groupID, storage.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) listProfiles(ctx context.Context, groupID string) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_id, name, color, created_at FROM profiles WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.GroupID, &p.Name, &p.Color, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}
