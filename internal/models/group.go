package models

import "fmt"

// GroupCategory classifies what kind of household a group is.
type GroupCategory string

const (
	GroupFamily    GroupCategory = "family"
	GroupRoommates GroupCategory = "roommates"
	GroupPersonal  GroupCategory = "personal"
	GroupFriends   GroupCategory = "friends"
	GroupOther     GroupCategory = "other"
)

// ParseGroupCategory validates a raw category string.
func ParseGroupCategory(s string) (GroupCategory, error) {
	switch c := GroupCategory(s); c {
	case GroupFamily, GroupRoommates, GroupPersonal, GroupFriends, GroupOther:
		return c, nil
	}
	return "", fmt.Errorf("invalid group category: %q", s)
}

// DefaultProfileColor is assigned when a profile is created without a color tag.
const DefaultProfileColor = "#3B82F6"

// Profile is a member of a group. Profiles only exist inside their parent
// group; deleting a profile cascades to its transactions, budgets and assets.
type Profile struct {
	// ID is the unique identifier for the profile (UUID format).
	ID string

	// GroupID is the group this profile belongs to.
	GroupID string

	// Name is the display name of the member.
	Name string

	// Color is the hex color tag used to distinguish members.
	Color string

	// CreatedAt is the Unix timestamp when the profile was created.
	CreatedAt int64
}

// Group is a named collection of profiles sharing expenses.
// A group always contains at least one profile; the last profile can only be
// removed by deleting the group itself.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Flat 4B").
	Name string

	// Category classifies the group (family, roommates, ...).
	Category GroupCategory

	// Profiles is the ordered member list.
	Profiles []Profile

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// ProfileByID returns the member with the given ID, or nil if absent.
func (g *Group) ProfileByID(id string) *Profile {
	for i := range g.Profiles {
		if g.Profiles[i].ID == id {
			return &g.Profiles[i]
		}
	}
	return nil
}
