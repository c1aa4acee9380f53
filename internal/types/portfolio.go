package types

import "time"

// ItemType classifies a portfolio item
type ItemType string

const (
	ItemTypeProject  ItemType = "project"
	ItemTypePaper    ItemType = "paper"
	ItemTypeWork     ItemType = "work"
	ItemTypeCert     ItemType = "cert"
	ItemTypeAward    ItemType = "award"
	ItemTypeActivity ItemType = "activity"
	ItemTypeOther    ItemType = "other"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeProject, ItemTypePaper, ItemTypeWork, ItemTypeCert,
		ItemTypeAward, ItemTypeActivity, ItemTypeOther:
		return true
	}
	return false
}

// Visibility controls whether a portfolio item is shared
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// PortfolioItem is one unit of a candidate's experience
type PortfolioItem struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Type       ItemType   `json:"type"`
	Title      string     `json:"title"`
	Org        string     `json:"org,omitempty"`
	DateStart  string     `json:"date_start,omitempty"`
	DateEnd    string     `json:"date_end,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	Bullets    []string   `json:"bullets,omitempty"`
	Links      []string   `json:"links,omitempty"`
	SkillIDs   []string   `json:"skill_ids,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Visibility Visibility `json:"visibility,omitempty"`
	Priority   int        `json:"priority"`
	CreatedAt  time.Time  `json:"created_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at,omitempty"`
}

// LegacyProject is the older, flatter project record kept for users
// who have not migrated to portfolio items.
type LegacyProject struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// ConfirmedSkillSet is a user's confirmation of skills they actually have.
// The most recent record for a user wins.
type ConfirmedSkillSet struct {
	UserID    string    `json:"user_id"`
	SkillIDs  []string  `json:"skill_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// Set returns the confirmed ids as a lookup set.
func (c *ConfirmedSkillSet) Set() map[string]bool {
	out := make(map[string]bool)
	if c == nil {
		return out
	}
	for _, id := range c.SkillIDs {
		out[id] = true
	}
	return out
}
