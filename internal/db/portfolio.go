package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ListPortfolioItems returns a user's portfolio items in creation order
func (db *DB) ListPortfolioItems(ctx context.Context, userID string) ([]types.PortfolioItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id::text, user_id, type, title, COALESCE(org, ''), COALESCE(date_start, ''),
		        COALESCE(date_end, ''), COALESCE(summary, ''), bullets, links, skill_ids, tags,
		        visibility, priority, created_at, updated_at
		 FROM portfolio_items WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	defer rows.Close()

	var items []types.PortfolioItem
	for rows.Next() {
		var item types.PortfolioItem
		var bulletsJSON, linksJSON []byte
		if err := rows.Scan(&item.ID, &item.UserID, &item.Type, &item.Title, &item.Org,
			&item.DateStart, &item.DateEnd, &item.Summary, &bulletsJSON, &linksJSON,
			&item.SkillIDs, &item.Tags, &item.Visibility, &item.Priority,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		// Parse JSONB fields
		if bulletsJSON != nil {
			_ = json.Unmarshal(bulletsJSON, &item.Bullets)
		}
		if linksJSON != nil {
			_ = json.Unmarshal(linksJSON, &item.Links)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

// CreatePortfolioItem inserts an item and fills in its id and timestamps
func (db *DB) CreatePortfolioItem(ctx context.Context, item *types.PortfolioItem) error {
	bulletsJSON, err := json.Marshal(emptyIfNil(item.Bullets))
	if err != nil {
		return fmt.Errorf("failed to marshal bullets: %w", err)
	}
	linksJSON, err := json.Marshal(emptyIfNil(item.Links))
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}
	itemType := item.Type
	if itemType == "" {
		itemType = types.ItemTypeProject
	}
	visibility := item.Visibility
	if visibility == "" {
		visibility = types.VisibilityPrivate
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO portfolio_items (user_id, type, title, org, date_start, date_end, summary,
		                              bullets, links, skill_ids, tags, visibility, priority)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
		         $8, $9, $10, $11, $12, $13)
		 RETURNING id::text, created_at, updated_at`,
		item.UserID, itemType, item.Title, item.Org, item.DateStart, item.DateEnd, item.Summary,
		bulletsJSON, linksJSON, emptyIfNil(item.SkillIDs), emptyIfNil(item.Tags), visibility, item.Priority,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}
	item.Type = itemType
	item.Visibility = visibility
	return nil
}

// ListLegacyProjects returns a user's legacy projects in creation order
func (db *DB) ListLegacyProjects(ctx context.Context, userID string) ([]types.LegacyProject, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id::text, user_id, title, COALESCE(description, ''), tags, created_at, updated_at
		 FROM projects WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.LegacyProject
	for rows.Next() {
		var p types.LegacyProject
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Tags,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateLegacyProject inserts a legacy project record
func (db *DB) CreateLegacyProject(ctx context.Context, p *types.LegacyProject) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (user_id, title, description, tags)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id::text, created_at, updated_at`,
		p.UserID, p.Title, p.Description, emptyIfNil(p.Tags),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// LatestConfirmedSkills returns the user's most recent skill confirmation, or nil
func (db *DB) LatestConfirmedSkills(ctx context.Context, userID string) (*types.ConfirmedSkillSet, error) {
	var set types.ConfirmedSkillSet
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, skill_ids, created_at
		 FROM skill_confirmations WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&set.UserID, &set.SkillIDs, &set.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get confirmed skills: %w", err)
	}
	return &set, nil
}

// SaveConfirmedSkills records a new skill confirmation for a user
func (db *DB) SaveConfirmedSkills(ctx context.Context, set *types.ConfirmedSkillSet) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skill_confirmations (user_id, skill_ids)
		 VALUES ($1, $2)
		 RETURNING created_at`,
		set.UserID, emptyIfNil(set.SkillIDs),
	).Scan(&set.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save confirmed skills: %w", err)
	}
	return nil
}
