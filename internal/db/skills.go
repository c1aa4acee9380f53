package db

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/types"
)

// ListSkillCatalog returns the whole skill catalog ordered by id
func (db *DB) ListSkillCatalog(ctx context.Context) ([]types.CatalogSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), aliases
		 FROM skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var catalog []types.CatalogSkill
	for rows.Next() {
		var s types.CatalogSkill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Aliases); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		catalog = append(catalog, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return catalog, nil
}

// UpsertSkill creates or replaces a catalog entry
func (db *DB) UpsertSkill(ctx context.Context, s types.CatalogSkill) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skills (id, name, category, aliases)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 ON CONFLICT (id) DO UPDATE SET name = $2, category = NULLIF($3, ''), aliases = $4`,
		s.ID, s.Name, s.Category, emptyIfNil(s.Aliases),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill %s: %w", s.ID, err)
	}
	return nil
}
