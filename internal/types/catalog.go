// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CatalogSkill is a canonical skill entry from the shared skill catalog.
// Catalog entries are read-only to the matching engine.
type CatalogSkill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
}

// SkillNames builds an id -> canonical name lookup for a catalog snapshot.
func SkillNames(catalog []CatalogSkill) map[string]string {
	names := make(map[string]string, len(catalog))
	for _, s := range catalog {
		if s.ID == "" {
			continue
		}
		names[s.ID] = s.Name
	}
	return names
}
