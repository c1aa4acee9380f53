package portfolio

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// NormalizeItems trims text fields, drops blank bullets and links,
// deduplicates skill ids and defaults missing types and visibility.
func NormalizeItems(items []types.PortfolioItem) error {
	for i := range items {
		item := &items[i]
		item.Title = strings.TrimSpace(item.Title)
		item.Org = strings.TrimSpace(item.Org)
		item.Summary = strings.TrimSpace(item.Summary)
		item.Bullets = compact(item.Bullets)
		item.Links = compact(item.Links)
		item.SkillIDs = dedupe(compact(item.SkillIDs))

		if item.Type == "" {
			item.Type = types.ItemTypeOther
		}
		item.Type = types.ItemType(strings.ToLower(string(item.Type)))
		if !item.Type.Valid() {
			return &NormalizationError{
				Message: fmt.Sprintf("invalid type '%s' for item '%s'", item.Type, item.ID),
			}
		}
		if item.Visibility == "" {
			item.Visibility = types.VisibilityPrivate
		}
	}
	return nil
}

// NormalizeCatalog trims names and aliases and rejects duplicate skill ids.
func NormalizeCatalog(catalog []types.CatalogSkill) error {
	seen := make(map[string]bool, len(catalog))
	for i := range catalog {
		skill := &catalog[i]
		if skill.ID == "" {
			return &NormalizationError{Message: fmt.Sprintf("skill at index %d has no id", i)}
		}
		if seen[skill.ID] {
			return &NormalizationError{Message: fmt.Sprintf("duplicate skill id '%s'", skill.ID)}
		}
		seen[skill.ID] = true
		skill.Name = strings.TrimSpace(skill.Name)
		skill.Aliases = dedupe(compact(skill.Aliases))
	}
	return nil
}

// ParseIDList splits a comma-separated id list, dropping blanks and duplicates.
func ParseIDList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return dedupe(compact(strings.Split(s, ",")))
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
