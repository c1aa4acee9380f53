package selection

import "github.com/jonathan/resume-tailor/internal/types"

// FromLegacyProject adapts a legacy project record into the portfolio item shape.
func FromLegacyProject(p types.LegacyProject) types.PortfolioItem {
	return types.PortfolioItem{
		ID:         p.ID,
		UserID:     p.UserID,
		Type:       types.ItemTypeProject,
		Title:      p.Title,
		Summary:    p.Description,
		Bullets:    []string{},
		Links:      []string{},
		SkillIDs:   []string{},
		Tags:       p.Tags,
		Visibility: types.VisibilityPrivate,
		Priority:   0,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// CandidateItems returns the user's portfolio items, or their legacy
// projects adapted to items when the user has no portfolio items.
func CandidateItems(items []types.PortfolioItem, projects []types.LegacyProject) []types.PortfolioItem {
	if len(items) > 0 {
		return items
	}
	out := make([]types.PortfolioItem, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromLegacyProject(p))
	}
	return out
}
