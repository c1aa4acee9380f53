package selection

import (
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/types"
)

// SelectItems returns the top maxItems items by score. Zero-score items are
// dropped from that window unless nothing in it scores above zero, in which
// case the window is returned as-is so the resume always has content.
func SelectItems(items []types.PortfolioItem, jobSkillIDs, keywords map[string]bool, maxItems int) ([]ranking.ScoredItem, error) {
	if maxItems < 1 {
		return nil, &Error{Message: "max items must be at least 1"}
	}

	ranked := ranking.RankItems(items, jobSkillIDs, keywords)
	if len(ranked) > maxItems {
		ranked = ranked[:maxItems]
	}

	positive := make([]ranking.ScoredItem, 0, len(ranked))
	for _, r := range ranked {
		if r.Score > 0 {
			positive = append(positive, r)
		}
	}
	if len(positive) == 0 {
		return ranked, nil
	}
	return positive, nil
}
