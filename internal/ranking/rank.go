package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// ScoredItem is a portfolio item together with its score breakdown
type ScoredItem struct {
	Item            types.PortfolioItem `json:"item"`
	Score           float64             `json:"score"`
	SkillOverlap    int                 `json:"skill_overlap"`
	KeywordHits     int                 `json:"keyword_hits"`
	MatchedSkillIDs []string            `json:"matched_skill_ids,omitempty"`
	Notes           string              `json:"notes,omitempty"`
}

// RankItems scores every item and sorts by score descending.
// Items with equal scores keep their original relative order.
func RankItems(items []types.PortfolioItem, jobSkillIDs, keywords map[string]bool) []ScoredItem {
	ranked := make([]ScoredItem, 0, len(items))
	for i := range items {
		item := &items[i]
		overlap, matched := computeSkillOverlap(item, jobSkillIDs)
		hits := computeKeywordHits(item, keywords)

		ranked = append(ranked, ScoredItem{
			Item:            *item,
			Score:           combine(overlap, hits, item.Priority),
			SkillOverlap:    overlap,
			KeywordHits:     hits,
			MatchedSkillIDs: matched,
			Notes:           generateNotes(overlap, hits, item.Priority, matched),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// generateNotes creates a brief explanation of the ranking.
func generateNotes(overlap, hits, priority int, matched []string) string {
	var parts []string

	switch {
	case overlap >= 3:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", ")))
	case overlap > 0:
		parts = append(parts, fmt.Sprintf("Partial skill match (%s)", strings.Join(matched, ", ")))
	default:
		parts = append(parts, "No skill matches")
	}

	if hits >= 3 {
		parts = append(parts, fmt.Sprintf("Good keyword overlap (%d)", hits))
	} else if hits > 0 {
		parts = append(parts, fmt.Sprintf("Some keyword overlap (%d)", hits))
	}

	if priority > 0 {
		parts = append(parts, fmt.Sprintf("Priority %d", priority))
	}

	return strings.Join(parts, ". ")
}
