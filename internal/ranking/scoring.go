// Package ranking scores portfolio items against a job's matched skills and keywords.
package ranking

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Scoring weights. Skill overlap dominates; priority only breaks near-ties.
const (
	SkillOverlapWeight = 5.0
	KeywordHitWeight   = 1.0
	PriorityWeight     = 0.25
)

// ScoreItem computes an item's relevance to a job. The result is never negative.
func ScoreItem(item *types.PortfolioItem, jobSkillIDs, keywords map[string]bool) float64 {
	overlap, _ := computeSkillOverlap(item, jobSkillIDs)
	hits := computeKeywordHits(item, keywords)
	return combine(overlap, hits, item.Priority)
}

func combine(overlap, hits, priority int) float64 {
	if priority < 0 {
		priority = 0
	}
	return SkillOverlapWeight*float64(overlap) +
		KeywordHitWeight*float64(hits) +
		PriorityWeight*float64(priority)
}

// computeSkillOverlap counts distinct item skill ids present in the job's skill set.
// Returns the count and the matched ids in item order.
func computeSkillOverlap(item *types.PortfolioItem, jobSkillIDs map[string]bool) (int, []string) {
	if len(jobSkillIDs) == 0 || len(item.SkillIDs) == 0 {
		return 0, nil
	}

	seen := make(map[string]bool, len(item.SkillIDs))
	matched := make([]string, 0)
	for _, id := range item.SkillIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if jobSkillIDs[id] {
			matched = append(matched, id)
		}
	}
	return len(matched), matched
}

// computeKeywordHits counts keywords that occur as substrings of the item's searchable text.
func computeKeywordHits(item *types.PortfolioItem, keywords map[string]bool) int {
	if len(keywords) == 0 {
		return 0
	}

	text := searchableText(item)
	hits := 0
	for k := range keywords {
		if k != "" && strings.Contains(text, k) {
			hits++
		}
	}
	return hits
}

func searchableText(item *types.PortfolioItem) string {
	parts := make([]string, 0, len(item.Bullets)+2)
	parts = append(parts, item.Title, item.Summary)
	parts = append(parts, item.Bullets...)
	return strings.ToLower(strings.Join(parts, " "))
}
