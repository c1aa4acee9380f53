package ranking

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankItems_SortsByScore(t *testing.T) {
	items := []types.PortfolioItem{
		{ID: "low", Title: "notes app"},
		{ID: "high", SkillIDs: []string{"s1", "s2", "s3"}},
		{ID: "mid", Title: "golang service", SkillIDs: []string{"s1"}},
	}

	ranked := RankItems(items, set("s1", "s2", "s3"), set("golang"))

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Item.ID)
	assert.Equal(t, 3, ranked[0].SkillOverlap)
	assert.Equal(t, []string{"s1", "s2", "s3"}, ranked[0].MatchedSkillIDs)
	assert.Contains(t, ranked[0].Notes, "Strong skill match")

	assert.Equal(t, "mid", ranked[1].Item.ID)
	assert.Equal(t, 1, ranked[1].KeywordHits)
	assert.InDelta(t, 6.0, ranked[1].Score, 1e-9)

	assert.Equal(t, "low", ranked[2].Item.ID)
	assert.Equal(t, "No skill matches", ranked[2].Notes)
}

func TestRankItems_StableTies(t *testing.T) {
	items := []types.PortfolioItem{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}

	ranked := RankItems(items, nil, nil)

	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Item.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestRankItems_Empty(t *testing.T) {
	assert.Empty(t, RankItems(nil, set("s1"), set("go")))
}

func TestGenerateNotes(t *testing.T) {
	assert.Equal(t, "Partial skill match (s1). Some keyword overlap (2). Priority 3",
		generateNotes(1, 2, 3, []string{"s1"}))
	assert.Equal(t, "No skill matches. Good keyword overlap (4)",
		generateNotes(0, 4, 0, nil))
}
