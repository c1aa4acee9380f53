package selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func idRange(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return out
}

func toSet(ids ...string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func TestSelectSkills_BackfillsSmallIntersection(t *testing.T) {
	job := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10",
		"s11", "s12", "s13", "s14", "s15", "s16", "s17", "s18", "s19", "s20"}

	got := SelectSkills(job, toSet("s7", "s3", "s99"))

	assert.Len(t, got, MaxSelectedSkills)
	assert.Equal(t, []string{"s3", "s7"}, got[:2])
	assert.Equal(t, []string{"s1", "s2", "s4", "s5", "s6", "s8"}, got[2:8])
	assert.NotContains(t, got, "s99")
}

func TestSelectSkills_LargeIntersectionNoBackfill(t *testing.T) {
	job := idRange("j", 30)
	confirmed := toSet(job[0], job[2], job[4], job[6], job[8], job[10], job[12], job[14], job[16], job[18], job[20])

	got := SelectSkills(job, confirmed)

	assert.Len(t, got, 11)
	for _, id := range got {
		assert.True(t, confirmed[id], id)
	}
	assert.Equal(t, job[0], got[0])
	assert.Equal(t, job[20], got[10])
}

func TestSelectSkills_IntersectionCappedAtMax(t *testing.T) {
	job := idRange("j", 40)
	got := SelectSkills(job, toSet(job...))

	assert.Equal(t, job[:MaxSelectedSkills], got)
}

func TestSelectSkills_OnlyTopFiftyJobSkillsConsidered(t *testing.T) {
	job := idRange("j", 60)
	got := SelectSkills(job, toSet(job[55]))

	assert.NotContains(t, got, job[55])
	assert.Equal(t, job[:MaxSelectedSkills], got)
}

func TestSelectSkills_FewJobSkills(t *testing.T) {
	got := SelectSkills([]string{"a", "b", "c"}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	assert.Empty(t, SelectSkills(nil, toSet("a")))
}

func TestSelectSkills_Deduplicates(t *testing.T) {
	got := SelectSkills([]string{"a", "b", "a", "c", "b"}, toSet("b"))
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestResolveSkillNames(t *testing.T) {
	names := map[string]string{"s1": "Python", "s2": "Go", "s3": ""}

	resolved, unresolved := ResolveSkillNames([]string{"s2", "missing", "s1", "s3"}, names)

	assert.Equal(t, []string{"Go", "missing", "Python", "s3"}, resolved)
	assert.Equal(t, []string{"missing", "s3"}, unresolved)
}
