// Package skills detects catalog skills in free text.
package skills

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/types"
)

// MinNameLength is the shortest canonical name used as a match pattern
const MinNameLength = 2

type pattern struct {
	text   string
	isName bool
}

type compiledSkill struct {
	id       string
	name     string
	order    int
	patterns []pattern
	// candidates finds the next position where any pattern starts;
	// boundaries are checked by hand since RE2 has no lookbehind.
	candidates *regexp.Regexp
}

// Matcher is a skill matcher compiled from one catalog snapshot.
// It is immutable and safe for concurrent use.
type Matcher struct {
	skills      []compiledSkill
	fingerprint string
}

// NewMatcher compiles the catalog into a Matcher. Skills with a blank name are
// skipped; names shorter than MinNameLength contribute no pattern but their
// aliases still do. Entries sharing an id fold into one skill that keeps the
// first entry's name and catalog position.
func NewMatcher(catalog []types.CatalogSkill) *Matcher {
	m := &Matcher{fingerprint: Fingerprint(catalog)}

	type draft struct {
		compiledSkill
		seen map[string]bool
	}
	var drafts []*draft
	byID := make(map[string]*draft)

	for i, skill := range catalog {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}

		d, ok := byID[skill.ID]
		if !ok {
			d = &draft{
				compiledSkill: compiledSkill{id: skill.ID, name: name, order: i},
				seen:          make(map[string]bool),
			}
			byID[skill.ID] = d
			drafts = append(drafts, d)
		}

		if utf8.RuneCountInString(name) >= MinNameLength {
			lower := strings.ToLower(name)
			if !d.seen[lower] {
				d.seen[lower] = true
				d.patterns = append(d.patterns, pattern{text: lower, isName: true})
			}
		}
		for _, alias := range skill.Aliases {
			lower := strings.ToLower(strings.TrimSpace(alias))
			if lower == "" || d.seen[lower] {
				continue
			}
			d.seen[lower] = true
			d.patterns = append(d.patterns, pattern{text: lower})
		}
	}

	for _, d := range drafts {
		patterns := d.patterns
		if len(patterns) == 0 {
			continue
		}

		// Longest first so a more specific pattern wins at a shared start.
		sort.SliceStable(patterns, func(a, b int) bool {
			return len(patterns[a].text) > len(patterns[b].text)
		})

		quoted := make([]string, len(patterns))
		for j, p := range patterns {
			quoted[j] = regexp.QuoteMeta(p.text)
		}

		skill := d.compiledSkill
		skill.candidates = regexp.MustCompile(strings.Join(quoted, "|"))
		m.skills = append(m.skills, skill)
	}
	return m
}

// Fingerprint identifies the catalog snapshot the matcher was built from.
func (m *Matcher) Fingerprint() string {
	return m.fingerprint
}

// Size returns the number of skills that have at least one pattern.
func (m *Matcher) Size() int {
	return len(m.skills)
}

// Match returns every catalog skill found in text, ordered by count desc,
// then name ascending (case-insensitive), then catalog order.
func (m *Matcher) Match(text string) []types.ExtractedSkill {
	out := []types.ExtractedSkill{}
	if text == "" || len(m.skills) == 0 {
		return out
	}

	lower := strings.ToLower(text)
	orders := make(map[string]int, len(m.skills))
	for i := range m.skills {
		skill := &m.skills[i]
		nameHits, aliasHits := skill.scan(lower)
		if nameHits+aliasHits == 0 {
			continue
		}
		matchedOn := types.MatchedOnAlias
		if nameHits > 0 {
			matchedOn = types.MatchedOnName
		}
		out = append(out, types.ExtractedSkill{
			SkillID:   skill.id,
			SkillName: skill.name,
			MatchedOn: matchedOn,
			Count:     nameHits + aliasHits,
		})
		orders[skill.id] = skill.order
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		ni, nj := strings.ToLower(out[i].SkillName), strings.ToLower(out[j].SkillName)
		if ni != nj {
			return ni < nj
		}
		return orders[out[i].SkillID] < orders[out[j].SkillID]
	})
	return out
}

// scan counts non-overlapping, boundary-delimited pattern occurrences in text.
func (c *compiledSkill) scan(text string) (nameHits, aliasHits int) {
	pos := 0
	for pos < len(text) {
		loc := c.candidates.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if p, ok := c.longestAt(text, start); ok {
			if p.isName {
				nameHits++
			} else {
				aliasHits++
			}
			pos = start + len(p.text)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return nameHits, aliasHits
}

func (c *compiledSkill) longestAt(text string, start int) (pattern, bool) {
	if start > 0 && isWordByte(text[start-1]) {
		return pattern{}, false
	}
	rest := text[start:]
	for _, p := range c.patterns {
		if !strings.HasPrefix(rest, p.text) {
			continue
		}
		end := start + len(p.text)
		if end < len(text) && isWordByte(text[end]) {
			continue
		}
		return p, true
	}
	return pattern{}, false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Match is a convenience for a one-off match against a catalog.
func Match(text string, catalog []types.CatalogSkill) []types.ExtractedSkill {
	return NewMatcher(catalog).Match(text)
}

// Top returns at most n skills from a ranked list.
func Top(skills []types.ExtractedSkill, n int) []types.ExtractedSkill {
	if n < 0 || len(skills) <= n {
		return skills
	}
	return skills[:n]
}

// Fingerprint hashes the matching-relevant fields of a catalog snapshot.
func Fingerprint(catalog []types.CatalogSkill) string {
	h := sha256.New()
	for _, s := range catalog {
		h.Write([]byte(s.ID))
		h.Write([]byte{0})
		h.Write([]byte(s.Name))
		for _, a := range s.Aliases {
			h.Write([]byte{1})
			h.Write([]byte(a))
		}
		h.Write([]byte{2})
	}
	return hex.EncodeToString(h.Sum(nil))
}
