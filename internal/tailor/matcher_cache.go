package tailor

import (
	"sync"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// matcherCache keeps the matcher compiled from the most recent catalog snapshot.
type matcherCache struct {
	mu      sync.Mutex
	matcher *skills.Matcher
}

func (c *matcherCache) get(catalog []types.CatalogSkill) *skills.Matcher {
	fp := skills.Fingerprint(catalog)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.matcher != nil && c.matcher.Fingerprint() == fp {
		return c.matcher
	}
	c.matcher = skills.NewMatcher(catalog)
	return c.matcher
}
