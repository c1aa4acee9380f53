// Package schemas embeds the JSON Schemas for documents exchanged at the
// system's boundaries.
package schemas

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

// Schema file names
const (
	SkillCatalog   = "skill_catalog.schema.json"
	PortfolioItems = "portfolio_items.schema.json"
	JobExtraction  = "job_extraction.schema.json"
	TailoredResume = "tailored_resume.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the content of an embedded schema by file name. The
// ".schema.json" suffix may be omitted.
func Load(name string) (string, error) {
	if !strings.HasSuffix(name, ".schema.json") {
		name += ".schema.json"
	}
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unknown schema %q", name)
	}
	return string(data), nil
}

// Names lists the embedded schema file names in sorted order.
func Names() []string {
	entries, _ := files.ReadDir(".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
