// Package rendering assembles tailored resume sections and renders them as plain text or LaTeX.
package rendering

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Section titles
const (
	SectionSummary      = "Summary"
	SectionSkills       = "Skills"
	SectionRelevantWork = "Relevant Work"
)

const (
	positioningLine  = "Software / ML-focused builder with hands-on experience delivering projects end-to-end (API, data, and deployment)."
	targetingPrefix  = "Targeting this role by emphasizing: "
	genericTargeting = "Targeting this role with a focus on the requirements and deliverables described in the posting."
	placeholderLine  = "- Relevant portfolio item selected based on skills/keywords overlap with the job posting."

	maxSkillLineChars = 250
	maxLinks          = 3
	untitled          = "Untitled"
	orgSeparator      = " \u2014 "
)

// AssembleInput is everything the assembler needs. SkillNames holds the
// display names of the selected skills in selection order.
type AssembleInput struct {
	SkillNames        []string
	Items             []types.PortfolioItem
	MaxBulletsPerItem int
}

// Assemble composes the resume sections and their plain-text rendering.
// Output is a deterministic function of the input.
func Assemble(in AssembleInput) ([]types.ResumeSection, string) {
	names := make([]string, 0, len(in.SkillNames))
	for _, n := range in.SkillNames {
		if n != "" {
			names = append(names, n)
		}
	}
	joined := strings.Join(names, ", ")
	skillLine := truncateRunes(joined, maxSkillLineChars)

	sections := make([]types.ResumeSection, 0, 3)

	targeting := genericTargeting
	if skillLine != "" {
		targeting = targetingPrefix + skillLine
	}
	sections = append(sections, types.ResumeSection{
		Title: SectionSummary,
		Lines: []string{positioningLine, targeting},
	})

	if len(in.SkillNames) > 0 {
		line := joined
		if line == "" {
			line = skillLine
		}
		sections = append(sections, types.ResumeSection{
			Title: SectionSkills,
			Lines: []string{line},
		})
	}

	var work []string
	for i := range in.Items {
		if i > 0 {
			work = append(work, "")
		}
		work = append(work, itemLines(&in.Items[i], in.MaxBulletsPerItem)...)
	}
	if len(work) > 0 {
		sections = append(sections, types.ResumeSection{
			Title: SectionRelevantWork,
			Lines: work,
		})
	}

	return sections, RenderPlainText(sections)
}

func itemLines(item *types.PortfolioItem, maxBullets int) []string {
	lines := []string{itemHeader(item)}

	bullets := item.Bullets
	if maxBullets >= 0 && len(bullets) > maxBullets {
		bullets = bullets[:maxBullets]
	}
	switch {
	case len(bullets) > 0:
		for _, b := range bullets {
			lines = append(lines, "- "+b)
		}
	case item.Summary != "":
		lines = append(lines, "- "+item.Summary)
	default:
		lines = append(lines, placeholderLine)
	}

	if len(item.Links) > 0 {
		links := item.Links
		if len(links) > maxLinks {
			links = links[:maxLinks]
		}
		lines = append(lines, "- Links: "+strings.Join(links, ", "))
	}
	return lines
}

// itemHeader joins title and org with orgSeparator and appends the date range.
// A missing start keeps the leading dash so an end-only range reads as "until".
func itemHeader(item *types.PortfolioItem) string {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = untitled
	}

	var b strings.Builder
	b.WriteString(title)
	if item.Org != "" {
		b.WriteString(orgSeparator)
		b.WriteString(item.Org)
	}
	switch {
	case item.DateStart != "" && item.DateEnd != "":
		fmt.Fprintf(&b, " (%s-%s)", item.DateStart, item.DateEnd)
	case item.DateStart != "":
		fmt.Fprintf(&b, " (%s)", item.DateStart)
	case item.DateEnd != "":
		fmt.Fprintf(&b, " (-%s)", item.DateEnd)
	}
	return strings.TrimSpace(b.String())
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
