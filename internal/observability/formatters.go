// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to at most n runes, marking the cut with "..."
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintJobExtraction outputs the top matched skills and keywords of a job posting.
func (p *Printer) PrintJobExtraction(extraction *types.JobExtraction) {
	if extraction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills matched: %d\n", len(extraction.Skills)))

	count := min(len(extraction.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := extraction.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s x%d (%s)\n", s.SkillName, s.Count, s.MatchedOn))
	}
	if len(extraction.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(extraction.Skills)-maxItemsToShow))
	}

	if len(extraction.Keywords) > 0 {
		sb.WriteString("\nKeywords:\n")
		sb.WriteString("  " + strings.Join(extraction.Keywords[:min(len(extraction.Keywords), 8)], ", "))
	}

	p.printBox("JOB EXTRACTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedItems outputs the selected portfolio items with their score breakdown.
func (p *Printer) PrintRankedItems(items []ranking.ScoredItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Items selected: %d\n\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		title := item.Item.Title
		if strings.TrimSpace(title) == "" {
			title = item.Item.ID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (skills %d, keywords %d)\n", item.Score, item.SkillOverlap, item.KeywordHits))
		if item.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", item.Notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(items)-maxItemsToShow))
	}

	p.printBox("RANKED PORTFOLIO ITEMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredResume outputs a section-level summary of a generated resume.
func (p *Printer) PrintTailoredResume(resume *types.TailoredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", resume.Template))
	sb.WriteString(fmt.Sprintf("Skills:   %d selected\n", len(resume.SelectedSkillIDs)))
	sb.WriteString(fmt.Sprintf("Items:    %d selected\n\n", len(resume.SelectedItemIDs)))
	for _, sec := range resume.Sections {
		sb.WriteString(fmt.Sprintf("%s (%d lines)\n", strings.ToUpper(sec.Title), len(sec.Lines)))
	}

	p.printBox("TAILORED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUnresolvedSkills warns about selected skill ids missing from the catalog.
func (p *Printer) PrintUnresolvedSkills(ids []string) {
	if len(ids) == 0 {
		return
	}
	p.printBox("⚠ SKILLS MISSING FROM CATALOG", strings.Join(ids, "\n"))
}
