package rendering

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// RenderPlainText flattens sections: an upper-cased title line, the content
// lines, then a blank line per section. The result ends with exactly one newline.
func RenderPlainText(sections []types.ResumeSection) string {
	var lines []string
	for _, sec := range sections {
		lines = append(lines, strings.ToUpper(sec.Title))
		lines = append(lines, sec.Lines...)
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
