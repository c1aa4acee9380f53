// Package ingestion turns raw job postings (pasted text or URLs) into clean text ready for matching.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"
)

// PreviewLength is the number of characters kept in a text preview
const PreviewLength = 220

var (
	spaceRun     = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings and whitespace while keeping bullets,
// headings and paragraph breaks (at most one blank line between blocks).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	// Bullet glyphs are normalized to markdown dashes.
	for _, glyph := range []string{"• ", "· ", "* ", "▪ "} {
		if strings.HasPrefix(trimmed, glyph) {
			trimmed = "- " + strings.TrimSpace(trimmed[len(glyph):])
			break
		}
	}
	return spaceRun.ReplaceAllString(trimmed, " ")
}

// TextPreview returns a single-line preview of text, truncated to
// PreviewLength characters with a trailing ellipsis.
func TextPreview(text string) string {
	preview := strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
	if utf8.RuneCountInString(preview) > PreviewLength {
		preview = string([]rune(preview)[:PreviewLength]) + "..."
	}
	return preview
}

// ContentHash computes the SHA256 hex digest of text
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
