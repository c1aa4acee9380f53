// Package keywords extracts salient keyword tokens from job posting text.
package keywords

import (
	"regexp"
	"strings"
)

// MaxKeywords caps the number of tokens returned by Tokenize
const MaxKeywords = 25

// tokenPattern matches a letter followed by at least three letters, digits or
// tech symbols (+ . # -), so "node.js" survives and "c++" is too short.
var tokenPattern = regexp.MustCompile(`[a-z][a-z0-9+.#-]{3,}`)

// stopWords filters common English and job-posting filler words
var stopWords = map[string]struct{}{
	"with": {}, "from": {}, "that": {}, "this": {}, "have": {}, "will": {},
	"your": {}, "able": {}, "work": {}, "team": {}, "role": {}, "must": {},
	"plus": {}, "also": {}, "using": {}, "used": {}, "into": {}, "over": {},
	"such": {}, "they": {}, "their": {}, "them": {}, "than": {}, "then": {},
	"only": {}, "when": {}, "where": {}, "what": {}, "were": {}, "been": {},
	"being": {}, "more": {}, "less": {}, "some": {}, "many": {}, "each": {},
	"make": {}, "made": {},
}

// IsStopWord reports whether w is filtered by Tokenize.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Tokenize returns up to MaxKeywords distinct lower-cased tokens from text
// in first-occurrence order, skipping stop words.
func Tokenize(text string) []string {
	out := make([]string, 0, MaxKeywords)
	if text == "" {
		return out
	}

	seen := make(map[string]struct{})
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if IsStopWord(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) >= MaxKeywords {
			break
		}
	}
	return out
}

// Set returns tokens as a lookup set.
func Set(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
