package retrieval

import (
	"regexp"
	"strings"
)

// #region tokenize

// wordPattern matches runs of letters and digits in any script, so Cyrillic
// query terms tokenize the same way Latin ones do.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

const (
	minTermLen = 2
	maxTermLen = 50
)

// queryTerms extracts deduplicated lower-cased search terms from a query.
// Terms outside the 2–50 rune range are dropped (single letters match
// everywhere, overlong runs are junk).
func queryTerms(query string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(query), -1)
	seen := make(map[string]struct{}, len(raw))
	var terms []string
	for _, tok := range raw {
		n := len([]rune(tok))
		if n < minTermLen || n > maxTermLen {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
	}
	return terms
}

// countHits returns how many of the terms occur in text as case-insensitive
// substrings. Substring (not word-boundary) on purpose: it catches inflected
// forms in non-space-delimited and highly inflected scripts.
func countHits(text string, terms []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return hits
}

// #endregion tokenize
