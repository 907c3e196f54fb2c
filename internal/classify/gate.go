package classify

import "strings"

// #region lexicon

// DefaultLexicon lists abusive substrings checked case-insensitively.
// Deliberately liberal: plain substring match (no word boundaries) so that
// suffix variants and glued forms are caught too. Editable via the data file;
// this is configuration, not algorithm.
var DefaultLexicon = []string{
	"тупой", "тупая", "тупое", "туп бот",
	"дурак", "дура", "идиот", "дебил", "кретин",
	"отстой", "бесполезн", "ужасный помощник", "ужасный бот",
	"иди в бан", "заткнись", "отвали",
	"stupid", "useless bot", "idiot",
}

// #endregion lexicon

// #region gate

// Gate is the deterministic abuse check. It runs before the LLM classifier
// (short-circuit, saves the remote call) and again after it (the model never
// downgrades a keyword-flagged message away from abuse).
type Gate struct {
	lexicon []string
}

// NewGate creates a Gate. An empty lexicon falls back to DefaultLexicon.
func NewGate(lexicon []string) *Gate {
	if len(lexicon) == 0 {
		lexicon = DefaultLexicon
	}
	lowered := make([]string, len(lexicon))
	for i, w := range lexicon {
		lowered[i] = strings.ToLower(w)
	}
	return &Gate{lexicon: lowered}
}

// IsAbusive reports whether text contains any lexicon entry as a
// case-insensitive substring.
func (g *Gate) IsAbusive(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range g.lexicon {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// #endregion gate
