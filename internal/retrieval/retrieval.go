package retrieval

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// #region retriever
// Retriever runs two-phase hybrid retrieval: a wide vector-distance
// candidate fetch from the index, then a deterministic keyword re-rank.
// Pure vector similarity under-ranks chunks carrying an exact rare term
// (acronyms, proper nouns); keyword hits are the primary sort key and
// distance only breaks ties.
type Retriever struct {
	index  IndexClient
	config Config
}

// NewRetriever creates a Retriever over an index client.
func NewRetriever(index IndexClient, config Config) *Retriever {
	if config.TopK <= 0 {
		config.TopK = DefaultConfig().TopK
	}
	if config.CandidateK < config.TopK {
		config.CandidateK = config.TopK * 3
	}
	return &Retriever{index: index, config: config}
}

// #endregion retriever

// #region retrieve
// Retrieve returns up to TopK chunks ordered by (keyword hits desc,
// distance asc). An empty, unready or unreachable index yields an empty
// slice, never an error: callers treat empty as "no knowledge available".
func (r *Retriever) Retrieve(ctx context.Context, query string) []RankedChunk {
	ready, err := r.index.Ready(ctx)
	if err != nil {
		log.Printf("[RETRIEVE] index status failed, treating as empty: %v", err)
		return nil
	}
	if !ready {
		return nil
	}

	candidates, err := r.index.Query(ctx, query, r.config.CandidateK)
	if err != nil {
		log.Printf("[RETRIEVE] index query failed, treating as empty: %v", err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	terms := queryTerms(query)
	ranked := make([]RankedChunk, len(candidates))
	for i, c := range candidates {
		ranked[i] = RankedChunk{
			Text:        c.Text,
			Distance:    c.Distance,
			KeywordHits: countHits(c.Text, terms),
			SourceID:    c.SourceID,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].KeywordHits != ranked[j].KeywordHits {
			return ranked[i].KeywordHits > ranked[j].KeywordHits
		}
		return ranked[i].Distance < ranked[j].Distance
	})

	if len(ranked) > r.config.TopK {
		ranked = ranked[:r.config.TopK]
	}
	return ranked
}

// #endregion retrieve

// #region context
// BuildContext renders ranked chunks into the numbered fragment blocks the
// generation and judge prompts expect.
func BuildContext(chunks []RankedChunk) string {
	var b strings.Builder
	for i, c := range chunks {
		source := c.SourceID
		if source == "" {
			source = "неизвестный источник"
		}
		fmt.Fprintf(&b, "[Фрагмент %d из %s]\n%s\n", i+1, source, c.Text)
		if i < len(chunks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// #endregion context
