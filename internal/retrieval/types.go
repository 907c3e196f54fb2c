package retrieval

import (
	"context"

	"github.com/kursovod/curator-bot/internal/knowledge"
)

// #region config
// Config holds limits for the two-phase retrieval pipeline.
// CandidateK must exceed TopK: the wider vector-distance candidate set is
// what the keyword re-rank chooses from.
type Config struct {
	TopK       int // final context size
	CandidateK int // vector candidates fetched before re-ranking
}

// DefaultConfig returns the limits used in production.
func DefaultConfig() Config {
	return Config{
		TopK:       4,
		CandidateK: 12,
	}
}

// #endregion config

// #region index-client
// IndexClient is the narrow contract the retriever needs from the knowledge
// index.
type IndexClient interface {
	Query(ctx context.Context, text string, k int) ([]knowledge.Chunk, error)
	Ready(ctx context.Context) (bool, error)
}

// #endregion index-client

// #region ranked-chunk
// RankedChunk is a retrieval candidate with its re-ranking key. Ephemeral:
// built per call, never persisted.
type RankedChunk struct {
	Text        string
	Distance    float64
	KeywordHits int
	SourceID    string
}

// #endregion ranked-chunk
