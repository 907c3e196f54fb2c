package feedback

import (
	"time"

	"github.com/kursovod/curator-bot/internal/judge"
)

// #region records

const (
	RatingHelpful    = "helpful"
	RatingNotHelpful = "not_helpful"
)

// Entry is one answered question in the feedback ledger. Rating stays nil
// until the student presses a button; it is the only field that mutates.
type Entry struct {
	RequestID string        `json:"request_id"`
	UserID    int64         `json:"user_id"`
	Question  string        `json:"question"`
	Answer    string        `json:"answer"`
	Category  string        `json:"category"`
	Judge     judge.Verdict `json:"judge"`
	Rating    *string       `json:"rating"`
	CreatedAt time.Time     `json:"created_at"`
	RatedAt   *time.Time    `json:"rated_at,omitempty"`
	Unlinked  bool          `json:"unlinked,omitempty"`
}

// JudgeRecord is the per-turn audit row, written whether or not the turn
// ever receives a rating.
type JudgeRecord struct {
	RequestID string        `json:"request_id"`
	UserID    int64         `json:"user_id"`
	Question  string        `json:"question"`
	Category  string        `json:"category"`
	Answer    string        `json:"answer"`
	Judge     judge.Verdict `json:"judge"`
	CreatedAt time.Time     `json:"created_at"`
}

// EscalationRecord is appended only on an explicit curator request.
type EscalationRecord struct {
	RequestID string    `json:"request_id"`
	UserID    int64     `json:"user_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// #endregion records
