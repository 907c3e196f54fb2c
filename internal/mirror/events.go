package mirror

import "time"

// #region events

// Kind selects the event table (and Excel sheet) a record lands in.
type Kind string

const (
	KindNormalization Kind = "normalization"
	KindJudge         Kind = "judge"
	KindFeedback      Kind = "feedback"
	KindEscalation    Kind = "escalation"
)

// Event is the flat, denormalized record mirrored into analytics stores.
// Fields irrelevant to a given kind stay zero.
type Event struct {
	Kind      Kind
	RequestID string
	UserID    int64
	Question  string
	Category  string
	Answer    string
	Verdict   string
	Overall   float64
	Rating    string
	CreatedAt time.Time
}

// Sink receives mirrored events. Implementations are best-effort: a
// failing sink must not affect the others.
type Sink interface {
	Record(ev Event) error
	Close() error
}

// #endregion events
