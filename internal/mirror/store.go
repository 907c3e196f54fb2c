package mirror

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS normalization_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id  TEXT NOT NULL,
	user_id     INTEGER NOT NULL,
	question    TEXT NOT NULL,
	category    TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS judge_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id  TEXT NOT NULL,
	user_id     INTEGER NOT NULL,
	question    TEXT NOT NULL,
	category    TEXT NOT NULL,
	answer      TEXT NOT NULL,
	verdict     TEXT NOT NULL,
	overall     REAL NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feedback_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id  TEXT NOT NULL,
	user_id     INTEGER NOT NULL,
	rating      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS escalation_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id  TEXT NOT NULL,
	user_id     INTEGER NOT NULL,
	question    TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
`
// #endregion schema

// #region store

// Store mirrors pipeline events into SQLite for offline analytics.
type Store struct {
	db *sql.DB
}

// NewStore opens the database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one event into the table matching its kind.
func (s *Store) Record(ev Event) error {
	at := ev.CreatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	ts := at.Format(time.RFC3339Nano)

	var err error
	switch ev.Kind {
	case KindNormalization:
		_, err = s.db.Exec(
			`INSERT INTO normalization_events (request_id, user_id, question, category, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			ev.RequestID, ev.UserID, ev.Question, ev.Category, ts,
		)
	case KindJudge:
		_, err = s.db.Exec(
			`INSERT INTO judge_events (request_id, user_id, question, category, answer, verdict, overall, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.RequestID, ev.UserID, ev.Question, ev.Category, ev.Answer, ev.Verdict, ev.Overall, ts,
		)
	case KindFeedback:
		_, err = s.db.Exec(
			`INSERT INTO feedback_events (request_id, user_id, rating, created_at)
			 VALUES (?, ?, ?, ?)`,
			ev.RequestID, ev.UserID, ev.Rating, ts,
		)
	case KindEscalation:
		_, err = s.db.Exec(
			`INSERT INTO escalation_events (request_id, user_id, question, created_at)
			 VALUES (?, ?, ?, ?)`,
			ev.RequestID, ev.UserID, ev.Question, ts,
		)
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	if err != nil {
		return fmt.Errorf("insert %s event: %w", ev.Kind, err)
	}
	return nil
}

// #endregion store

// #region stats

// Stats are the aggregate quality numbers over everything mirrored so far.
type Stats struct {
	Turns       int     // judged turns
	GoodRate    float64 // share of "good" verdicts among judged turns
	Ratings     int     // explicit ratings received
	CSAT        float64 // share of "helpful" among ratings
	Escalations int
	Deflection  float64 // share of turns resolved without escalation
}

// Stats computes the aggregates from the event tables.
func (s *Store) Stats() (Stats, error) {
	var st Stats

	var good int
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN verdict = 'good' THEN 1 ELSE 0 END), 0)
		 FROM judge_events`,
	).Scan(&st.Turns, &good)
	if err != nil {
		return Stats{}, fmt.Errorf("judge stats: %w", err)
	}

	var helpful int
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN rating = 'helpful' THEN 1 ELSE 0 END), 0)
		 FROM feedback_events`,
	).Scan(&st.Ratings, &helpful)
	if err != nil {
		return Stats{}, fmt.Errorf("feedback stats: %w", err)
	}

	err = s.db.QueryRow(`SELECT COUNT(*) FROM escalation_events`).Scan(&st.Escalations)
	if err != nil {
		return Stats{}, fmt.Errorf("escalation stats: %w", err)
	}

	if st.Turns > 0 {
		st.GoodRate = float64(good) / float64(st.Turns)
		st.Deflection = 1 - float64(st.Escalations)/float64(st.Turns)
	}
	if st.Ratings > 0 {
		st.CSAT = float64(helpful) / float64(st.Ratings)
	}
	return st, nil
}

// #endregion stats
