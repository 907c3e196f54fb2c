package feedback

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// #region ledger

// Ledger owns the three JSONL log files. Each record is one line; the
// feedback file is the only one that gets rewritten (on rating updates),
// the other two are append-only. One mutex per file serializes writers.
type Ledger struct {
	feedbackPath   string
	judgePath      string
	escalationPath string

	feedbackMu   sync.Mutex
	judgeMu      sync.Mutex
	escalationMu sync.Mutex

	now func() time.Time
}

// NewLedger creates the log directory if needed.
func NewLedger(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &Ledger{
		feedbackPath:   filepath.Join(dir, "feedback_log.jsonl"),
		judgePath:      filepath.Join(dir, "judge_log.jsonl"),
		escalationPath: filepath.Join(dir, "escalation_log.jsonl"),
		now:            time.Now,
	}, nil
}

// #endregion ledger

// #region feedback

// CreateEntry appends a new unrated entry. Called once per answered
// question, before rating buttons are shown.
func (l *Ledger) CreateEntry(e Entry) error {
	l.feedbackMu.Lock()
	defer l.feedbackMu.Unlock()

	e.Rating = nil
	e.RatedAt = nil
	if e.CreatedAt.IsZero() {
		e.CreatedAt = l.now()
	}
	return appendLine(l.feedbackPath, e)
}

// UpdateRating sets the rating on the entry with the given request id.
// Re-rating overwrites the previous value, so pressing the same button
// twice (or changing one's mind) is safe. Returns false when no entry
// matches, e.g. after a restart wiped the session but the file rotated too.
func (l *Ledger) UpdateRating(requestID, rating string) (bool, error) {
	l.feedbackMu.Lock()
	defer l.feedbackMu.Unlock()

	entries, err := readEntries(l.feedbackPath)
	if err != nil {
		return false, err
	}
	found := false
	for i := range entries {
		if entries[i].RequestID != requestID {
			continue
		}
		at := l.now()
		entries[i].Rating = &rating
		entries[i].RatedAt = &at
		found = true
	}
	if !found {
		return false, nil
	}
	if err := rewriteEntries(l.feedbackPath, entries); err != nil {
		return false, err
	}
	return true, nil
}

// AppendUnlinked records a rating whose original entry is gone. Keeps the
// signal instead of dropping it.
func (l *Ledger) AppendUnlinked(requestID string, userID int64, rating string) error {
	l.feedbackMu.Lock()
	defer l.feedbackMu.Unlock()

	at := l.now()
	return appendLine(l.feedbackPath, Entry{
		RequestID: requestID,
		UserID:    userID,
		Question:  "unknown",
		Answer:    "unknown",
		Category:  "unknown",
		Rating:    &rating,
		CreatedAt: at,
		RatedAt:   &at,
		Unlinked:  true,
	})
}

// Entries returns the full feedback ledger, oldest first.
func (l *Ledger) Entries() ([]Entry, error) {
	l.feedbackMu.Lock()
	defer l.feedbackMu.Unlock()
	return readEntries(l.feedbackPath)
}

// #endregion feedback

// #region audit

// RecordJudgeOnly appends the per-turn audit record.
func (l *Ledger) RecordJudgeOnly(r JudgeRecord) error {
	l.judgeMu.Lock()
	defer l.judgeMu.Unlock()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = l.now()
	}
	return appendLine(l.judgePath, r)
}

// JudgeRecords returns the audit ledger, oldest first.
func (l *Ledger) JudgeRecords() ([]JudgeRecord, error) {
	l.judgeMu.Lock()
	defer l.judgeMu.Unlock()
	return readLines[JudgeRecord](l.judgePath)
}

// RecordEscalation appends one curator escalation.
func (l *Ledger) RecordEscalation(r EscalationRecord) error {
	l.escalationMu.Lock()
	defer l.escalationMu.Unlock()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = l.now()
	}
	return appendLine(l.escalationPath, r)
}

// Escalations returns the escalation ledger, oldest first.
func (l *Ledger) Escalations() ([]EscalationRecord, error) {
	l.escalationMu.Lock()
	defer l.escalationMu.Unlock()
	return readLines[EscalationRecord](l.escalationPath)
}

// #endregion audit

// #region io

func appendLine(path string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

func readEntries(path string) ([]Entry, error) {
	return readLines[Entry](path)
}

func readLines[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []T
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return out, nil
}

func rewriteEntries(path string, entries []Entry) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", tmp, err)
	}
	w := bufio.NewWriter(f)
	for _, e := range entries {
		body, err := json.Marshal(e)
		if err != nil {
			f.Close()
			return fmt.Errorf("marshal record: %w", err)
		}
		w.Write(body)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}

// #endregion io
