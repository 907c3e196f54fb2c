package mirror

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreRecordAndStats(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer s.Close()

	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Kind: KindNormalization, RequestID: "r1", UserID: 1, Question: "q1", Category: "question", CreatedAt: at},
		{Kind: KindJudge, RequestID: "r1", UserID: 1, Question: "q1", Category: "question", Answer: "a1", Verdict: "good", Overall: 4.5, CreatedAt: at},
		{Kind: KindJudge, RequestID: "r2", UserID: 1, Question: "q2", Category: "question", Answer: "a2", Verdict: "bad", Overall: 1, CreatedAt: at},
		{Kind: KindFeedback, RequestID: "r1", UserID: 1, Rating: "helpful", CreatedAt: at},
		{Kind: KindFeedback, RequestID: "r2", UserID: 1, Rating: "not_helpful", CreatedAt: at},
		{Kind: KindEscalation, RequestID: "r2", UserID: 1, Question: "q2", CreatedAt: at},
	}
	for _, ev := range events {
		if err := s.Record(ev); err != nil {
			t.Fatalf("Record(%s): %v", ev.Kind, err)
		}
	}

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Turns != 2 || st.Ratings != 2 || st.Escalations != 1 {
		t.Errorf("counts = %+v", st)
	}
	if math.Abs(st.GoodRate-0.5) > 1e-9 {
		t.Errorf("GoodRate = %v, want 0.5", st.GoodRate)
	}
	if math.Abs(st.CSAT-0.5) > 1e-9 {
		t.Errorf("CSAT = %v, want 0.5", st.CSAT)
	}
	if math.Abs(st.Deflection-0.5) > 1e-9 {
		t.Errorf("Deflection = %v, want 0.5", st.Deflection)
	}
}

func TestStoreRejectsUnknownKind(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer s.Close()

	if err := s.Record(Event{Kind: "telemetry"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

type recordingSink struct {
	events []Event
	err    error
	closed bool
}

func (r *recordingSink) Record(ev Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingSink) Close() error {
	r.closed = true
	return nil
}

func TestDispatcherDeliversToAllSinks(t *testing.T) {
	a := &recordingSink{}
	broken := &recordingSink{err: errors.New("disk full")}
	b := &recordingSink{}

	d := NewDispatcher(a, broken, nil, b)
	d.Publish(Event{Kind: KindJudge, RequestID: "r1"})
	d.Publish(Event{Kind: KindFeedback, RequestID: "r1"})
	d.Close()

	for name, sink := range map[string]*recordingSink{"first": a, "last": b} {
		if len(sink.events) != 2 {
			t.Errorf("%s sink got %d events, want 2", name, len(sink.events))
		}
		if !sink.closed {
			t.Errorf("%s sink not closed", name)
		}
	}
}

func TestDispatcherPublishNeverBlocks(t *testing.T) {
	// Overflow past the queue size must drop, not stall the caller.
	d := NewDispatcher(&recordingSink{})
	for i := 0; i < queueSize*4; i++ {
		d.Publish(Event{Kind: KindJudge})
	}
	d.Close()
}

func TestWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.xlsx")
	wb, err := OpenWorkbook(path)
	if err != nil {
		t.Fatalf("OpenWorkbook: %v", err)
	}
	if err := wb.Record(Event{Kind: KindJudge, RequestID: "r1", UserID: 7, Verdict: "good", Overall: 5}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := wb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen resumes appending below existing rows.
	wb, err = OpenWorkbook(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer wb.Close()
	if err := wb.Record(Event{Kind: KindJudge, RequestID: "r2", UserID: 7, Verdict: "partial", Overall: 3}); err != nil {
		t.Fatalf("Record after reopen: %v", err)
	}
	if got := wb.rows[KindJudge]; got != 3 {
		t.Errorf("judge sheet rows = %d, want header + 2", got)
	}
}
