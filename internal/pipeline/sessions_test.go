package pipeline

import (
	"testing"
	"time"
)

func TestSessionStoreTTL(t *testing.T) {
	clock := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := NewSessionStore(time.Hour)
	s.now = func() time.Time { return clock }

	s.Put(Session{RequestID: "r1", UserID: 42, Question: "q", Answer: "a"})

	if _, ok := s.Get("r1"); !ok {
		t.Fatal("fresh session missing")
	}
	if sess, ok := s.LatestFor(42); !ok || sess.RequestID != "r1" {
		t.Fatalf("LatestFor = %+v, %v", sess, ok)
	}

	clock = clock.Add(2 * time.Hour)

	if _, ok := s.Get("r1"); ok {
		t.Error("expired session still readable")
	}
	if _, ok := s.LatestFor(42); ok {
		t.Error("expired session still latest")
	}

	// A Put after expiry sweeps the dead entry out of the maps.
	s.Put(Session{RequestID: "r2", UserID: 7})
	s.mu.Lock()
	if _, ok := s.byID["r1"]; ok {
		t.Error("sweep left expired session behind")
	}
	s.mu.Unlock()
}

func TestSessionStoreLatestFollowsNewestRequest(t *testing.T) {
	s := NewSessionStore(time.Hour)
	s.Put(Session{RequestID: "r1", UserID: 42})
	s.Put(Session{RequestID: "r2", UserID: 42})

	sess, ok := s.LatestFor(42)
	if !ok || sess.RequestID != "r2" {
		t.Errorf("LatestFor = %+v, %v, want r2", sess, ok)
	}
	// The older session stays addressable by its own id for late ratings.
	if _, ok := s.Get("r1"); !ok {
		t.Error("older session dropped while still inside TTL")
	}
}
