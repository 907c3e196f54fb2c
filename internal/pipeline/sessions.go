package pipeline

import (
	"sync"
	"time"
)

// #region sessions

// Session is the transient context of one answered question, kept only as
// long as its rating/escalation buttons remain useful.
type Session struct {
	RequestID string
	UserID    int64
	Question  string
	Answer    string
	CreatedAt time.Time
}

// SessionStore keeps sessions keyed by request id with a bounded TTL,
// plus a per-user index of the latest request for escalation lookup.
// Everything here is reconstructible noise: losing it degrades button
// handling to placeholders, never to errors.
type SessionStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	byID   map[string]Session
	latest map[int64]string
	now    func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:    ttl,
		byID:   make(map[string]Session),
		latest: make(map[int64]string),
		now:    time.Now,
	}
}

// Put stores the session and marks it as the user's latest.
func (s *SessionStore) Put(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.now()
	}
	s.byID[sess.RequestID] = sess
	s.latest[sess.UserID] = sess.RequestID
	s.sweep()
}

// Get returns the session for a request id, if it has not expired.
func (s *SessionStore) Get(requestID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[requestID]
	if !ok || s.expired(sess) {
		return Session{}, false
	}
	return sess, true
}

// LatestFor returns the user's most recent live session.
func (s *SessionStore) LatestFor(userID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.latest[userID]
	if !ok {
		return Session{}, false
	}
	sess, ok := s.byID[id]
	if !ok || s.expired(sess) {
		return Session{}, false
	}
	return sess, true
}

func (s *SessionStore) expired(sess Session) bool {
	return s.now().Sub(sess.CreatedAt) > s.ttl
}

// sweep drops expired sessions. Called under the lock from Put, which
// bounds the map without a janitor goroutine.
func (s *SessionStore) sweep() {
	for id, sess := range s.byID {
		if s.expired(sess) {
			delete(s.byID, id)
			if s.latest[sess.UserID] == id {
				delete(s.latest, sess.UserID)
			}
		}
	}
}

// #endregion sessions
