package bot

import "sync"

// Session actions.
const (
	ActionCreatingTicket = "creating_ticket"
	ActionWritingReview  = "writing_review"
)

// Session tracks a user's in-flight conversational flow.
type Session struct {
	Action   string
	Category string
	Step     string
	Rating   int
}

// SessionStore keeps per-user conversation state. State is in-memory only;
// a restart drops unfinished flows, which matches the single-process design.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns the user's session, if any.
func (s *SessionStore) Get(userID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	copied := *session
	return &copied, true
}

// Set replaces the user's session.
func (s *SessionStore) Set(userID int64, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &session
}

// Clear removes the user's session.
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
