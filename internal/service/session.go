package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/requirements"
)

// SessionState is one session's accumulated pipeline inputs: the loaded
// catalog, the aggregated interest scores, and the graduation requirements.
// Values are copied in and out so concurrent requests always work on their
// own immutable snapshot.
type SessionState struct {
	Courses        []domain.CourseRecord
	InterestScores map[string]float64
	Requirements   requirements.Requirements
}

// SessionStore is an in-memory, per-process store of session state keyed by
// opaque session IDs. Nothing here persists beyond the process; that is a
// deliberate property of the system, not a missing feature.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]SessionState
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]SessionState),
	}
}

// Create allocates a new session and returns its ID.
func (s *SessionStore) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = SessionState{}

	return id
}

// Get returns a snapshot of the session's state. The second return value
// reports whether the session exists.
func (s *SessionStore) Get(id string) (SessionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	return state, ok
}

// SetCourses stores the session's loaded catalog, creating the session if it
// does not exist yet.
func (s *SessionStore) SetCourses(id string, courses []domain.CourseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[id]
	state.Courses = courses
	s.sessions[id] = state
}

// SetInterestScores stores the session's aggregated interest scores.
func (s *SessionStore) SetInterestScores(id string, scores map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[id]
	state.InterestScores = scores
	s.sessions[id] = state
}

// SetRequirements stores the session's graduation requirements.
func (s *SessionStore) SetRequirements(id string, reqs requirements.Requirements) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[id]
	state.Requirements = reqs
	s.sessions[id] = state
}
