package services

import (
	"sync"

	"poisar-hisap/internal/models"

	"github.com/google/uuid"
)

// CaptureSession orders the parse outcomes of one capture surface. Slow
// webhook responses can land out of order; the session keeps whichever
// submission started last, so a save always observes the most recent
// utterance.
type CaptureSession struct {
	mu        sync.Mutex
	nextSeq   uint64
	latestSeq uint64
	latest    *models.ExpenseDraft
}

// Begin reserves the sequence slot for a new submission
func (s *CaptureSession) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Complete records a finished submission. A result from an older slot than
// the one already recorded is discarded; the bool reports acceptance.
func (s *CaptureSession) Complete(seq uint64, draft *models.ExpenseDraft) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.latestSeq {
		return false
	}

	s.latestSeq = seq
	s.latest = draft
	return true
}

// Latest returns the most recent draft and its sequence slot; nil when
// nothing has completed yet.
func (s *CaptureSession) Latest() (*models.ExpenseDraft, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.latestSeq
}

// Clear drops the recorded draft after a save or discard
func (s *CaptureSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = nil
}

// SessionRegistry hands out one capture session per owner
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*CaptureSession
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[uuid.UUID]*CaptureSession),
	}
}

// Get returns the owner's session, creating it on first use
func (r *SessionRegistry) Get(ownerID uuid.UUID) *CaptureSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[ownerID]
	if !ok {
		session = &CaptureSession{}
		r.sessions[ownerID] = session
	}
	return session
}

// Pending counts sessions currently holding an unconsumed draft
func (r *SessionRegistry) Pending() int {
	r.mu.Lock()
	sessions := make([]*CaptureSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	r.mu.Unlock()

	count := 0
	for _, session := range sessions {
		if draft, _ := session.Latest(); draft != nil {
			count++
		}
	}
	return count
}
