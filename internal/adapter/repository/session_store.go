package repository

import (
	"context"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// SessionStore keeps editing sessions in memory for the life of the process.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]domain.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[uuid.UUID]domain.Session{}, now: time.Now}
}

func (s *SessionStore) Create(_ context.Context, doc model.Document) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	for {
		if _, taken := s.sessions[id]; !taken {
			break
		}
		id = uuid.New()
	}
	now := s.now()
	sess := domain.Session{ID: id, Document: doc.Clone(), CreatedAt: now, UpdatedAt: now}
	s.sessions[id] = sess
	return sess, nil
}

func (s *SessionStore) Get(_ context.Context, id uuid.UUID) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Update applies fn to the current snapshot and stores its result as the new
// snapshot. When fn fails the stored snapshot is left as it was.
func (s *SessionStore) Update(_ context.Context, id uuid.UUID, fn func(model.Document) (model.Document, error)) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	next, err := fn(sess.Document)
	if err != nil {
		return sess, err
	}
	sess.Document = next
	sess.UpdatedAt = s.now()
	s.sessions[id] = sess
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}
