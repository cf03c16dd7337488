// Package sessionstore keeps issued login sessions in process memory.
// Sessions do not survive a restart; clients just log in again, which is
// acceptable for a single-instance dashboard backend.
package sessionstore

import (
	"context"
	"sync"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/domain"
)

var _ datasources.SessionCreator = (*Store)(nil)
var _ datasources.SessionByTokenHashGetter = (*Store)(nil)

type Store struct {
	mu       sync.RWMutex
	byHash   map[string]domain.Session
}

func New() *Store {
	return &Store{byHash: make(map[string]domain.Session)}
}

func (s *Store) CreateSession(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byHash[session.TokenHash] = session
	return nil
}

func (s *Store) GetSessionByTokenHash(_ context.Context, tokenHash string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.byHash[tokenHash]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return session, nil
}
