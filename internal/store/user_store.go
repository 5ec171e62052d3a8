// Package store implements the in-memory entity collections backing the
// service. Each collection is a map keyed by generated UUID behind its own
// RWMutex. Uniqueness constraints are re-checked inside the write lock so a
// check-then-insert pair cannot race when the transport serves requests
// concurrently.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-enrollment-service/internal/domain/user"
	errs "course-enrollment-service/pkg/errors"
)

// UserStore holds the user collection.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]user.User
	log   *zap.Logger
}

// NewUserStore creates an empty user store.
func NewUserStore(log *zap.Logger) *UserStore {
	return &UserStore{
		users: make(map[uuid.UUID]user.User),
		log:   log,
	}
}

// Create assigns a fresh ID to u and inserts it. The email uniqueness scan
// runs under the write lock, so two concurrent creates with the same email
// cannot both succeed.
func (s *UserStore) Create(ctx context.Context, u user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, errs.NewAlreadyExistsError("email", "")
		}
	}

	u.ID = uuid.New()
	s.users[u.ID] = u

	s.log.Info("user created", zap.String("id", u.ID.String()), zap.String("email", u.Email))
	return &u, nil
}

// GetByID returns the user with the given ID, or nil if absent.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail returns the first user with the given email, or nil if none.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// List returns all users. Order is not meaningful.
func (s *UserStore) List(ctx context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}
