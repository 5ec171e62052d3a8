package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-enrollment-service/internal/domain/enrollment"
	errs "course-enrollment-service/pkg/errors"
)

// EnrollmentStore holds the enrollment collection.
type EnrollmentStore struct {
	mu          sync.RWMutex
	enrollments map[uuid.UUID]enrollment.Enrollment
	log         *zap.Logger
}

// NewEnrollmentStore creates an empty enrollment store.
func NewEnrollmentStore(log *zap.Logger) *EnrollmentStore {
	return &EnrollmentStore{
		enrollments: make(map[uuid.UUID]enrollment.Enrollment),
		log:         log,
	}
}

// Create assigns a fresh ID to e and inserts it. The (user, course) pair
// uniqueness scan runs under the write lock.
func (s *EnrollmentStore) Create(ctx context.Context, e enrollment.Enrollment) (*enrollment.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.enrollments {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return nil, errs.NewAlreadyExistsError("enrollment", "")
		}
	}

	e.ID = uuid.New()
	s.enrollments[e.ID] = e

	s.log.Info("enrollment created",
		zap.String("id", e.ID.String()),
		zap.String("user_id", e.UserID.String()),
		zap.String("course_id", e.CourseID.String()),
	)
	return &e, nil
}

// GetByID returns the enrollment with the given ID, or nil if absent.
func (s *EnrollmentStore) GetByID(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.enrollments[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// FindByUserAndCourse returns the enrollment for the given (user, course)
// pair, or nil if none exists.
func (s *EnrollmentStore) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*enrollment.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return &e, nil
		}
	}
	return nil, nil
}

// List returns all enrollments. Order is not meaningful.
func (s *EnrollmentStore) List(ctx context.Context) ([]enrollment.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]enrollment.Enrollment, 0, len(s.enrollments))
	for _, e := range s.enrollments {
		out = append(out, e)
	}
	return out, nil
}

// ListByUser returns all enrollments referencing the given user.
func (s *EnrollmentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]enrollment.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]enrollment.Enrollment, 0)
	for _, e := range s.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByCourse returns all enrollments referencing the given course.
func (s *EnrollmentStore) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]enrollment.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]enrollment.Enrollment, 0)
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Delete removes and returns the enrollment with the given ID, or nil if
// absent.
func (s *EnrollmentStore) Delete(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.enrollments[id]
	if !ok {
		return nil, nil
	}
	delete(s.enrollments, id)

	s.log.Info("enrollment deleted", zap.String("id", id.String()))
	return &e, nil
}
