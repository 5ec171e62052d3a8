package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-enrollment-service/internal/domain/course"
	errs "course-enrollment-service/pkg/errors"
)

// CourseStore holds the course collection.
type CourseStore struct {
	mu      sync.RWMutex
	courses map[uuid.UUID]course.Course
	log     *zap.Logger
}

// NewCourseStore creates an empty course store.
func NewCourseStore(log *zap.Logger) *CourseStore {
	return &CourseStore{
		courses: make(map[uuid.UUID]course.Course),
		log:     log,
	}
}

// Create assigns a fresh ID to c and inserts it. The code uniqueness scan
// runs under the write lock.
func (s *CourseStore) Create(ctx context.Context, c course.Course) (*course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.courses {
		if existing.Code == c.Code {
			return nil, errs.NewAlreadyExistsError("course code", "")
		}
	}

	c.ID = uuid.New()
	s.courses[c.ID] = c

	s.log.Info("course created", zap.String("id", c.ID.String()), zap.String("code", c.Code))
	return &c, nil
}

// GetByID returns the course with the given ID, or nil if absent.
func (s *CourseStore) GetByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByCode returns the first course with the given code, or nil if none.
func (s *CourseStore) GetByCode(ctx context.Context, code string) (*course.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, nil
}

// List returns all courses. Order is not meaningful.
func (s *CourseStore) List(ctx context.Context) ([]course.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]course.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, nil
}

// Update applies the supplied fields to the course with the given ID,
// leaving nil fields untouched. Returns nil if the ID is absent. A new code
// must not collide with another course; the check excludes the record being
// updated and runs under the write lock.
func (s *CourseStore) Update(ctx context.Context, id uuid.UUID, title, code *string) (*course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}

	if code != nil && *code != c.Code {
		for _, existing := range s.courses {
			if existing.ID != id && existing.Code == *code {
				return nil, errs.NewAlreadyExistsError("course code", "")
			}
		}
		c.Code = *code
	}
	if title != nil {
		c.Title = *title
	}

	s.courses[id] = c

	s.log.Info("course updated", zap.String("id", id.String()), zap.String("code", c.Code))
	return &c, nil
}

// Delete removes and returns the course with the given ID, or nil if absent.
// Enrollments referencing the course are left in place.
func (s *CourseStore) Delete(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	delete(s.courses, id)

	s.log.Info("course deleted", zap.String("id", id.String()), zap.String("code", c.Code))
	return &c, nil
}
