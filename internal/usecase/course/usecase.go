package course

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "course-enrollment-service/internal/domain/course"
	"course-enrollment-service/internal/usecase/validation"
	errs "course-enrollment-service/pkg/errors"
)

// Repository defines the interface for course data access operations.
type Repository interface {
	Create(ctx context.Context, c domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	Update(ctx context.Context, id uuid.UUID, title, code *string) (*domain.Course, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

type usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a course usecase backed by the provided repository.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validator.New()}
}

// CreateCourse creates a new course after checking code uniqueness.
func (uc *usecase) CreateCourse(ctx context.Context, in CreateCourseRequest) (*Course, error) {
	uc.log.Info("creating course", zap.String("title", in.Title), zap.String("code", in.Code))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		uc.log.Error("failed to check existing code", zap.String("code", in.Code), zap.Error(err))
		return nil, errs.NewInternalError("failed to validate code uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("course code already exists", zap.String("code", in.Code))
		return nil, errs.NewAlreadyExistsError("course code", "Course with this code already exists")
	}

	created, err := uc.repo.Create(ctx, domain.Course{
		Title: in.Title,
		Code:  in.Code,
	})
	if err != nil {
		uc.log.Error("failed to create course", zap.Error(err))
		return nil, err
	}

	return toDTO(created), nil
}

// GetCourse retrieves a course by ID.
func (uc *usecase) GetCourse(ctx context.Context, in GetCourseRequest) (*Course, error) {
	c, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to get course", zap.String("id", in.ID.String()), zap.Error(err))
		return nil, err
	}
	if c == nil {
		uc.log.Warn("course not found", zap.String("id", in.ID.String()))
		return nil, errs.NewNotFoundError("course", "Course not found")
	}
	return toDTO(c), nil
}

// ListCourses returns all courses.
func (uc *usecase) ListCourses(ctx context.Context) ([]Course, error) {
	domainCourses, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list courses", zap.Error(err))
		return nil, err
	}

	courses := make([]Course, len(domainCourses))
	for i, dc := range domainCourses {
		courses[i] = *toDTO(&dc)
	}
	return courses, nil
}

// UpdateCourse applies a partial update. A supplied code that differs from
// the current one must not collide with another course.
func (uc *usecase) UpdateCourse(ctx context.Context, in UpdateCourseRequest) (*Course, error) {
	uc.log.Info("updating course", zap.String("id", in.ID.String()))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to get course", zap.String("id", in.ID.String()), zap.Error(err))
		return nil, err
	}
	if existing == nil {
		uc.log.Warn("course not found", zap.String("id", in.ID.String()))
		return nil, errs.NewNotFoundError("course", "Course not found")
	}

	if in.Code != nil && *in.Code != existing.Code {
		collision, err := uc.repo.GetByCode(ctx, *in.Code)
		if err != nil {
			uc.log.Error("failed to check existing code", zap.String("code", *in.Code), zap.Error(err))
			return nil, errs.NewInternalError("failed to validate code uniqueness", err)
		}
		if collision != nil {
			uc.log.Warn("course code already exists", zap.String("code", *in.Code))
			return nil, errs.NewAlreadyExistsError("course code", "Course with this code already exists")
		}
	}

	updated, err := uc.repo.Update(ctx, in.ID, in.Title, in.Code)
	if err != nil {
		uc.log.Error("failed to update course", zap.String("id", in.ID.String()), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("course", "Course not found")
	}

	return toDTO(updated), nil
}

// DeleteCourse removes a course. Existing enrollments referencing the course
// are left in place; stale references stay queryable.
func (uc *usecase) DeleteCourse(ctx context.Context, in DeleteCourseRequest) error {
	uc.log.Info("deleting course", zap.String("id", in.ID.String()))

	deleted, err := uc.repo.Delete(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to delete course", zap.String("id", in.ID.String()), zap.Error(err))
		return err
	}
	if deleted == nil {
		uc.log.Warn("course not found", zap.String("id", in.ID.String()))
		return errs.NewNotFoundError("course", "Course not found")
	}
	return nil
}

func toDTO(c *domain.Course) *Course {
	return &Course{
		ID:    c.ID,
		Title: c.Title,
		Code:  c.Code,
	}
}
