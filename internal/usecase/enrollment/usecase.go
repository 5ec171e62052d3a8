package enrollment

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	coursedomain "course-enrollment-service/internal/domain/course"
	domain "course-enrollment-service/internal/domain/enrollment"
	userdomain "course-enrollment-service/internal/domain/user"
	"course-enrollment-service/internal/usecase/validation"
	errs "course-enrollment-service/pkg/errors"
)

// Repository defines the interface for enrollment data access operations.
type Repository interface {
	Create(ctx context.Context, e domain.Enrollment) (*domain.Enrollment, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error)
	List(ctx context.Context) ([]domain.Enrollment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Enrollment, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
}

// UserReader resolves referenced users. Only lookups are needed here.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error)
}

// CourseReader resolves referenced courses.
type CourseReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*coursedomain.Course, error)
}

type usecase struct {
	repo     Repository
	users    UserReader
	courses  CourseReader
	log      *zap.Logger
	validate *validator.Validate
}

// New creates an enrollment usecase over the enrollment repository and the
// user/course readers it needs for referential checks.
func New(r Repository, users UserReader, courses CourseReader, log *zap.Logger) Usecase {
	return &usecase{repo: r, users: users, courses: courses, log: log, validate: validator.New()}
}

// Enroll creates an enrollment after checking, in order, that the referenced
// user exists and is a student, that the referenced course exists, and that
// the (user, course) pair is not already enrolled.
func (uc *usecase) Enroll(ctx context.Context, in EnrollRequest) (*Enrollment, error) {
	uc.log.Info("enrolling student",
		zap.String("user_id", in.UserID.String()),
		zap.String("course_id", in.CourseID.String()),
	)

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	u, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		uc.log.Error("failed to resolve user", zap.String("user_id", in.UserID.String()), zap.Error(err))
		return nil, err
	}
	if u == nil || u.Role != userdomain.RoleStudent {
		uc.log.Warn("student not found or not a student", zap.String("user_id", in.UserID.String()))
		return nil, errs.NewNotFoundError("student", "Student not found or not a student")
	}

	c, err := uc.courses.GetByID(ctx, in.CourseID)
	if err != nil {
		uc.log.Error("failed to resolve course", zap.String("course_id", in.CourseID.String()), zap.Error(err))
		return nil, err
	}
	if c == nil {
		uc.log.Warn("course not found", zap.String("course_id", in.CourseID.String()))
		return nil, errs.NewNotFoundError("course", "Course not found")
	}

	existing, err := uc.repo.FindByUserAndCourse(ctx, in.UserID, in.CourseID)
	if err != nil {
		uc.log.Error("failed to check existing enrollment", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		uc.log.Warn("already enrolled",
			zap.String("user_id", in.UserID.String()),
			zap.String("course_id", in.CourseID.String()),
		)
		return nil, errs.NewAlreadyExistsError("enrollment", "Student already enrolled in this course")
	}

	created, err := uc.repo.Create(ctx, domain.Enrollment{
		UserID:   in.UserID,
		CourseID: in.CourseID,
	})
	if err != nil {
		uc.log.Error("failed to create enrollment", zap.Error(err))
		return nil, err
	}

	return toDTO(created), nil
}

// Deregister removes an enrollment by ID. The caller's ownership of the
// enrollment is not checked: the transport supplies only a role claim, so
// any student can remove any enrollment. Known gap, kept on purpose.
func (uc *usecase) Deregister(ctx context.Context, in DeregisterRequest) error {
	uc.log.Info("deregistering enrollment", zap.String("id", in.ID.String()))

	deleted, err := uc.repo.Delete(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to delete enrollment", zap.String("id", in.ID.String()), zap.Error(err))
		return err
	}
	if deleted == nil {
		uc.log.Warn("enrollment not found", zap.String("id", in.ID.String()))
		return errs.NewNotFoundError("enrollment", "Enrollment not found")
	}
	return nil
}

// ForceDeregister removes an enrollment on behalf of an admin. Same
// semantics as Deregister; the admin gate lives at the transport.
func (uc *usecase) ForceDeregister(ctx context.Context, in DeregisterRequest) error {
	uc.log.Info("force deregistering enrollment", zap.String("id", in.ID.String()))
	return uc.Deregister(ctx, in)
}

// ListForUser returns a student's enrollments. The user is the anchor
// entity: if it is absent or not a student the call fails, while a student
// with no enrollments gets an empty list.
func (uc *usecase) ListForUser(ctx context.Context, in ListForUserRequest) ([]Enrollment, error) {
	u, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		uc.log.Error("failed to resolve user", zap.String("user_id", in.UserID.String()), zap.Error(err))
		return nil, err
	}
	if u == nil || u.Role != userdomain.RoleStudent {
		uc.log.Warn("student not found or not a student", zap.String("user_id", in.UserID.String()))
		return nil, errs.NewNotFoundError("student", "Student not found or not a student")
	}

	records, err := uc.repo.ListByUser(ctx, in.UserID)
	if err != nil {
		uc.log.Error("failed to list enrollments for user", zap.String("user_id", in.UserID.String()), zap.Error(err))
		return nil, err
	}
	return toDTOs(records), nil
}

// ListForCourse returns a course's enrollments, with the course as anchor
// entity.
func (uc *usecase) ListForCourse(ctx context.Context, in ListForCourseRequest) ([]Enrollment, error) {
	c, err := uc.courses.GetByID(ctx, in.CourseID)
	if err != nil {
		uc.log.Error("failed to resolve course", zap.String("course_id", in.CourseID.String()), zap.Error(err))
		return nil, err
	}
	if c == nil {
		uc.log.Warn("course not found", zap.String("course_id", in.CourseID.String()))
		return nil, errs.NewNotFoundError("course", "Course not found")
	}

	records, err := uc.repo.ListByCourse(ctx, in.CourseID)
	if err != nil {
		uc.log.Error("failed to list enrollments for course", zap.String("course_id", in.CourseID.String()), zap.Error(err))
		return nil, err
	}
	return toDTOs(records), nil
}

// ListAll returns every enrollment, including ones whose user or course has
// since been deleted.
func (uc *usecase) ListAll(ctx context.Context) ([]Enrollment, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list enrollments", zap.Error(err))
		return nil, err
	}
	return toDTOs(records), nil
}

func toDTO(e *domain.Enrollment) *Enrollment {
	return &Enrollment{
		ID:       e.ID,
		UserID:   e.UserID,
		CourseID: e.CourseID,
	}
}

func toDTOs(records []domain.Enrollment) []Enrollment {
	out := make([]Enrollment, len(records))
	for i, e := range records {
		out[i] = *toDTO(&e)
	}
	return out
}
