package course

import "context"

// Usecase defines the interface for course business logic operations.
type Usecase interface {
	CreateCourse(ctx context.Context, in CreateCourseRequest) (*Course, error)
	GetCourse(ctx context.Context, in GetCourseRequest) (*Course, error)
	ListCourses(ctx context.Context) ([]Course, error)
	UpdateCourse(ctx context.Context, in UpdateCourseRequest) (*Course, error)
	DeleteCourse(ctx context.Context, in DeleteCourseRequest) error
}
