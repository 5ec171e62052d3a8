package enrollment

import "context"

// Usecase defines the interface for enrollment business logic operations.
type Usecase interface {
	Enroll(ctx context.Context, in EnrollRequest) (*Enrollment, error)
	Deregister(ctx context.Context, in DeregisterRequest) error
	ForceDeregister(ctx context.Context, in DeregisterRequest) error
	ListForUser(ctx context.Context, in ListForUserRequest) ([]Enrollment, error)
	ListForCourse(ctx context.Context, in ListForCourseRequest) ([]Enrollment, error)
	ListAll(ctx context.Context) ([]Enrollment, error)
}
