package enrollment

import "github.com/google/uuid"

// EnrollRequest represents the request payload for enrolling a student in a
// course.
type EnrollRequest struct {
	UserID   uuid.UUID `validate:"required"`
	CourseID uuid.UUID `validate:"required"`
}

// DeregisterRequest represents the request payload for removing an
// enrollment.
type DeregisterRequest struct {
	ID uuid.UUID
}

// ListForUserRequest represents the request payload for listing a student's
// enrollments.
type ListForUserRequest struct {
	UserID uuid.UUID
}

// ListForCourseRequest represents the request payload for listing a course's
// enrollments.
type ListForCourseRequest struct {
	CourseID uuid.UUID
}

// Enrollment represents an enrollment DTO for API responses.
type Enrollment struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	CourseID uuid.UUID
}
