package course

import "github.com/google/uuid"

// CreateCourseRequest represents the request payload for creating a course.
type CreateCourseRequest struct {
	Title string `validate:"required,min=1,max=200"`
	Code  string `validate:"required,min=1,max=50"`
}

// GetCourseRequest represents the request payload for retrieving a course.
type GetCourseRequest struct {
	ID uuid.UUID
}

// UpdateCourseRequest represents a partial update. Nil fields are left
// untouched.
type UpdateCourseRequest struct {
	ID    uuid.UUID `validate:"required"`
	Title *string   `validate:"omitempty,min=1,max=200"`
	Code  *string   `validate:"omitempty,min=1,max=50"`
}

// DeleteCourseRequest represents the request payload for deleting a course.
type DeleteCourseRequest struct {
	ID uuid.UUID
}

// Course represents a course DTO for API responses.
type Course struct {
	ID    uuid.UUID
	Title string
	Code  string
}
