package enrollment

import "github.com/google/uuid"

// Enrollment is the join record between a student user and a course.
// At most one enrollment may exist per (UserID, CourseID) pair.
//
// References are checked at creation time only. Deleting a user or a
// course does not retract enrollments pointing at it.
type Enrollment struct {
	ID       uuid.UUID // ID is the unique identifier for the enrollment
	UserID   uuid.UUID // UserID references the enrolled student
	CourseID uuid.UUID // CourseID references the course
}
