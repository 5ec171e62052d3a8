package course

import "github.com/google/uuid"

// Course represents a course entity in the system.
type Course struct {
	ID    uuid.UUID // ID is the unique identifier for the course
	Title string    // Title is the display title of the course
	Code  string    // Code is the unique course code
}
