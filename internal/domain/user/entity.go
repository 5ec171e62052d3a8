package user

import "github.com/google/uuid"

// Role is the access role claimed for or assigned to a user.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User represents a user entity in the system.
// Users are immutable after creation and are never deleted.
type User struct {
	ID    uuid.UUID // ID is the unique identifier for the user
	Name  string    // Name is the full name of the user
	Email string    // Email is the unique email address of the user
	Role  Role      // Role is either student or admin
}
