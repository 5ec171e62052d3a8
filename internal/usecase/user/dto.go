package user

import "github.com/google/uuid"

// CreateUserRequest represents the request payload for registering a user.
type CreateUserRequest struct {
	Name  string `validate:"required,min=1,max=100"`
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=student admin"`
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID uuid.UUID
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}
