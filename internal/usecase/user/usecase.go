package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "course-enrollment-service/internal/domain/user"
	"course-enrollment-service/internal/usecase/validation"
	errs "course-enrollment-service/pkg/errors"
)

// Repository defines the interface for user data access operations.
// It abstracts the entity store from the business logic.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)       // Insert a new user with a generated ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)       // Retrieve user by ID, nil if absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)    // Retrieve user by email, nil if no match
	List(ctx context.Context) ([]domain.User, error)                       // List all users
}

type usecase struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a user usecase backed by the provided repository.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validator.New()}
}

// CreateUser registers a new user after validating the request and checking
// email uniqueness. Registration is public; no role is required.
func (uc *usecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	uc.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email), zap.String("role", in.Role))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, errs.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, errs.NewAlreadyExistsError("email", "Email already registered")
	}

	created, err := uc.repo.Create(ctx, domain.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  domain.Role(in.Role),
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return toDTO(created), nil
}

// GetUser retrieves a user by ID.
func (uc *usecase) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to get user", zap.String("id", in.ID.String()), zap.Error(err))
		return nil, err
	}
	if u == nil {
		uc.log.Warn("user not found", zap.String("id", in.ID.String()))
		return nil, errs.NewNotFoundError("user", "User not found")
	}
	return toDTO(u), nil
}

// ListUsers returns all registered users.
func (uc *usecase) ListUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = *toDTO(&du)
	}
	return users, nil
}

func toDTO(u *domain.User) *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
