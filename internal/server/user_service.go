package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcela/resume-studio/internal/config"
	"github.com/marcela/resume-studio/internal/store"
	"github.com/marcela/resume-studio/internal/types"
)

// UserService provides business logic for user account operations.
type UserService struct {
	users          store.UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(users store.UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		users:          users,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := types.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return &u, nil
}

// Login authenticates a user by email and password. Unknown emails and wrong
// passwords both map to ErrInvalidCredentials so the response does not reveal
// which accounts exist.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	u, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		var notFound *store.UserNotFoundError
		if errors.As(err, &notFound) {
			return nil, &ErrInvalidCredentials{}
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, u.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	out := *u
	out.PasswordHash = ""
	return &out, nil
}

// Get returns the user with the given id, without the password hash.
func (s *UserService) Get(ctx context.Context, id string) (*types.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	out := *u
	out.PasswordHash = ""
	return &out, nil
}
