package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/validation"
)

// AuthService defines login and user provisioning operations
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	CreateUser(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type authServiceImpl struct {
	tx       Transactor
	userRepo UserStore
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(tx Transactor, userRepo UserStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		tx:       tx,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate checks credentials. Passwords are compared as stored.
func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	var user *models.User
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		user, err = s.userRepo.GetByUsername(ctx, q, username)
		return err
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("username", username).Msg("Login attempt for unknown user")
		}
		return nil, err
	}

	if user.Password != password {
		s.logger.Info().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", username).Str("role", string(user.Role)).Msg("User logged in")
	return user, nil
}

// CreateUser provisions an account
func (s *authServiceImpl) CreateUser(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	username = strings.TrimSpace(username)
	if !validation.ValidIdentifier(username) {
		return nil, fmt.Errorf("%w: username must be 1-32 letters, digits, '-' or '_'", apperrors.ErrValidationFailed)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be admin or teacher", apperrors.ErrValidationFailed)
	}

	user := &models.User{Username: username, Password: password, Role: role}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		return s.userRepo.Create(ctx, q, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", string(role)).Msg("User created")
	return user, nil
}

// ListUsers returns every account ordered by username
func (s *authServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		users, err = s.userRepo.List(ctx, q)
		return err
	})
	return users, err
}

// EnsureAdmin creates an admin account when no account exists yet.
// It reports whether one was created.
func (s *authServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	var n int
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		n, err = s.userRepo.Count(ctx, q)
		return err
	})
	if err != nil || n > 0 {
		return false, err
	}

	if _, err := s.CreateUser(ctx, username, password, models.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
