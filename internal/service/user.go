package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/domain"
	domainerrors "github.com/edinacircular/circular-server/internal/errors"
	"github.com/edinacircular/circular-server/internal/id"
	"github.com/edinacircular/circular-server/internal/validation"
)

// UserService handles registration and login.
// There are no sessions: a successful login just returns the user.
type UserService struct {
	store     UserStore
	hasher    *auth.Hasher
	validator *validation.Validator
	logger    *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store UserStore, hasher *auth.Hasher, validator *validation.Validator, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=1024"`
	Name     string `json:"name" validate:"required,notblank"`
	Contact  string `json:"contact"`
	Bio      string `json:"bio"`
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// List returns every user with passwords removed.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return domain.PublicUsers(users), nil
}

// Register creates an account. The email must not already be registered.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate(id.User)
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	user := &domain.User{
		ID:       userID,
		Email:    req.Email,
		Password: passwordHash,
		Name:     req.Name,
		Contact:  req.Contact,
		Bio:      req.Bio,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	public := user.Public()
	return &public, nil
}

// Login checks credentials and returns the user. Unknown emails and wrong
// passwords fail the same way. Accounts still holding a plain-text password
// are moved to a hash on their first successful login.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	invalid := domainerrors.InvalidCredentials("invalid email or password")

	if req.Email == "" || req.Password == "" {
		return nil, invalid
	}

	user, err := s.store.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	ok, needsRehash := s.hasher.Check(user.Password, req.Password)
	if !ok {
		s.logger.Debug("login rejected", "user_id", user.ID)
		return nil, invalid
	}

	if needsRehash {
		s.upgradePassword(ctx, user.ID, req.Password)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	public := user.Public()
	return &public, nil
}

// upgradePassword replaces a legacy plain-text password with a hash. Failure
// is logged and does not fail the login.
func (s *UserService) upgradePassword(ctx context.Context, userID, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn("failed to hash legacy password", "user_id", userID, "error", err)
		return
	}
	if err := s.store.UpdateUserPassword(ctx, userID, hash); err != nil {
		s.logger.Warn("failed to upgrade legacy password", "user_id", userID, "error", err)
		return
	}
	s.logger.Info("legacy password upgraded", "user_id", userID)
}
