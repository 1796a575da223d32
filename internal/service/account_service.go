package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rmelo/users-api/internal/domain"
	"github.com/rmelo/users-api/internal/service/auth"
	"github.com/rmelo/users-api/internal/store"
	"github.com/rmelo/users-api/internal/validation"
)

// AccountService orchestrates account operations: it validates input,
// performs the relevant business check (uniqueness for registration,
// existence and password match for login), and delegates persistence to
// the UserStore. It is stateless across calls.
type AccountService interface {
	// Register creates a new account from raw input.
	// Returns a validation.ErrorList for invalid input, ErrEmailTaken when
	// the email already belongs to an account, or the persisted user.
	Register(ctx context.Context, input validation.UserInput) (*domain.User, error)

	// Login authenticates raw credentials.
	// Returns a validation.ErrorList for invalid input, store.ErrUserNotFound
	// for an unknown email, ErrIncorrectPassword on mismatch, or the stored user.
	Login(ctx context.Context, input validation.UserInput) (*domain.User, error)

	// ChangePassword replaces the password of the account identified by the
	// input email with the submitted password, re-hashed.
	// Returns store.ErrUserNotFound for an unknown email.
	ChangePassword(ctx context.Context, input validation.UserInput) (*domain.User, error)

	// Search returns all users whose name contains the given term,
	// case-insensitive, ordered by name ascending, without password data.
	// Returns ErrNoUsersFound when nothing matches.
	Search(ctx context.Context, term string) ([]*domain.User, error)

	// Get retrieves a single user by ID.
	// Returns store.ErrUserNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// accountService is the production AccountService backed by a UserStore
// and a bcrypt hasher.
type accountService struct {
	userStore store.UserStore
	validator *validation.Validator
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// Ensure accountService implements AccountService interface
var _ AccountService = (*accountService)(nil)

// NewAccountService creates an AccountService with the given collaborators.
// If logger is nil, the default logger is used.
func NewAccountService(
	userStore store.UserStore,
	validator *validation.Validator,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		userStore: userStore,
		validator: validator,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "account_service")),
	}
}

// Register implements AccountService.Register.
func (s *accountService) Register(ctx context.Context, input validation.UserInput) (*domain.User, error) {
	data, errs := s.validator.Validate(input, validation.ModeRegistration)
	if len(errs) > 0 {
		return nil, errs
	}

	_, err := s.userStore.GetByEmail(ctx, data.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check email uniqueness", "error", err)
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	user, err := domain.NewUser(data.Name, data.Email, data.Password)
	if err != nil {
		// The validator enforces the same rules, so this only trips on a
		// rule drift between the two layers.
		return nil, validation.ErrorList{{Message: err.Error()}}
	}

	hashed, err := s.hasher.Hash(data.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		// The uniqueness pre-check and the insert are not atomic; a
		// concurrent registration may win the race and the constraint
		// violation must read as the same conflict.
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login implements AccountService.Login.
func (s *accountService) Login(ctx context.Context, input validation.UserInput) (*domain.User, error) {
	data, errs := s.validator.Validate(input, validation.ModeLogin)
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userStore.GetByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, data.Password); err != nil {
		return nil, ErrIncorrectPassword
	}

	s.logger.Debug("user logged in", "user_id", user.ID)
	return user, nil
}

// ChangePassword implements AccountService.ChangePassword.
func (s *accountService) ChangePassword(ctx context.Context, input validation.UserInput) (*domain.User, error) {
	data, errs := s.validator.Validate(input, validation.ModeLogin)
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.userStore.GetByEmail(ctx, data.Email); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	hashed, err := s.hasher.Hash(data.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.UpdatePassword(ctx, data.Email, hashed)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to update password", "error", err)
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return user, nil
}

// Search implements AccountService.Search.
func (s *accountService) Search(ctx context.Context, term string) ([]*domain.User, error) {
	users, err := s.userStore.FindByName(ctx, term)
	if err != nil {
		s.logger.Error("failed to search users", "error", err)
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	if len(users) == 0 {
		return nil, ErrNoUsersFound
	}

	return users, nil
}

// Get implements AccountService.Get.
func (s *accountService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
