package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/platform/logger"
	"github.com/correialeo/meandai/internal/redact"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/correialeo/meandai/internal/store"
	"github.com/google/uuid"
)

// MaxPageSize caps the page size accepted by List.
const MaxPageSize = 100

// RegisterParams are the fields needed to create an account.
type RegisterParams struct {
	Name        string
	Email       string
	Password    string
	CurrentRole string
	DesiredArea string
}

// ProfileParams are the mutable descriptive fields of an account.
type ProfileParams struct {
	Name        string
	CurrentRole string
	DesiredArea string
}

// UserService provides account management operations.
type UserService interface {
	// Register creates an account after checking the email is free.
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)

	// GetByID retrieves an account.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List returns one page of accounts and the total number of accounts.
	// page and pageSize start at 1; pageSize is capped at MaxPageSize.
	List(ctx context.Context, page, pageSize int) ([]*domain.User, int, error)

	// UpdateProfile replaces the descriptive fields of an account.
	UpdateProfile(ctx context.Context, id uuid.UUID, params ProfileParams) (*domain.User, error)

	// ChangePassword sets a new password after verifying the current one.
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error

	// ResetPassword sets a new password without checking the current one.
	ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error

	// Delete removes an account.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserServiceImpl implements UserService.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	db        *sql.DB
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a UserService. db is used to open transactions
// around read-modify-write operations.
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, db *sql.DB, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.ValidatePasswordLength(params.Password) {
		return nil, passwordLengthError()
	}

	hash, err := s.hasher.Hash(ctx, params.Password)
	if err != nil {
		log.Error("failed to hash password", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(params.Name, params.Email, params.CurrentRole, params.DesiredArea, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		_, err := txStore.GetByEmail(ctx, user.Email)
		switch {
		case err == nil:
			return ErrEmailTaken
		case !store.IsNotFoundError(err):
			return err
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		err = translateStoreError(err)
		if errors.Is(err, ErrEmailTaken) {
			log.Debug("registration rejected: email taken")
		} else {
			log.Error("failed to register user", "error", redact.Error(err))
		}
		return nil, err
	}

	log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// GetByID implements UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return user, nil
}

// List implements UserService.
func (s *UserServiceImpl) List(ctx context.Context, page, pageSize int) ([]*domain.User, int, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, fmt.Errorf("%w: page and page_size must be at least 1", ErrInvalidInput)
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total, err := s.userStore.Count(ctx)
	if err != nil {
		return nil, 0, translateStoreError(err)
	}

	offset := (page - 1) * pageSize
	if offset >= total {
		return []*domain.User{}, total, nil
	}

	users, err := s.userStore.List(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, translateStoreError(err)
	}
	return users, total, nil
}

// UpdateProfile implements UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, params ProfileParams) (*domain.User, error) {
	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := user.UpdateProfile(params.Name, params.CurrentRole, params.DesiredArea); err != nil {
			return err
		}
		if err := txStore.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, s.logFailure(ctx, "update profile", id, translateStoreError(err))
	}
	return updated, nil
}

// ChangePassword implements UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	return s.setPassword(ctx, id, newPassword, func(ctx context.Context, user *domain.User) error {
		ok, err := s.hasher.Verify(ctx, currentPassword, user.HashedPassword)
		if err != nil {
			return err
		}
		if !ok {
			return ErrIncorrectPassword
		}
		return nil
	})
}

// ResetPassword implements UserService.
func (s *UserServiceImpl) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	return s.setPassword(ctx, id, newPassword, nil)
}

func (s *UserServiceImpl) setPassword(
	ctx context.Context,
	id uuid.UUID,
	newPassword string,
	check func(ctx context.Context, user *domain.User) error,
) error {
	if !domain.ValidatePasswordLength(newPassword) {
		return passwordLengthError()
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return s.logFailure(ctx, "hash password", id, fmt.Errorf("failed to hash password: %w", err))
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(ctx, user); err != nil {
				return err
			}
		}
		if err := user.UpdatePassword(hash); err != nil {
			return err
		}
		return txStore.Update(ctx, user)
	})
	if err != nil {
		return s.logFailure(ctx, "change password", id, translateStoreError(err))
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("password changed", "user_id", id)
	return nil
}

// Delete implements UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return s.logFailure(ctx, "delete user", id, translateStoreError(err))
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("user deleted", "user_id", id)
	return nil
}

// logFailure logs unexpected errors at error level and expected ones at
// debug, then returns err unchanged.
func (s *UserServiceImpl) logFailure(ctx context.Context, op string, id uuid.UUID, err error) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if isExpected(err) {
		log.Debug(op+" rejected", "user_id", id, "reason", err.Error())
	} else {
		log.Error("failed to "+op, "user_id", id, "error", redact.Error(err))
	}
	return err
}

func isExpected(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrIncorrectPassword)
}

func passwordLengthError() error {
	return fmt.Errorf("%w: password must be between %d and %d characters",
		ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
}

// translateStoreError maps store and domain errors onto service errors.
// Errors that are already service errors pass through.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case isExpected(err):
		return err
	case store.IsNotFoundError(err):
		return ErrUserNotFound
	case store.IsDuplicateError(err):
		return ErrEmailTaken
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return fmt.Errorf("user operation failed: %w", err)
	}
}
