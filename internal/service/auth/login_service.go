package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/platform/logger"
	"github.com/correialeo/meandai/internal/redact"
	"github.com/correialeo/meandai/internal/store"
)

// CredentialStore looks up accounts by login email.
type CredentialStore interface {
	// GetByEmail returns store.ErrUserNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LoginService exchanges an email and password for a bearer token.
type LoginService struct {
	users  CredentialStore
	hasher PasswordHasher
	tokens TokenService
	logger *slog.Logger
}

// NewLoginService creates a LoginService. A nil logger falls back to
// slog.Default.
func NewLoginService(users CredentialStore, hasher PasswordHasher, tokens TokenService, logger *slog.Logger) *LoginService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("component", "login_service")),
	}
}

// Login authenticates the credentials and issues a token whose subject is
// the account email. Every failure is a *LoginError: ErrCredentialsRequired,
// ErrInvalidCredentials or ErrLoginFailed.
func (s *LoginService) Login(ctx context.Context, email, password string) (*IssuedToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected", slog.String("reason", "unknown_email"))
			return nil, ErrInvalidCredentials
		}
		log.Error("credential lookup failed", slog.String("error", redact.Error(err)))
		return nil, loginFailure(err)
	}

	ok, err := s.hasher.Verify(ctx, password, user.HashedPassword)
	if err != nil {
		log.Error("password verification failed", slog.String("error", redact.Error(err)))
		return nil, loginFailure(err)
	}
	if !ok {
		log.Debug("login rejected",
			slog.String("reason", "password_mismatch"),
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	issued, err := s.tokens.Issue(ctx, user.Email)
	if err != nil {
		log.Error("token issuance failed", slog.String("error", redact.Error(err)))
		return nil, loginFailure(err)
	}

	log.Info("login succeeded", slog.String("user_id", user.ID.String()))
	return issued, nil
}
