package mocks

import (
	"context"
	"strings"
	"time"

	"github.com/correialeo/meandai/internal/service/auth"
)

// MockTokenPrefix marks tokens produced by the default Issue behaviour.
const MockTokenPrefix = "mock-token:"

// MockTokenService implements auth.TokenService for testing. By default
// Issue returns MockTokenPrefix+subject and Validate accepts exactly those
// tokens.
type MockTokenService struct {
	IssueFn    func(ctx context.Context, subject string) (*auth.IssuedToken, error)
	ValidateFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Lifetime is used by the default Issue. Zero means one hour.
	Lifetime time.Duration
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements auth.TokenService.
func (m *MockTokenService) Issue(ctx context.Context, subject string) (*auth.IssuedToken, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, subject)
	}
	if subject == "" {
		return nil, auth.ErrEmptySubject
	}
	lifetime := m.Lifetime
	if lifetime == 0 {
		lifetime = time.Hour
	}
	now := time.Now().UTC().Truncate(time.Second)
	return &auth.IssuedToken{
		Token:     MockTokenPrefix + subject,
		IssuedAt:  now,
		ExpiresAt: now.Add(lifetime),
		ExpiresIn: lifetime,
	}, nil
}

// Validate implements auth.TokenService.
func (m *MockTokenService) Validate(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, token)
	}
	subject, ok := strings.CutPrefix(token, MockTokenPrefix)
	if !ok || subject == "" {
		return nil, auth.ErrInvalidToken
	}
	now := time.Now().UTC()
	return &auth.Claims{
		Subject:   subject,
		Email:     subject,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
		ID:        "mock-jti",
	}, nil
}

// GetSubject implements auth.TokenService.
func (m *MockTokenService) GetSubject(ctx context.Context, token string) (string, bool) {
	claims, err := m.Validate(ctx, token)
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}
