package auth

import (
	"context"
	"time"
)

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after the configured
	// lifetime.
	Issue(ctx context.Context, subject string) (*IssuedToken, error)

	// Validate checks the signature, issuer, audience and expiry of token and
	// returns its claims. Any failure is ErrInvalidToken or ErrExpiredToken;
	// malformed input never panics.
	Validate(ctx context.Context, token string) (*Claims, error)

	// GetSubject returns the subject of a valid token.
	GetSubject(ctx context.Context, token string) (string, bool)
}

// Claims are the validated contents of a bearer token.
type Claims struct {
	Subject   string
	Email     string
	Issuer    string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// IssuedToken is a freshly signed token and its validity window.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ExpiresIn time.Duration
}
