package auth

import (
	"context"
	"strings"
)

// Fixed identity of the API-key principal.
const (
	APIKeySubject     = "api-key-user"
	APIKeyDisplayName = "API Key User"
	RoleAPIUser       = "ApiUser"
)

// Principal is the identity established for one request. It is built by the
// authentication gate and never persisted.
type Principal struct {
	SubjectID   string `json:"subject_id"`
	DisplayName string `json:"display_name"`
	IsAPIKey    bool   `json:"is_api_key"`
	Role        string `json:"role,omitempty"`
}

// NewAPIKeyPrincipal returns the generic principal granted by the static API
// key.
func NewAPIKeyPrincipal() *Principal {
	return &Principal{
		SubjectID:   APIKeySubject,
		DisplayName: APIKeyDisplayName,
		IsAPIKey:    true,
		Role:        RoleAPIUser,
	}
}

// NewBearerPrincipal builds a principal from validated token claims.
func NewBearerPrincipal(claims *Claims) *Principal {
	display := claims.Email
	if display == "" {
		display = claims.Subject
	}
	return &Principal{
		SubjectID:   claims.Subject,
		DisplayName: display,
	}
}

// CanManage reports whether the principal may modify the account owned by
// email. The API-key principal may modify any account.
func (p *Principal) CanManage(email string) bool {
	if p == nil {
		return false
	}
	return p.IsAPIKey || strings.EqualFold(p.SubjectID, email)
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal attached to ctx, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
