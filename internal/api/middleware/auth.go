package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/correialeo/meandai/internal/api/shared"
	"github.com/correialeo/meandai/internal/config"
	"github.com/correialeo/meandai/internal/platform/logger"
	"github.com/correialeo/meandai/internal/redact"
	"github.com/correialeo/meandai/internal/service/auth"
)

// Header names and the challenge sent with a 401.
const (
	APIKeyHeader        = "X-API-Key"
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	ChallengeHeader     = "WWW-Authenticate"
	ChallengeValue      = "Bearer, ApiKey"
	UnauthorizedMessage = "Missing or invalid API Key or Bearer token"
)

// EndpointPolicy tells the gate whether the endpoint a request targets
// requires an authenticated principal.
type EndpointPolicy interface {
	RequiresAuth(r *http.Request) bool
}

// EndpointPolicyFunc adapts a function to EndpointPolicy.
type EndpointPolicyFunc func(r *http.Request) bool

// RequiresAuth implements EndpointPolicy.
func (f EndpointPolicyFunc) RequiresAuth(r *http.Request) bool {
	return f(r)
}

// CredentialKind says which credential, if any, established the principal.
type CredentialKind int

const (
	NoCredential CredentialKind = iota
	APIKeyCredential
	BearerCredential
)

func (k CredentialKind) String() string {
	switch k {
	case APIKeyCredential:
		return "api_key"
	case BearerCredential:
		return "bearer"
	default:
		return "none"
	}
}

// Outcome is the result of evaluating a request's credentials. Principal is
// nil exactly when Kind is NoCredential.
type Outcome struct {
	Kind      CredentialKind
	Principal *auth.Principal
}

// CombinedAuth accepts either the static API key or a bearer token. It only
// reads immutable configuration and is safe for concurrent use.
type CombinedAuth struct {
	apiKey []byte
	tokens auth.TokenService
	policy EndpointPolicy
	logger *slog.Logger
}

// NewCombinedAuth creates the gate. A nil policy treats every endpoint as
// public.
func NewCombinedAuth(
	cfg config.AuthConfig,
	tokens auth.TokenService,
	policy EndpointPolicy,
	logger *slog.Logger,
) *CombinedAuth {
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if policy == nil {
		policy = EndpointPolicyFunc(func(*http.Request) bool { return false })
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CombinedAuth{
		apiKey: []byte(cfg.APIKey),
		tokens: tokens,
		policy: policy,
		logger: logger.With(slog.String("component", "auth_gate")),
	}
}

// Evaluate checks the API key first and the bearer token only when the key
// did not match. An invalid bearer token yields NoCredential.
func (a *CombinedAuth) Evaluate(r *http.Request) Outcome {
	if a.apiKeyMatches(r.Header.Get(APIKeyHeader)) {
		return Outcome{Kind: APIKeyCredential, Principal: auth.NewAPIKeyPrincipal()}
	}

	token, ok := bearerToken(r.Header.Get(AuthorizationHeader))
	if !ok {
		return Outcome{Kind: NoCredential}
	}

	claims, err := a.tokens.Validate(r.Context(), token)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), a.logger).Debug("bearer token rejected",
			slog.String("error", redact.Error(err)),
			slog.String("path", r.URL.Path))
		return Outcome{Kind: NoCredential}
	}

	return Outcome{Kind: BearerCredential, Principal: auth.NewBearerPrincipal(claims)}
}

// Authenticate is the request-time gate. It attaches the principal, if any,
// to the request context and rejects requests to protected endpoints that
// carry no valid credential.
func (a *CombinedAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outcome := a.Evaluate(r)

		if outcome.Principal == nil {
			if a.policy.RequiresAuth(r) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage,
					shared.WithHeader(ChallengeHeader, ChallengeValue))
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := auth.WithPrincipal(r.Context(), outcome.Principal)
		ctx = logger.WithLogger(ctx, logger.FromContextOrDefault(ctx, a.logger).With(
			slog.String("auth_kind", outcome.Kind.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *CombinedAuth) apiKeyMatches(provided string) bool {
	if provided == "" || len(a.apiKey) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), a.apiKey) == 1
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	rest, ok := strings.CutPrefix(header, BearerPrefix)
	if !ok {
		return "", false
	}
	token := strings.TrimSpace(rest)
	return token, token != ""
}
