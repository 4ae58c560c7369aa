package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/correialeo/meandai/internal/api/shared"
	"github.com/correialeo/meandai/internal/service/auth"
)

// Authenticator exchanges login credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*auth.IssuedToken, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authenticator Authenticator
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authenticator Authenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	token, err := h.authenticator.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var opts []shared.ResponseOption
		if errors.Is(err, auth.ErrInvalidCredentials) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		handleAPIError(w, r, err, opts...)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewLoginResponse(token))
}

// Me handles GET /auth/me and returns the caller's principal.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, principal)
}
