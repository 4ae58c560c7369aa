package api

import (
	"errors"
	"net/http"

	"github.com/correialeo/meandai/internal/api/shared"
	"github.com/correialeo/meandai/internal/service"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/correialeo/meandai/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so internal
// error types never reach clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrCredentialsRequired),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, service.ErrIncorrectPassword):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrLoginFailed):
		return http.StatusInternalServerError

	case errors.Is(err, service.ErrUserNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, service.ErrEmailTaken),
		store.IsDuplicateError(err):
		return http.StatusConflict

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var loginErr *auth.LoginError
	if errors.As(err, &loginErr) {
		return loginErr.Kind.Message()
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, service.ErrIncorrectPassword):
		return "Current password is incorrect"

	case errors.Is(err, service.ErrUserNotFound),
		store.IsNotFoundError(err):
		return "User not found"

	case errors.Is(err, service.ErrEmailTaken),
		store.IsDuplicateError(err):
		return "Email already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid user data"

	// Service input errors are composed only of validation text.
	case errors.Is(err, service.ErrInvalidInput):
		return err.Error()

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	default:
		return "An unexpected error occurred"
	}
}

// handleAPIError writes the mapped status and safe message for err and logs
// the full, redacted error.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error, opts ...shared.ResponseOption) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
