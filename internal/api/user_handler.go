package api

import (
	"net/http"
	"strings"

	"github.com/correialeo/meandai/internal/api/shared"
	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/service"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/google/uuid"
)

// ForbiddenMessage is returned when the principal may not act on an account.
const ForbiddenMessage = "You are not allowed to modify this user"

// UserHandler handles account management requests.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), service.RegisterParams{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CurrentRole: req.CurrentRole,
		DesiredArea: req.DesiredArea,
	})
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/users/"+user.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// List handles GET /users?page=&page_size=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", DefaultPage)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	pageSize, ok := queryInt(r, "page_size", DefaultPageSize)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "page_size must be a positive integer")
		return
	}
	if pageSize > service.MaxPageSize {
		pageSize = service.MaxPageSize
	}

	users, total, err := h.users.List(r.Context(), page, pageSize)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserPage(users, page, pageSize, total))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateProfile handles PUT /users/{id}.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), id, service.ProfileParams{
		Name:        req.Name,
		CurrentRole: req.CurrentRole,
		DesiredArea: req.DesiredArea,
	})
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ChangePassword handles PUT /users/{id}/password. The owner must supply the
// current password; the API-key principal resets it directly.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, principal, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var err error
	if principal.IsAPIKey {
		err = h.users.ResetPassword(r.Context(), id, req.NewPassword)
	} else {
		if strings.TrimSpace(req.CurrentPassword) == "" {
			shared.RespondWithError(w, r, http.StatusBadRequest, "current_password is required")
			return
		}
		err = h.users.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword)
	}
	if err != nil {
		handleAPIError(w, r, err, shared.WithElevatedLogLevel())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		handleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeOwner resolves the {id} account and checks that the principal may
// manage it. It writes the error response and reports false on failure.
func (h *UserHandler) authorizeOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, *auth.Principal, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return uuid.Nil, nil, false
	}
	id, ok := pathUserID(w, r)
	if !ok {
		return uuid.Nil, nil, false
	}

	if principal.IsAPIKey {
		return id, principal, true
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		handleAPIError(w, r, err)
		return uuid.Nil, nil, false
	}
	if !principal.CanManage(user.Email) {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, ForbiddenMessage, domain.ErrUnauthorized,
			shared.WithElevatedLogLevel())
		return uuid.Nil, nil, false
	}
	return id, principal, true
}
