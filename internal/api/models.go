package api

import (
	"time"

	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/google/uuid"
)

// LoginRequest defines the payload for the login endpoint. Blank fields are
// reported by the login service, so the payload carries no validation tags.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the signed bearer token.
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires.
	ExpiresAt time.Time `json:"expires_at"`

	ExpiresInSeconds int64 `json:"expires_in_seconds"`
}

// NewLoginResponse converts an issued token into the wire format.
func NewLoginResponse(t *auth.IssuedToken) LoginResponse {
	return LoginResponse{
		Token:            t.Token,
		ExpiresAt:        t.ExpiresAt.UTC(),
		ExpiresInSeconds: int64(t.ExpiresIn.Seconds()),
	}
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name        string `json:"name"                   validate:"required,max=100"`
	Email       string `json:"email"                  validate:"required,email,max=254"`
	Password    string `json:"password"               validate:"required,min=8,max=72"`
	CurrentRole string `json:"current_role,omitempty" validate:"max=100"`
	DesiredArea string `json:"desired_area,omitempty" validate:"max=100"`
}

// UpdateProfileRequest defines the payload for updating a user's profile.
type UpdateProfileRequest struct {
	Name        string `json:"name"                   validate:"required,max=100"`
	CurrentRole string `json:"current_role,omitempty" validate:"max=100"`
	DesiredArea string `json:"desired_area,omitempty" validate:"max=100"`
}

// ChangePasswordRequest defines the payload for changing a password.
// CurrentPassword is required when the caller is the account owner.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password"               validate:"required,min=8,max=72"`
}

// UserResponse is the public representation of an account.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CurrentRole string    `json:"current_role,omitempty"`
	DesiredArea string    `json:"desired_area,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CurrentRole: u.CurrentRole,
		DesiredArea: u.DesiredArea,
		CreatedAt:   u.CreatedAt.UTC(),
		UpdatedAt:   u.UpdatedAt.UTC(),
	}
}

// UserPageResponse is one page of accounts.
type UserPageResponse struct {
	Items      []UserResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalItems int            `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}

func newUserPage(users []*domain.User, page, pageSize, total int) UserPageResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userToResponse(u))
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return UserPageResponse{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
