package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field validation errors. Each wraps ErrValidation.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyName           = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Password length limits enforced on plaintext before hashing. bcrypt ignores
// everything past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// User is a registered account. Email doubles as the login identifier and the
// subject of issued tokens.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CurrentRole    string    `json:"current_role,omitempty"`
	DesiredArea    string    `json:"desired_area,omitempty"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser builds a User with a fresh ID and timestamps. The password must
// already be hashed.
func NewUser(name, email, currentRole, desiredArea, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Email:          NormalizeEmail(email),
		CurrentRole:    strings.TrimSpace(currentRole),
		DesiredArea:    strings.TrimSpace(desiredArea),
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks that the User holds a complete, well-formed record.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// UpdateProfile replaces the descriptive fields. Email is immutable.
func (u *User) UpdateProfile(name, currentRole, desiredArea string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	u.CurrentRole = strings.TrimSpace(currentRole)
	u.DesiredArea = strings.TrimSpace(desiredArea)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdatePassword stores a new password hash.
func (u *User) UpdatePassword(hashedPassword string) error {
	if hashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	u.HashedPassword = hashedPassword
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// NormalizeEmail trims surrounding whitespace and lowercases the address so
// lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePasswordLength reports whether a plaintext password is within the
// accepted length range.
func ValidatePasswordLength(password string) bool {
	n := len(password)
	return n >= MinPasswordLength && n <= MaxPasswordLength
}

// validateEmailFormat requires a non-empty local part and a dotted domain
// with no whitespace.
func validateEmailFormat(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
