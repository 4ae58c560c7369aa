package auth

import "errors"

// Token errors
var (
	// ErrInvalidToken indicates the token is malformed, carries a bad
	// signature, or names the wrong issuer or audience.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token is at or past its expiry.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrEmptySubject is returned when a token is requested for an empty
	// subject.
	ErrEmptySubject = errors.New("token subject cannot be empty")
)

// LoginErrorKind classifies a failed login.
type LoginErrorKind int

const (
	// CredentialsRequired means the email or password was blank.
	CredentialsRequired LoginErrorKind = iota + 1
	// InvalidCredentials covers both an unknown email and a wrong password.
	InvalidCredentials
	// InternalFailure is any storage, hashing, or signing failure.
	InternalFailure
)

// Message returns the caller-facing text for the kind.
func (k LoginErrorKind) Message() string {
	switch k {
	case CredentialsRequired:
		return "Email and password are required."
	case InvalidCredentials:
		return "Invalid email or password."
	default:
		return "An error occurred during authentication. Please try again."
	}
}

func (k LoginErrorKind) String() string {
	switch k {
	case CredentialsRequired:
		return "credentials_required"
	case InvalidCredentials:
		return "invalid_credentials"
	case InternalFailure:
		return "internal_failure"
	default:
		return "unknown"
	}
}

// LoginError is returned by LoginService.Login. Error() is always safe to
// show to the caller; the underlying cause is only reachable via Unwrap.
type LoginError struct {
	Kind  LoginErrorKind
	cause error
}

func (e *LoginError) Error() string {
	return e.Kind.Message()
}

func (e *LoginError) Unwrap() error {
	return e.cause
}

// Is matches any LoginError of the same kind, so errors.Is(err,
// ErrInvalidCredentials) holds regardless of the wrapped cause.
func (e *LoginError) Is(target error) bool {
	t, ok := target.(*LoginError)
	return ok && t.Kind == e.Kind
}

// Login errors, one per kind.
var (
	ErrCredentialsRequired = &LoginError{Kind: CredentialsRequired}
	ErrInvalidCredentials  = &LoginError{Kind: InvalidCredentials}
	ErrLoginFailed         = &LoginError{Kind: InternalFailure}
)

func loginFailure(cause error) error {
	return &LoginError{Kind: InternalFailure, cause: cause}
}
