package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/correialeo/meandai/internal/config"
	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/mocks"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/correialeo/meandai/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type loginFixture struct {
	users  *mocks.MockUserStore
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenService
	svc    *auth.LoginService
}

func newLoginFixture(t *testing.T) *loginFixture {
	t.Helper()
	f := &loginFixture{
		users:  mocks.NewMockUserStore(),
		hasher: &mocks.MockPasswordHasher{},
		tokens: &mocks.MockTokenService{},
	}
	f.svc = auth.NewLoginService(f.users, f.hasher, f.tokens, nil)

	user, err := domain.NewUser("Ana", "ana@example.com", "", "", mocks.MockHashPrefix+"s3cret-pass")
	require.NoError(t, err)
	f.users.Seed(user)
	return f
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	f := newLoginFixture(t)

	issued, err := f.svc.Login(context.Background(), "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, mocks.MockTokenPrefix+"ana@example.com", issued.Token)
	assert.Equal(t, time.Hour, issued.ExpiresIn)
}

func TestLogin_CredentialsRequired(t *testing.T) {
	t.Parallel()

	cases := []struct{ email, password string }{
		{"", "x"},
		{"x", ""},
		{"", ""},
		{"   ", "x"},
		{"ana@example.com", " \t "},
	}

	for _, c := range cases {
		f := newLoginFixture(t)
		issued, err := f.svc.Login(context.Background(), c.email, c.password)
		assert.Nil(t, issued)
		assert.ErrorIs(t, err, auth.ErrCredentialsRequired, "%q/%q", c.email, c.password)
		assert.Equal(t, "Email and password are required.", err.Error())
		assert.Zero(t, f.users.GetByEmailCalls(), "store must not be consulted")
		assert.Zero(t, f.hasher.VerifyCalls())
	}
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	t.Parallel()
	f := newLoginFixture(t)
	ctx := context.Background()

	_, wrongPassword := f.svc.Login(ctx, "ana@example.com", "wrong-pass")
	_, unknownEmail := f.svc.Login(ctx, "ghost@example.com", "s3cret-pass")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, "Invalid email or password.", unknownEmail.Error())
}

func TestLogin_InternalFailures(t *testing.T) {
	t.Parallel()

	storeDown := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	tests := []struct {
		name  string
		setup func(f *loginFixture)
	}{
		{
			name: "store failure",
			setup: func(f *loginFixture) {
				f.users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, store.NewStoreError("user", "get", "query failed", storeDown)
				}
			},
		},
		{
			name: "hasher failure",
			setup: func(f *loginFixture) {
				f.hasher.VerifyFn = func(ctx context.Context, plaintext, hash string) (bool, error) {
					return false, context.DeadlineExceeded
				}
			},
		},
		{
			name: "token failure",
			setup: func(f *loginFixture) {
				f.tokens.IssueFn = func(ctx context.Context, subject string) (*auth.IssuedToken, error) {
					return nil, errors.New("signing key unavailable")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newLoginFixture(t)
			tt.setup(f)

			issued, err := f.svc.Login(context.Background(), "ana@example.com", "s3cret-pass")
			assert.Nil(t, issued)
			assert.ErrorIs(t, err, auth.ErrLoginFailed)
			assert.Equal(t, "An error occurred during authentication. Please try again.", err.Error())
			assert.NotContains(t, err.Error(), "10.0.0.5")
		})
	}
}

// TestLogin_EndToEnd wires the real hasher and token service and checks
// that the issued token validates with the account email as subject.
func TestLogin_EndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost, 2)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-long-enough-for-testing",
		Issuer:               "MeandAI",
		Audience:             "MeandAI_Users",
		TokenExpirationHours: 1,
	})
	require.NoError(t, err)

	users := mocks.NewMockUserStore()
	accounts := map[string]string{
		"ana@example.com":   "s3cret-pass",
		"bruno@example.com": "another-pass",
	}
	for email, password := range accounts {
		hash, err := hasher.Hash(ctx, password)
		require.NoError(t, err)
		user, err := domain.NewUser("User", email, "", "", hash)
		require.NoError(t, err)
		users.Seed(user)
	}

	svc := auth.NewLoginService(users, hasher, tokens, nil)
	for email, password := range accounts {
		issued, err := svc.Login(ctx, email, password)
		require.NoError(t, err)

		claims, err := tokens.Validate(ctx, issued.Token)
		require.NoError(t, err)
		assert.Equal(t, email, claims.Subject)
		assert.Equal(t, time.Hour, issued.ExpiresIn)

		_, err = svc.Login(ctx, email, password+"-wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}
}
