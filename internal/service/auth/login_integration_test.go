//go:build integration

package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/correialeo/meandai/internal/config"
	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/platform/postgres"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/correialeo/meandai/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAgainstPostgres(t *testing.T) {
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		hasher, err := auth.NewBcryptHasher(4, 2)
		require.NoError(t, err)
		tokens, err := auth.NewTokenService(config.AuthConfig{
			JWTSecret:            "integration-secret-that-is-32-chars!!",
			Issuer:               "MeandAI",
			Audience:             "MeandAI_Users",
			TokenExpirationHours: 1,
		})
		require.NoError(t, err)

		users := postgres.NewPostgresUserStore(tx, nil)
		hash, err := hasher.Hash(ctx, "integration-password")
		require.NoError(t, err)
		user, err := domain.NewUser("Ana", "ana.login@example.com", "", "", hash)
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, user))

		login := auth.NewLoginService(users, hasher, tokens, nil)

		issued, err := login.Login(ctx, "ana.login@example.com", "integration-password")
		require.NoError(t, err)
		subject, ok := tokens.GetSubject(ctx, issued.Token)
		require.True(t, ok)
		assert.Equal(t, "ana.login@example.com", subject)

		_, wrongPassword := login.Login(ctx, "ana.login@example.com", "nope-nope")
		_, unknownEmail := login.Login(ctx, "missing.login@example.com", "integration-password")
		assert.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})
}
