//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/platform/postgres"
	"github.com/correialeo/meandai/internal/store"
	"github.com/correialeo/meandai/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserStore_Integration(t *testing.T) {
	db := testdb.GetTestDB(t)
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		exerciseUserStore(t, tx)
	})
}

func exerciseUserStore(t *testing.T, tx *sql.Tx) {
	ctx := context.Background()
	s := postgres.NewPostgresUserStore(tx, nil)

	user, err := domain.NewUser("Ana", "ana.integration@example.com", "Analyst", "Data", "$2a$04$hash")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, user))

	dup, err := domain.NewUser("Other", "ANA.integration@example.com", "", "", "$2a$04$hash")
	require.NoError(t, err)
	// Run the duplicate insert in a savepoint so the outer transaction survives.
	_, err = tx.ExecContext(ctx, "SAVEPOINT dup")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Create(ctx, dup), store.ErrEmailExists)
	_, err = tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT dup")
	require.NoError(t, err)

	got, err := s.GetByEmail(ctx, "Ana.Integration@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, got.UpdateProfile("Ana S.", "Engineer", "Platform"))
	require.NoError(t, s.Update(ctx, got))

	reloaded, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana S.", reloaded.Name)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	require.NoError(t, s.Delete(ctx, user.ID))
	assert.ErrorIs(t, s.Delete(ctx, user.ID), store.ErrUserNotFound)
}
