package postgres_test

import (
	"context"
	"gmao/pkg/domain"
	"gmao/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	created := createUser(t, pgSQL, "alice@example.com")
	require.NotEqual(t, uuid.Nil, uuid.UUID(created.ID))
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, domain.UserRoleTechnician, created.Role)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pgSQL.CreateUser(ctx, domain.User{
			Name:         "Other",
			Email:        "alice@example.com",
			PasswordHash: "x",
			Role:         domain.UserRoleManager,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := pgSQL.CreateUser(ctx, domain.User{
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: "x",
			Role:         "admin",
		})
		require.ErrorIs(t, err, storage.ErrConstraint)
	})

	t.Run("by email", func(t *testing.T) {
		u, err := pgSQL.UserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, created.ID, u.ID)
		require.Equal(t, "$2a$10$hash", u.PasswordHash)

		missing, err := pgSQL.UserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("by id", func(t *testing.T) {
		u, err := pgSQL.UserByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, "alice@example.com", u.Email)

		missing, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}
