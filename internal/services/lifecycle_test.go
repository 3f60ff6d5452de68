package services_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/brunofarias87/user-directory/internal/repositories"
	"github.com/brunofarias87/user-directory/internal/services"
)

// Full lifecycle against real SQLite-backed repositories: create, verify,
// conflict, delete, then operate on the deleted id.
func TestUserLifecycle(t *testing.T) {
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, repositories.CreateSchema(ctx, db))

	svc := services.NewUserService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
	)

	created, err := svc.CreateUser(ctx, "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "ana@x.com", created.Email)

	verified, err := svc.VerifyCredentials(ctx, "ana@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created, verified)

	_, err = svc.VerifyCredentials(ctx, "ana@x.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.CreateUser(ctx, "Bea", "ana@x.com", "x")
	assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	name := "Z"
	_, err = svc.UpdateUser(ctx, created.ID, &name, nil)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	// Credentials of a deleted user never verify again.
	_, err = svc.VerifyCredentials(ctx, "ana@x.com", "secret1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
