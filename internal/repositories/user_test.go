package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func setupUserSQLiteDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	assert.NoError(t, err)

	// Every pool connection would get its own in-memory database.
	db.SetMaxOpenConns(1)

	err = CreateSchema(context.Background(), db)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	id, err := repo.Save(ctx, "Alice", "alice@example.com", "hash123")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := repo.Save(ctx, "Bob", "bob@example.com", "hash456")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	var user struct {
		Name         string `db:"name"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT name, email, password_hash FROM users WHERE id=?", id)
	assert.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, "Alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	// The UNIQUE constraint on email rejects the second insert.
	_, err = repo.Save(ctx, "Other Alice", "alice@example.com", "hash789")
	assert.Error(t, err)
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "Charlie", "charlie@example.com", "secret")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Charlie", user.Name)
		assert.Equal(t, "secret", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "Dave", "dave@example.com", "secret")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Dave", user.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_List(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		users, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Len(t, users, 0)
	})

	t.Run("All", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "Eve", "eve@example.com", "h1")
		assert.NoError(t, err)
		_, err = writeRepo.Save(ctx, "Frank", "frank@example.com", "h2")
		assert.NoError(t, err)

		users, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserWriteRepository_Update(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "Grace", "grace@example.com", "hash")
	assert.NoError(t, err)

	t.Run("Existing", func(t *testing.T) {
		err := writeRepo.Update(ctx, id, "Grace Hopper", "grace@example.com")
		assert.NoError(t, err)

		user, err := readRepo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "Grace Hopper", user.Name)
		assert.Equal(t, "grace@example.com", user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		err := writeRepo.Update(ctx, 999, "Nobody", "nobody@example.com")
		assert.Error(t, err)
	})
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, teardown := setupUserSQLiteDB(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "Heidi", "heidi@example.com", "hash")
	assert.NoError(t, err)

	t.Run("Existing", func(t *testing.T) {
		err := writeRepo.Delete(ctx, id)
		assert.NoError(t, err)

		user, err := readRepo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, id)
		assert.Error(t, err)
	})
}
