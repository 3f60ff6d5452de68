package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all users in storage order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM users
	`

	users := make([]models.UserDB, 0)
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row and returns the assigned id.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (name, email, password_hash)
		VALUES (?, ?, ?)
	`
	args := []any{name, email, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var id int64
	if res != nil {
		id, _ = res.LastInsertId()
	}

	// Log with query in single line; the password hash is not logged
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites name and email of the row with the given id.
// Returns sql.ErrNoRows if no such row exists.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, name, email string) error {
	const query = `
		UPDATE users
		SET name = ?, email = ?
		WHERE id = ?
	`
	args := []any{name, email, id}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes the row with the given id.
// Returns sql.ErrNoRows if no such row exists.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM users
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
