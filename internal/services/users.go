package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/models"
)

// Error variables
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name string, email string, passwordHash string) (int64, error)
	Update(ctx context.Context, id int64, name string, email string) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles credential verification and user CRUD.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// CreateUser validates the fields, checks email uniqueness, hashes the
// password and inserts a new user.
func (svc *UserService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	id, err := svc.writer.Save(ctx, name, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.User{ID: id, Name: name, Email: email}, nil
}

// VerifyCredentials authenticates a user by email and password.
func (svc *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user.Public(), nil
}

// ListUsers returns all users, password hashes excluded.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.Public())
	}

	return users, nil
}

// UpdateUser overwrites the provided fields of a user; a nil field is left
// unchanged. Email uniqueness is not re-checked here, matching the storage
// contract at creation time only.
func (svc *UserService) UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "id", id)
		return nil, ErrUserNotFound
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}

	if err := svc.writer.Update(ctx, id, user.Name, user.Email); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}

	return user.Public(), nil
}

// DeleteUser removes a user by id.
func (svc *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "id", id)
		return ErrUserNotFound
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}

	return nil
}
