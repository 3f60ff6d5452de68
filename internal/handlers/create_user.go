package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/middlewares"
	"github.com/brunofarias87/user-directory/internal/models"
	"github.com/brunofarias87/user-directory/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a user record. Requires name, email and password; the email must be unique. The password is hashed before storing and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body models.CreateUserRequest true "User creation request"
// @Success 201 {object} models.User "User successfully created"
// @Failure 400 {object} models.UserErrorResponse "Missing required fields"
// @Failure 409 {object} models.UserErrorResponse "Email already registered"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.UserErrorResponse{
				Error: "Faltando dados",
			})
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.UserErrorResponse{
					Error: "Faltando dados",
				})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(models.UserErrorResponse{
					Error: "Email já cadastrado",
				})
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.UserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}
