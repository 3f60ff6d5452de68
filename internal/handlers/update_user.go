package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/middlewares"
	"github.com/brunofarias87/user-directory/internal/models"
	"github.com/brunofarias87/user-directory/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, name, email *string) (*models.User, error)
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update a user
// @Description Overwrites the provided fields of a user. Omitted fields are left unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param updateUserRequest body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User "Updated user"
// @Failure 404 {object} models.UserErrorResponse "User not found"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// A non-numeric id matches no row, same as an unknown one.
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.UserErrorResponse{
				Error: "Usuário não encontrado",
			})
			return
		}

		var req models.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.UserErrorResponse{
				Error: "Faltando dados",
			})
			return
		}

		user, err := svc.UpdateUser(r.Context(), id, req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.UserErrorResponse{
					Error: "Usuário não encontrado",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
