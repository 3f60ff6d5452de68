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

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler for user deletion.
// @Summary Delete a user
// @Description Removes the user with the given id.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.DeleteUserResponse "User deleted"
// @Failure 404 {object} models.UserErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.UserErrorResponse{
				Error: "Usuário não encontrado",
			})
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
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
		json.NewEncoder(w).Encode(models.DeleteUserResponse{
			Message: "Usuário deletado",
		})
	}
}
