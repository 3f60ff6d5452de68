package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/middlewares"
	"github.com/brunofarias87/user-directory/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns all users in storage order. Password hashes are never included.
// @Tags users
// @Produce json
// @Success 200 {array} models.User "All users"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
