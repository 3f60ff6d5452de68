package handlers

import (
	"errors"
	"net/http"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/middlewares"
	"github.com/brunofarias87/user-directory/internal/render"
	"github.com/brunofarias87/user-directory/internal/services"
)

// NewRegisterFormHandler returns the handler for the registration page:
// GET renders the form, POST creates the user and redirects to the login
// page, re-rendering the form with an inline message on failure.
func NewRegisterFormHandler(svc UserCreator, pages *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			pages.Page(w, "register.html", render.PageData{})
			return
		}

		name := r.FormValue("name")
		email := r.FormValue("email")
		password := r.FormValue("password")

		_, err := svc.CreateUser(r.Context(), name, email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				pages.Page(w, "register.html", render.PageData{
					Error: "Preencha todos os campos!",
				})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				pages.Page(w, "register.html", render.PageData{
					Error: "Email já cadastrado!",
				})
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
