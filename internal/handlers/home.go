package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/brunofarias87/user-directory/internal/logger"
	"github.com/brunofarias87/user-directory/internal/middlewares"
	"github.com/brunofarias87/user-directory/internal/models"
	"github.com/brunofarias87/user-directory/internal/render"
	"github.com/brunofarias87/user-directory/internal/services"
)

// DefaultVisitorName is used on pages when no user name is known.
const DefaultVisitorName = "Visitante"

// CredentialsVerifier defines the interface that the login service must implement.
type CredentialsVerifier interface {
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
}

// NewHomeHandler returns the handler for the root page: GET renders the
// login form, POST verifies the credentials and redirects to the dashboard.
func NewHomeHandler(svc CredentialsVerifier, pages *render.Renderer) http.HandlerFunc {
	return newLoginFlowHandler(svc, pages, "index.html")
}

// NewLoginPageHandler returns the handler for the standalone /login page.
func NewLoginPageHandler(svc CredentialsVerifier, pages *render.Renderer) http.HandlerFunc {
	return newLoginFlowHandler(svc, pages, "login.html")
}

// newLoginFlowHandler implements the shared login flow. No session or token
// is issued; the only trace of a successful login is the redirect target.
func newLoginFlowHandler(svc CredentialsVerifier, pages *render.Renderer, template string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			pages.Page(w, template, render.PageData{Nome: DefaultVisitorName})
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		user, err := svc.VerifyCredentials(r.Context(), email, password)
		if err != nil {
			// The same message covers unknown email and wrong password.
			if errors.Is(err, services.ErrInvalidCredentials) {
				pages.Page(w, template, render.PageData{
					Nome:  DefaultVisitorName,
					Error: "Email ou senha incorretos!",
				})
				return
			}
			logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/dashboard/"+url.PathEscape(user.Name), http.StatusFound)
	}
}
