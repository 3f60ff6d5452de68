package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/brunofarias87/user-directory/internal/render"
)

// NewGreetingRedirectHandler reads the submitted name and redirects to the
// named greeting page. An absent name falls back to the visitor placeholder.
func NewGreetingRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nome := r.FormValue("nome")
		if nome == "" {
			nome = DefaultVisitorName
		}
		http.Redirect(w, r, "/saudacao/"+url.PathEscape(nome), http.StatusFound)
	}
}

// NewGreetingHandler renders the greeting page for the name in the URL path.
// No storage access happens here.
func NewGreetingHandler(pages *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nome := pathName(r)
		pages.Page(w, "saudacao.html", render.PageData{Nome: nome})
	}
}

// NewDashboardHandler renders the dashboard page for the name in the URL
// path. The name carries no access control; it is presentation only.
func NewDashboardHandler(pages *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nome := pathName(r)
		pages.Page(w, "dashboard.html", render.PageData{Nome: nome})
	}
}

// pathName extracts the "nome" URL parameter, undoing path escaping.
func pathName(r *http.Request) string {
	nome := chi.URLParam(r, "nome")
	if unescaped, err := url.PathUnescape(nome); err == nil {
		nome = unescaped
	}
	return nome
}
