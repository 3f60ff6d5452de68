package render

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/brunofarias87/user-directory/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData carries everything the page templates can reference.
type PageData struct {
	Nome  string // Name shown on the page
	Error string // Inline error message; empty means no error
}

// Renderer renders the embedded HTML page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the named template to the response. A template failure after
// the first byte cannot change the status code anymore, so it is only logged.
func (rnd *Renderer) Page(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rnd.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "err", err)
	}
}
