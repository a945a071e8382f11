package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ticklist/ticklist/internal/ctxkeys"
	"github.com/ticklist/ticklist/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages maps page file names to parsed template sets (layout + page).
// Each page file defines a "content" block rendered inside the layout.
var pages = map[string]*template.Template{}

func init() {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		panic("failed to read templates: " + err.Error())
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}
		pages[name] = template.Must(template.ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name,
		))
	}
}

// Data carries everything a page can render. AppName, User and CSRFToken are
// filled from the request context by Render; handlers set the rest.
type Data struct {
	AppName   string
	User      *model.User
	CSRFToken string

	Error   string
	Message string

	Task       *model.Task
	Tasks      []*model.Task
	FormAction string

	Email    string
	Username string
}

func Render(w http.ResponseWriter, r *http.Request, page string, data Data) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("render failed, unknown page", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		data.AppName = cfg.AppName
	}
	if data.User == nil {
		data.User = ctxkeys.User(r.Context())
	}
	data.CSRFToken = ctxkeys.CSRFToken(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmpl.ExecuteTemplate(w, "layout.html", data)
	if err != nil {
		slog.Error("render failed", "error", err, "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
