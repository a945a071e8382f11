package handler

import (
	"net/http"

	"github.com/ticklist/ticklist/internal/ui"
)

type homeHandler struct{}

func NewHomeHandler() *homeHandler {
	return &homeHandler{}
}

func (h *homeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, "notfound.html", ui.Data{})
}

func serverError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	ui.Render(w, r, "error.html", ui.Data{})
}
