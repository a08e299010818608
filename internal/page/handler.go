package page

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/dom"
)

type Handler struct {
	dispatcher *Dispatcher
}

func NewHandler(dispatcher *Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, Home)
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, chi.URLParam(r, "page"))
}

// Serve renders a fixed page, for routes that share a path prefix with
// other handlers.
func (h *Handler) Serve(id string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, id)
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, id string) {
	log := config.WithContext(r.Context()).WithField("page", id)

	status := http.StatusOK
	if !Known(id) {
		status = http.StatusNotFound
	}

	doc := Shell(id)
	if _, err := h.dispatcher.Dispatch(r, doc); err != nil {
		log.WithError(err).Error("Failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := dom.Render(&buf, doc); err != nil {
		log.WithError(err).Error("Failed to serialize page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("Failed to write page")
	}
}
