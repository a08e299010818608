package reminder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves the checklist form posts under /reminders.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/{index}/toggle", h.Toggle)
	r.Post("/clear", h.Clear)
	return r
}

func APIRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	return r
}
