package visitor

import (
	"net/http"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

type Handler struct {
	secure bool
}

func NewHandler(secure bool) *Handler {
	return &Handler{secure: secure}
}

// Forget drops the visitor cookie. The next request is issued a new id, so
// the browser starts over with an empty reminder checklist.
func (h *Handler) Forget(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "visitor forgotten",
	})
}
