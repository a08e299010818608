package calendar

import (
	"net/http"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

type Handler struct {
	view *View
}

func NewHandler(view *View) *Handler {
	return &Handler{view: view}
}

type gridResponse struct {
	Grid
	Label       string `json:"label"`
	SelectedDay int    `json:"selected_day,omitempty"`
}

// Grid returns the month grid as JSON. Query parameters match the page.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	cal := h.view.FromRequest(r)
	config.JSON(w, http.StatusOK, gridResponse{
		Grid:        cal.Grid(),
		Label:       cal.State().Label(),
		SelectedDay: cal.SelectedDay(),
	})
}
