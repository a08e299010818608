package event

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

type Handler struct {
	events []guild.Event
	now    func() time.Time
}

func NewHandler(events []guild.Event, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{events: events, now: now}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sorted := Sorted(h.events)
	responses := make([]EventResponse, 0, len(sorted))
	for _, ev := range sorted {
		responses = append(responses, toResponse(ev))
	}
	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) ICS(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "inline; filename=ignite-events.ics")
	if _, err := w.Write([]byte(Feed(h.events, h.now()))); err != nil {
		log.WithError(err).Error("Failed to write events feed")
	}
}
