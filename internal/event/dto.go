package event

import (
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

type EventResponse struct {
	Title       string         `json:"title"`
	Date        util.LocalDate `json:"date"`
	Time        string         `json:"time"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
}

func toResponse(ev guild.Event) EventResponse {
	return EventResponse{
		Title:       ev.Title,
		Date:        util.NewLocalDate(ev.Date),
		Time:        ev.Time,
		Location:    ev.Location,
		Description: ev.Description,
	}
}
