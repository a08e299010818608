package event

import (
	"time"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

type Container struct {
	View    *View
	Handler *Handler
}

func NewContainer(events []guild.Event, now func() time.Time) *Container {
	return &Container{
		View:    NewView(events),
		Handler: NewHandler(events, now),
	}
}
