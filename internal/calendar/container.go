package calendar

import (
	"time"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

type Container struct {
	View    *View
	Handler *Handler
}

func NewContainer(events []guild.Event, now func() time.Time) *Container {
	view := NewView(events, now)
	return &Container{
		View:    view,
		Handler: NewHandler(view),
	}
}
