package directory

import "github.com/saulo-duarte/ignite-guild/internal/guild"

type Container struct {
	View    *View
	Handler *Handler
}

func NewContainer(members []guild.Member) *Container {
	return &Container{
		View:    NewView(members),
		Handler: NewHandler(members),
	}
}
