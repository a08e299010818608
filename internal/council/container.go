package council

import "github.com/saulo-duarte/ignite-guild/internal/guild"

type Container struct {
	View *View
}

func NewContainer(members []guild.Member) *Container {
	return &Container{View: NewView(members)}
}
