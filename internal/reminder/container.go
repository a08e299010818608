package reminder

import (
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	"github.com/saulo-duarte/ignite-guild/internal/storage"
)

type Container struct {
	View    *View
	Handler *Handler
	Service Service
}

func NewContainer(store storage.Store, tasks []guild.Task) *Container {
	repo := NewRepository(store)
	service := NewService(repo, len(tasks))

	return &Container{
		View:    NewView(tasks, service),
		Handler: NewHandler(service, tasks),
		Service: service,
	}
}
