package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/saulo-duarte/ignite-guild/internal/calendar"
	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/council"
	"github.com/saulo-duarte/ignite-guild/internal/directory"
	"github.com/saulo-duarte/ignite-guild/internal/event"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	"github.com/saulo-duarte/ignite-guild/internal/page"
	"github.com/saulo-duarte/ignite-guild/internal/reminder"
	"github.com/saulo-duarte/ignite-guild/internal/router"
	"github.com/saulo-duarte/ignite-guild/internal/storage"
	"github.com/saulo-duarte/ignite-guild/internal/visitor"
)

type Container struct {
	EventContainer     *event.Container
	CalendarContainer  *calendar.Container
	ReminderContainer  *reminder.Container
	DirectoryContainer *directory.Container
	CouncilContainer   *council.Container

	PageHandler    *page.Handler
	VisitorHandler *visitor.Handler
	Visitors       *visitor.Tokens

	Store     storage.Store
	Scheduler *reminder.Scheduler

	csrfKey      []byte
	cookieSecure bool
}

// New wires every feature from cfg. The returned container owns the store;
// call Close when done.
func New(cfg *config.Config) (*Container, error) {
	log := config.Logger

	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
		}
		time.Local = loc
	}

	data := guild.Default()
	if cfg.DataFile != "" {
		loaded, err := guild.Load(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		data = loaded
		log.WithField("path", cfg.DataFile).Info("Loaded guild data")
	}

	secret := cfg.VisitorSecret
	if secret == "" {
		log.Warn("VISITOR_SECRET not set, visitor cookies will not survive a restart")
		secret = visitor.RandomSecret()
	}
	tokens, err := visitor.NewTokens(secret, 0)
	if err != nil {
		return nil, err
	}

	csrfKey := []byte(cfg.CSRFKey)
	if len(csrfKey) == 0 {
		log.Warn("CSRF_KEY not set, using a random key")
		csrfKey = securecookie.GenerateRandomKey(32)
		if csrfKey == nil {
			return nil, errors.New("generate csrf key")
		}
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	events := data.Events()
	eventContainer := event.NewContainer(events, time.Now)
	calendarContainer := calendar.NewContainer(events, time.Now)
	reminderContainer := reminder.NewContainer(store, data.Tasks())
	directoryContainer := directory.NewContainer(data.Members())
	councilContainer := council.NewContainer(data.Members())

	dispatcher := page.NewDispatcher(page.Views{
		Events:    eventContainer.View,
		Calendar:  calendarContainer.View,
		Reminders: reminderContainer.View,
		Directory: directoryContainer.View,
		Council:   councilContainer.View,
	})

	c := &Container{
		EventContainer:     eventContainer,
		CalendarContainer:  calendarContainer,
		ReminderContainer:  reminderContainer,
		DirectoryContainer: directoryContainer,
		CouncilContainer:   councilContainer,
		PageHandler:        page.NewHandler(dispatcher),
		VisitorHandler:     visitor.NewHandler(cfg.CookieSecure),
		Visitors:           tokens,
		Store:              store,
		csrfKey:            csrfKey,
		cookieSecure:       cfg.CookieSecure,
	}

	if cfg.ReminderResetCron != "" {
		scheduler, err := reminder.NewScheduler(cfg.ReminderResetCron, time.Local, reminderContainer.Service)
		if err != nil {
			store.Close()
			return nil, err
		}
		c.Scheduler = scheduler
		log.WithField("schedule", cfg.ReminderResetCron).Info("Reminder reset scheduled")
	}

	return c, nil
}

func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		PageHandler:      c.PageHandler,
		EventHandler:     c.EventContainer.Handler,
		CalendarHandler:  c.CalendarContainer.Handler,
		ReminderHandler:  c.ReminderContainer.Handler,
		DirectoryHandler: c.DirectoryContainer.Handler,
		VisitorHandler:   c.VisitorHandler,
		Visitors:         c.Visitors,
		CSRFKey:          c.csrfKey,
		CookieSecure:     c.cookieSecure,
	})
}

// Start launches background jobs.
func (c *Container) Start() {
	if c.Scheduler != nil {
		c.Scheduler.Start()
	}
}

func (c *Container) Close(ctx context.Context) error {
	if c.Scheduler != nil {
		c.Scheduler.Stop(ctx)
	}
	return c.Store.Close()
}
