package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

// Scheduler runs ResetAll on a cron schedule so every checklist starts the
// day empty.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(spec string, loc *time.Location, service Service) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc(spec, func() {
		log := config.Logger.WithField("job", "reminder-reset")
		n, err := service.ResetAll(context.Background())
		if err != nil {
			log.WithError(err).Error("Failed to reset reminders")
			return
		}
		log.WithField("cleared", n).Info("Reset reminder checklists")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder reset schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running reset to finish or ctx to
// expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
