package calendar

import (
	"time"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

// Calendar holds the navigation state of one calendar page: the displayed
// month and the selected day, if any.
type Calendar struct {
	events   []guild.Event
	state    MonthState
	grid     Grid
	selected int
}

func New(events []guild.Event, now time.Time) *Calendar {
	return NewAt(events, CurrentMonth(now))
}

func NewAt(events []guild.Event, m MonthState) *Calendar {
	c := &Calendar{events: events}
	c.show(m)
	return c
}

func (c *Calendar) show(m MonthState) {
	c.state = m
	c.grid = BuildGrid(m, c.events)
	c.selected = 0
}

func (c *Calendar) PrevMonth() {
	c.show(c.state.Prev())
}

func (c *Calendar) NextMonth() {
	c.show(c.state.Next())
}

// Select shows the events of day. Selecting a day without events clears the
// current selection.
func (c *Calendar) Select(day int) {
	if len(c.grid.EventsOn(day)) == 0 {
		c.selected = 0
		return
	}
	c.selected = day
}

func (c *Calendar) State() MonthState {
	return c.state
}

func (c *Calendar) Grid() Grid {
	return c.grid
}

// SelectedDay returns 0 when no day is selected.
func (c *Calendar) SelectedDay() int {
	return c.selected
}

func (c *Calendar) SelectedEvents() []guild.Event {
	if c.selected == 0 {
		return nil
	}
	return c.grid.EventsOn(c.selected)
}
