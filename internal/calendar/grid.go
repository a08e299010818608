package calendar

import (
	"time"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type CellKind int

const (
	CellPrevMonth CellKind = iota
	CellDay
	CellNextMonth
)

func (k CellKind) String() string {
	switch k {
	case CellPrevMonth:
		return "prev"
	case CellDay:
		return "day"
	case CellNextMonth:
		return "next"
	default:
		return "unknown"
	}
}

func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Cell struct {
	Kind CellKind `json:"kind"`
	Day  int      `json:"day"`
	// Events is set only for in-month days.
	Events []guild.Event `json:"events,omitempty"`
}

func (c Cell) HasEvents() bool {
	return len(c.Events) > 0
}

// Grid is one displayed month laid out in weeks starting on Sunday. Cells
// excludes the weekday header row.
type Grid struct {
	Month           MonthState            `json:"month"`
	FirstWeekday    int                   `json:"first_weekday"`
	DaysInMonth     int                   `json:"days_in_month"`
	DaysInPrevMonth int                   `json:"days_in_prev_month"`
	Cells           []Cell                `json:"cells"`
	Buckets         map[int][]guild.Event `json:"-"`
}

// BuildGrid lays out m and buckets the events falling inside it by day of
// month, keeping source order within a day. The trailing next-month cells
// only pad the last week; no extra row is added when the month ends on a
// Saturday.
func BuildGrid(m MonthState, events []guild.Event) Grid {
	first := m.First()
	g := Grid{
		Month:           m,
		FirstWeekday:    int(first.Weekday()),
		DaysInMonth:     util.DaysIn(m.Year, time.Month(m.Month+1)),
		DaysInPrevMonth: util.DaysIn(m.Year, time.Month(m.Month)),
		Buckets:         make(map[int][]guild.Event),
	}

	for _, ev := range events {
		d := util.ParseLocalDate(ev.Date)
		if d.Year() == m.Year && int(d.Month())-1 == m.Month {
			g.Buckets[d.Day()] = append(g.Buckets[d.Day()], ev)
		}
	}

	nextPad := (7 - (g.FirstWeekday+g.DaysInMonth)%7) % 7
	g.Cells = make([]Cell, 0, g.FirstWeekday+g.DaysInMonth+nextPad)

	for i := g.FirstWeekday; i > 0; i-- {
		g.Cells = append(g.Cells, Cell{Kind: CellPrevMonth, Day: g.DaysInPrevMonth - i + 1})
	}
	for day := 1; day <= g.DaysInMonth; day++ {
		g.Cells = append(g.Cells, Cell{Kind: CellDay, Day: day, Events: g.Buckets[day]})
	}
	for day := 1; day <= nextPad; day++ {
		g.Cells = append(g.Cells, Cell{Kind: CellNextMonth, Day: day})
	}
	return g
}

// EventsOn returns the events on the given day of the displayed month.
func (g Grid) EventsOn(day int) []guild.Event {
	return g.Buckets[day]
}
