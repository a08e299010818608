package calendar

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

const (
	GridID      = "calendar-grid"
	MonthYearID = "calendar-month-year"
	PrevID      = "prev-month"
	NextID      = "next-month"
	EventListID = "calendar-event-list"
)

type View struct {
	events []guild.Event
	now    func() time.Time
}

func NewView(events []guild.Event, now func() time.Time) *View {
	if now == nil {
		now = time.Now
	}
	return &View{events: events, now: now}
}

// FromRequest rebuilds the calendar state carried in the month and day query
// parameters. A missing or malformed month shows the current one.
func (v *View) FromRequest(r *http.Request) *Calendar {
	q := r.URL.Query()

	m := CurrentMonth(v.now())
	if raw := q.Get("month"); raw != "" {
		parsed, err := ParseMonth(raw)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Debug("Ignoring calendar month parameter")
		} else {
			m = parsed
		}
	}

	cal := NewAt(v.events, m)
	if day, err := strconv.Atoi(q.Get("day")); err == nil {
		cal.Select(day)
	}
	return cal
}

func (v *View) Init(r *http.Request, doc *html.Node) error {
	gridEl := dom.ByID(doc, GridID)
	labelEl := dom.ByID(doc, MonthYearID)
	prevEl := dom.ByID(doc, PrevID)
	nextEl := dom.ByID(doc, NextID)
	if gridEl == nil || labelEl == nil || prevEl == nil || nextEl == nil {
		return nil
	}

	cal := v.FromRequest(r)
	state := cal.State()

	dom.Clear(labelEl)
	dom.Append(labelEl, dom.Text(state.Label()))
	dom.SetAttr(prevEl, "href", monthHref(state.Prev(), 0))
	dom.SetAttr(nextEl, "href", monthHref(state.Next(), 0))

	dom.Clear(gridEl)
	dom.Append(gridEl, RenderGrid(cal.Grid(), cal.SelectedDay())...)

	if listEl := dom.ByID(doc, EventListID); listEl != nil {
		dom.Clear(listEl)
		dom.Append(listEl, RenderDayList(state, cal.SelectedDay(), cal.SelectedEvents())...)
	}
	return nil
}

// RenderGrid returns the weekday header cells followed by one cell per grid
// cell. In-month days link to themselves; days with events select the day,
// empty days clear the selection.
func RenderGrid(g Grid, selected int) []*html.Node {
	nodes := make([]*html.Node, 0, len(Weekdays)+len(g.Cells))
	for _, name := range Weekdays {
		nodes = append(nodes, dom.ElText("div", name, "class", "calendar-day header"))
	}

	for _, cell := range g.Cells {
		num := dom.ElText("div", strconv.Itoa(cell.Day), "class", "date-num")

		if cell.Kind != CellDay {
			nodes = append(nodes, dom.Append(dom.El("div", "class", "calendar-day other-month"), num))
			continue
		}

		link := dom.El("a", "class", "calendar-day")
		if cell.HasEvents() {
			dom.AddClass(link, "has-event")
			dom.SetAttr(link, "href", monthHref(g.Month, cell.Day))
		} else {
			dom.SetAttr(link, "href", monthHref(g.Month, 0))
		}
		if cell.Day == selected {
			dom.AddClass(link, "selected")
		}
		nodes = append(nodes, dom.Append(link, num))
	}
	return nodes
}

// RenderDayList renders the event list below the grid. It is empty when no
// day is selected.
func RenderDayList(m MonthState, day int, events []guild.Event) []*html.Node {
	if day == 0 || len(events) == 0 {
		return nil
	}

	date := time.Date(m.Year, time.Month(m.Month+1), day, 0, 0, 0, 0, time.Local)
	nodes := []*html.Node{dom.ElText("h4", "Events on "+util.LongDate(date))}

	for _, ev := range events {
		nodes = append(nodes, dom.Append(dom.El("div", "class", "event-item"),
			dom.ElText("strong", ev.Title),
			dom.El("br"),
			dom.Text(ev.Time+" – "+ev.Location),
			dom.El("br"),
			dom.Text(ev.Description),
		))
	}
	return nodes
}

func monthHref(m MonthState, day int) string {
	q := url.Values{}
	q.Set("month", m.Param())
	if day > 0 {
		q.Set("day", strconv.Itoa(day))
	}
	return "?" + q.Encode()
}
