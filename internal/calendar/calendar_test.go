package calendar

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

var events = []guild.Event{
	{Title: "Weekly Game Night", Date: "2025-09-03", Time: "8:00 PM NST", Location: "Guild Chat (Discord)", Description: "Games."},
	{Title: "Council Meeting", Date: "2025-09-07", Time: "7:00 PM NST", Location: "Council Channel", Description: "Closed."},
	{Title: "Charity Auction", Date: "2025-09-21", Time: "3:00 PM NST", Location: "Guild Shop", Description: "Bid."},
	{Title: "Monthly Treasure Hunt", Date: "2025-09-15", Time: "6:00 PM NST", Location: "Guild Forum", Description: "Clues."},
	{Title: "Late Council Follow-up", Date: "2025-09-07", Time: "9:00 PM NST", Location: "Council Channel", Description: "More."},
	{Title: "Next Year", Date: "2026-09-07", Time: "7:00 PM NST", Location: "Elsewhere", Description: "Not this year."},
	{Title: "Halloween Costume Contest", Date: "2025-10-25", Time: "5:00 PM NST", Location: "Guild Hall", Description: "Spooky."},
}

var september2025 = MonthState{Year: 2025, Month: 8}

func TestMonthNavigation(t *testing.T) {
	cases := []struct {
		name string
		got  MonthState
		want MonthState
	}{
		{"NextWithinYear", MonthState{2025, 8}.Next(), MonthState{2025, 9}},
		{"NextRollover", MonthState{2025, 11}.Next(), MonthState{2026, 0}},
		{"PrevWithinYear", MonthState{2025, 8}.Prev(), MonthState{2025, 7}},
		{"PrevRollover", MonthState{2025, 0}.Prev(), MonthState{2024, 11}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Errorf("got %+v, want %+v", c.got, c.want)
			}
		})
	}
}

func TestMonthParam(t *testing.T) {
	if got := september2025.Param(); got != "2025-09" {
		t.Errorf("Param = %s", got)
	}
	m, err := ParseMonth("2025-09")
	if err != nil || m != september2025 {
		t.Errorf("ParseMonth = %+v, %v", m, err)
	}
	if _, err := ParseMonth("September"); err == nil {
		t.Error("ParseMonth should reject non YYYY-MM input")
	}
	if got := september2025.Label(); got != "September 2025" {
		t.Errorf("Label = %s", got)
	}
	if got := CurrentMonth(time.Date(2025, time.January, 31, 23, 0, 0, 0, time.Local)); got != (MonthState{2025, 0}) {
		t.Errorf("CurrentMonth = %+v", got)
	}
}

func TestBuildGridLayout(t *testing.T) {
	cases := []struct {
		name      string
		month     MonthState
		first     int
		days      int
		prevDays  int
		cellCount int
	}{
		{"September2025", MonthState{2025, 8}, 1, 30, 31, 35},
		{"February2026EvenWeeks", MonthState{2026, 1}, 0, 28, 31, 28},
		{"August2025SixWeeks", MonthState{2025, 7}, 5, 31, 31, 42},
		{"January2025", MonthState{2025, 0}, 3, 31, 31, 35},
		{"February2024Leap", MonthState{2024, 1}, 4, 29, 31, 35},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := BuildGrid(c.month, nil)
			if g.FirstWeekday != c.first || g.DaysInMonth != c.days || g.DaysInPrevMonth != c.prevDays {
				t.Errorf("got first=%d days=%d prev=%d", g.FirstWeekday, g.DaysInMonth, g.DaysInPrevMonth)
			}
			if len(g.Cells) != c.cellCount {
				t.Errorf("expected %d cells, got %d", c.cellCount, len(g.Cells))
			}
		})
	}
}

func TestBuildGridCellCountIsWholeWeeks(t *testing.T) {
	for year := 2023; year <= 2027; year++ {
		for month := 0; month < 12; month++ {
			g := BuildGrid(MonthState{year, month}, nil)
			total := g.FirstWeekday + g.DaysInMonth
			want := (total + 6) / 7 * 7
			if len(g.Cells) != want || len(g.Cells)%7 != 0 {
				t.Errorf("%d-%02d: %d cells, want %d", year, month+1, len(g.Cells), want)
			}
		}
	}
}

func TestBuildGridCells(t *testing.T) {
	g := BuildGrid(september2025, events)

	if c := g.Cells[0]; c.Kind != CellPrevMonth || c.Day != 31 {
		t.Errorf("first cell = %+v, want prev-month 31", c)
	}
	if c := g.Cells[1]; c.Kind != CellDay || c.Day != 1 {
		t.Errorf("second cell = %+v, want day 1", c)
	}
	last := g.Cells[len(g.Cells)-1]
	if last.Kind != CellNextMonth || last.Day != 4 {
		t.Errorf("last cell = %+v, want next-month 4", last)
	}

	for _, day := range []int{3, 7, 15, 21} {
		if !g.Cells[day].HasEvents() {
			t.Errorf("day %d should have events", day)
		}
	}
	if g.Cells[4].HasEvents() {
		t.Error("day 4 should be empty")
	}
	if len(g.Buckets) != 4 {
		t.Errorf("expected 4 buckets, got %d", len(g.Buckets))
	}
}

func TestBucketsKeepSourceOrder(t *testing.T) {
	g := BuildGrid(september2025, events)
	got := g.EventsOn(7)
	if len(got) != 2 || got[0].Title != "Council Meeting" || got[1].Title != "Late Council Follow-up" {
		t.Errorf("EventsOn(7) = %+v", got)
	}
}

func TestCalendarSelection(t *testing.T) {
	cal := NewAt(events, september2025)

	cal.Select(7)
	if cal.SelectedDay() != 7 || len(cal.SelectedEvents()) != 2 {
		t.Fatalf("selected %d with %d events", cal.SelectedDay(), len(cal.SelectedEvents()))
	}

	cal.Select(21)
	if got := cal.SelectedEvents(); len(got) != 1 || got[0].Title != "Charity Auction" {
		t.Errorf("selecting 21 should replace the list, got %+v", got)
	}

	cal.Select(4)
	if cal.SelectedDay() != 0 || cal.SelectedEvents() != nil {
		t.Error("selecting an empty day should clear the list")
	}
}

func TestCalendarNavigationClearsSelection(t *testing.T) {
	cal := New(events, time.Date(2025, time.September, 10, 12, 0, 0, 0, time.Local))
	if cal.State() != september2025 {
		t.Fatalf("initial state = %+v", cal.State())
	}

	cal.Select(7)
	cal.NextMonth()
	if cal.State() != (MonthState{2025, 9}) {
		t.Errorf("after next: %+v", cal.State())
	}
	if cal.SelectedDay() != 0 {
		t.Error("navigation should clear the selected day")
	}
	if !cal.Grid().Cells[cal.Grid().FirstWeekday+24].HasEvents() {
		t.Error("October 25 should have an event")
	}

	cal.PrevMonth()
	cal.PrevMonth()
	if cal.State() != (MonthState{2025, 7}) {
		t.Errorf("after two prevs: %+v", cal.State())
	}
}

func calendarDoc() *html.Node {
	return dom.Append(dom.El("body", "id", "calendar"),
		dom.Append(dom.El("div", "class", "calendar-controls"),
			dom.El("a", "id", PrevID),
			dom.El("h3", "id", MonthYearID),
			dom.El("a", "id", NextID),
		),
		dom.El("div", "id", GridID),
		dom.El("div", "id", EventListID),
	)
}

func TestViewInit(t *testing.T) {
	view := NewView(events, func() time.Time { return time.Date(2025, 9, 10, 0, 0, 0, 0, time.Local) })

	t.Run("CurrentMonth", func(t *testing.T) {
		doc := calendarDoc()
		if err := view.Init(httptest.NewRequest(http.MethodGet, "/calendar", nil), doc); err != nil {
			t.Fatal(err)
		}
		if got := dom.TextContent(dom.ByID(doc, MonthYearID)); got != "September 2025" {
			t.Errorf("label = %q", got)
		}
		if got := dom.Attr(dom.ByID(doc, PrevID), "href"); got != "?month=2025-08" {
			t.Errorf("prev href = %q", got)
		}
		if got := dom.Attr(dom.ByID(doc, NextID), "href"); got != "?month=2025-10" {
			t.Errorf("next href = %q", got)
		}

		cells := dom.Children(dom.ByID(doc, GridID))
		if len(cells) != 7+35 {
			t.Errorf("expected 42 grid children, got %d", len(cells))
		}
		if len(dom.AllByClass(doc, "header")) != 7 {
			t.Error("expected 7 header cells")
		}
		if got := len(dom.AllByClass(doc, "has-event")); got != 4 {
			t.Errorf("expected 4 has-event cells, got %d", got)
		}
		if got := len(dom.AllByClass(doc, "other-month")); got != 5 {
			t.Errorf("expected 5 other-month cells, got %d", got)
		}
		if dom.ByID(doc, EventListID).FirstChild != nil {
			t.Error("no day selected, event list should be empty")
		}
	})

	t.Run("SelectedDay", func(t *testing.T) {
		doc := calendarDoc()
		req := httptest.NewRequest(http.MethodGet, "/calendar?month=2025-09&day=7", nil)
		if err := view.Init(req, doc); err != nil {
			t.Fatal(err)
		}

		list := dom.ByID(doc, EventListID)
		if got := dom.TextContent(dom.ByTag(list, "h4")); got != "Events on September 7, 2025" {
			t.Errorf("heading = %q", got)
		}
		items := dom.AllByClass(list, "event-item")
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if text := dom.TextContent(items[0]); !strings.Contains(text, "Council Meeting") || !strings.Contains(text, "7:00 PM NST – Council Channel") {
			t.Errorf("unexpected item text %q", text)
		}
		if dom.ByClass(doc, "selected") == nil {
			t.Error("the selected day cell should be marked")
		}
	})

	t.Run("EmptyDayClearsList", func(t *testing.T) {
		doc := calendarDoc()
		if err := view.Init(httptest.NewRequest(http.MethodGet, "/calendar?month=2025-09&day=4", nil), doc); err != nil {
			t.Fatal(err)
		}
		if dom.ByID(doc, EventListID).FirstChild != nil {
			t.Error("an empty day should leave the list empty")
		}
	})

	t.Run("BadMonthFallsBack", func(t *testing.T) {
		doc := calendarDoc()
		if err := view.Init(httptest.NewRequest(http.MethodGet, "/calendar?month=nope", nil), doc); err != nil {
			t.Fatal(err)
		}
		if got := dom.TextContent(dom.ByID(doc, MonthYearID)); got != "September 2025" {
			t.Errorf("label = %q", got)
		}
	})

	t.Run("MissingMountPoint", func(t *testing.T) {
		doc := dom.Append(dom.El("body"), dom.El("div", "id", GridID))
		if err := view.Init(httptest.NewRequest(http.MethodGet, "/calendar", nil), doc); err != nil {
			t.Fatal(err)
		}
		if dom.ByID(doc, GridID).FirstChild != nil {
			t.Error("Init should no-op when controls are missing")
		}
	})
}

func TestHandlerGrid(t *testing.T) {
	h := NewHandler(NewView(events, nil))
	rec := httptest.NewRecorder()
	h.Grid(rec, httptest.NewRequest(http.MethodGet, "/api/calendar?month=2026-02", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"label":"February 2026"`, `"days_in_month":28`, `"kind":"day"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
}
