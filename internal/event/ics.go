package event

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

const (
	ICSProductID    = "-//Ignite Guild//Events//EN"
	ICSCalendarName = "Ignite Guild Events"
)

// Feed serializes events as an iCalendar document of all-day entries. The
// free-form time text goes into the description.
func Feed(events []guild.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(ICSCalendarName)

	for _, ev := range Sorted(events) {
		day := util.ParseLocalDate(ev.Date)

		e := cal.AddEvent(eventUID(ev))
		e.SetDtStampTime(now.UTC())
		e.SetAllDayStartAt(day)
		e.SetAllDayEndAt(day.AddDate(0, 0, 1))
		e.SetSummary(ev.Title)
		e.SetLocation(ev.Location)
		e.SetDescription(fmt.Sprintf("%s at %s. %s", ev.Time, ev.Location, ev.Description))
	}

	return cal.Serialize()
}

func eventUID(ev guild.Event) string {
	var b strings.Builder
	for _, r := range strings.ToLower(ev.Title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteByte('-')
		}
	}
	return ev.Date + "-" + b.String() + "@ignite-guild"
}
