package event

import (
	"net/http"
	"strconv"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

const ListClass = "event-list"

type View struct {
	events []guild.Event
}

func NewView(events []guild.Event) *View {
	return &View{events: events}
}

// Init fills the .event-list mount point with one card per event, ordered by
// date. Pages without the mount point are left untouched.
func (v *View) Init(_ *http.Request, doc *html.Node) error {
	list := dom.ByClass(doc, ListClass)
	if list == nil {
		return nil
	}
	dom.Clear(list)
	dom.Append(list, Render(v.events)...)
	return nil
}

func Render(events []guild.Event) []*html.Node {
	sorted := Sorted(events)
	cards := make([]*html.Node, 0, len(sorted))
	for _, ev := range sorted {
		cards = append(cards, card(ev))
	}
	return cards
}

func card(ev guild.Event) *html.Node {
	date := util.ParseLocalDate(ev.Date)

	dateBox := dom.Append(dom.El("div", "class", "date"),
		dom.ElText("div", strconv.Itoa(date.Day()), "class", "day"),
		dom.ElText("div", util.MonthAbbrev(date), "class", "month"),
	)

	when := dom.Append(dom.El("p"),
		dom.ElText("strong", "Date:"),
		dom.Text(" "+util.LongDate(date)+" \u00a0 "),
		dom.ElText("strong", "Time:"),
		dom.Text(" "+ev.Time),
	)
	where := dom.Append(dom.El("p"),
		dom.ElText("strong", "Location:"),
		dom.Text(" "+ev.Location),
	)

	details := dom.Append(dom.El("div", "class", "details"),
		dom.ElText("h4", ev.Title),
		when,
		where,
		dom.ElText("p", ev.Description),
	)

	return dom.Append(dom.El("div", "class", "event-card"), dateBox, details)
}
