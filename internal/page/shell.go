package page

import (
	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
)

const SiteName = "Ignite Guild"

type navItem struct {
	id    string
	href  string
	label string
}

var nav = []navItem{
	{Home, "/", "Home"},
	{Events, "/events", "Events"},
	{Calendar, "/calendar", "Calendar"},
	{Reminders, "/reminders", "Reminders"},
	{Directory, "/directory", "Directory"},
	{Council, "/council", "Council"},
}

var titles = map[string]string{
	Home:      "Welcome to Ignite",
	Events:    "Upcoming Events",
	Calendar:  "Guild Calendar",
	Reminders: "Daily Reminders",
	Directory: "Member Directory",
	Council:   "Guild Council",
}

// Known reports whether id names a site page.
func Known(id string) bool {
	_, ok := titles[id]
	return ok
}

// Shell builds the document for page id with its empty mount points. An
// unknown id gets the site frame with a not-found notice and no mount points.
func Shell(id string) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	title := SiteName
	if t, ok := titles[id]; ok && id != Home {
		title = t + " | " + SiteName
	}

	head := dom.Append(dom.El("head"),
		dom.El("meta", "charset", "utf-8"),
		dom.El("meta", "name", "viewport", "content", "width=device-width, initial-scale=1"),
		dom.ElText("title", title),
		dom.El("link", "rel", "stylesheet", "href", "/static/style.css"),
	)

	mainEl := dom.El("main", "class", "container")
	if heading, ok := titles[id]; ok {
		dom.Append(mainEl, dom.ElText("h2", heading))
		dom.Append(mainEl, content(id)...)
	} else {
		dom.Append(mainEl,
			dom.ElText("h2", "Page not found"),
			dom.Append(dom.El("p"), dom.Text("Head back to the "), dom.ElText("a", "home page", "href", "/"), dom.Text(".")),
		)
	}

	body := dom.Append(dom.El("body", "id", id),
		header(id),
		mainEl,
		dom.Append(dom.El("footer"), dom.ElText("p", "© Ignite Guild. Made with 🔥 by our members.")),
	)

	dom.Append(doc, dom.Append(dom.El("html", "lang", "en"), head, body))
	return doc
}

func header(active string) *html.Node {
	links := dom.El("ul")
	for _, item := range nav {
		a := dom.ElText("a", item.label, "href", item.href)
		if item.id == active {
			dom.AddClass(a, "active")
		}
		dom.Append(links, dom.Append(dom.El("li"), a))
	}
	return dom.Append(dom.El("header"),
		dom.Append(dom.El("div", "class", "logo"), dom.ElText("a", SiteName, "href", "/")),
		dom.Append(dom.El("nav"), links),
	)
}

func content(id string) []*html.Node {
	switch id {
	case Home:
		return []*html.Node{
			dom.ElText("p", "Ignite is a friendly Neopets guild for people who love games, events and good company."),
			dom.Append(dom.El("p"),
				dom.ElText("a", "See what's coming up", "href", "/events", "class", "button"),
			),
		}
	case Events:
		return []*html.Node{
			dom.El("div", "class", "event-list"),
			dom.Append(dom.El("p"),
				dom.ElText("a", "Subscribe to the calendar", "href", "/events.ics"),
			),
		}
	case Calendar:
		return []*html.Node{
			dom.Append(dom.El("div", "class", "calendar-controls"),
				dom.ElText("a", "‹ Prev", "id", "prev-month", "class", "button"),
				dom.El("h3", "id", "calendar-month-year"),
				dom.ElText("a", "Next ›", "id", "next-month", "class", "button"),
			),
			dom.El("div", "id", "calendar-grid", "class", "calendar-grid"),
			dom.El("div", "id", "calendar-event-list", "class", "calendar-event-list"),
		}
	case Reminders:
		return []*html.Node{
			dom.ElText("p", "Tick off the dailies as you go. Your checklist is kept for this browser."),
			dom.El("ul", "id", "reminder-list", "class", "reminder-list"),
			dom.El("div", "id", "clear-completed", "class", "reminder-actions"),
		}
	case Directory:
		return []*html.Node{
			dom.Append(dom.El("form", "method", "get", "action", "/directory", "class", "search-bar"),
				dom.El("input",
					"id", "member-search",
					"type", "search",
					"name", "q",
					"placeholder", "Search by name, username or role",
				),
				dom.ElText("button", "Search", "type", "submit", "class", "button"),
			),
			dom.El("div", "id", "member-grid", "class", "member-grid"),
		}
	case Council:
		return []*html.Node{
			dom.El("div", "class", "council-grid"),
		}
	}
	return nil
}
