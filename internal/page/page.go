// Package page builds the hosting document of each site page and hands it
// to the one view that owns that page.
package page

import (
	"net/http"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
)

// Page identifiers, carried as the id of the body element.
const (
	Home      = "home"
	Events    = "events"
	Calendar  = "calendar"
	Reminders = "reminders"
	Directory = "directory"
	Council   = "council"
)

// View fills its mount points in doc. A view whose mount points are missing
// leaves doc untouched and returns nil.
type View interface {
	Init(r *http.Request, doc *html.Node) error
}

type Views struct {
	Events    View
	Calendar  View
	Reminders View
	Directory View
	Council   View
}

type Dispatcher struct {
	views Views
}

func NewDispatcher(views Views) *Dispatcher {
	return &Dispatcher{views: views}
}

// Dispatch reads the body id of doc and runs exactly one view. It reports
// false when the id matches no view.
func (d *Dispatcher) Dispatch(r *http.Request, doc *html.Node) (bool, error) {
	body := dom.ByTag(doc, "body")
	if body == nil {
		return false, nil
	}

	var view View
	switch dom.Attr(body, "id") {
	case Events:
		view = d.views.Events
	case Calendar:
		view = d.views.Calendar
	case Reminders:
		view = d.views.Reminders
	case Directory:
		view = d.views.Directory
	case Council:
		view = d.views.Council
	}
	if view == nil {
		return false, nil
	}
	return true, view.Init(r, doc)
}
