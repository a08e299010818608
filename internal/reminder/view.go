package reminder

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	"github.com/saulo-duarte/ignite-guild/internal/visitor"
)

const (
	ListID  = "reminder-list"
	ClearID = "clear-completed"

	// CSRFField is the form field carrying the CSRF token.
	CSRFField = "csrf_token"
)

type View struct {
	tasks   []guild.Task
	service Service
}

func NewView(tasks []guild.Task, service Service) *View {
	return &View{tasks: tasks, service: service}
}

// Init renders the checklist for the requesting visitor into #reminder-list
// and the clear form into #clear-completed. Both mount points are required.
func (v *View) Init(r *http.Request, doc *html.Node) error {
	list := dom.ByID(doc, ListID)
	clearEl := dom.ByID(doc, ClearID)
	if list == nil || clearEl == nil {
		return nil
	}

	visitorID, _ := visitor.FromContext(r.Context())
	set := v.service.Load(r.Context(), visitorID)
	token := csrf.Token(r)

	dom.Clear(list)
	dom.Append(list, Render(v.tasks, set, token)...)

	dom.Clear(clearEl)
	dom.Append(clearEl, RenderClear(token))
	return nil
}

// Render returns one list item per task. Each item is a small form that
// posts the toggle as soon as the checkbox changes, with a fallback submit
// button when scripts are off.
func Render(tasks []guild.Task, set CompletionSet, csrfToken string) []*html.Node {
	items := make([]*html.Node, 0, len(tasks))
	for _, task := range tasks {
		done := set.Has(task.ID)

		li := dom.El("li", "class", "reminder-item")
		if done {
			dom.AddClass(li, "completed")
		}

		checkbox := dom.El("input",
			"type", "checkbox",
			"name", "completed",
			"onchange", "this.form.submit()",
		)
		if done {
			dom.SetAttr(checkbox, "checked", "")
		}

		label := dom.ElText("span", task.Title)
		if task.Description != "" {
			dom.SetAttr(label, "title", task.Description)
		}

		form := dom.El("form", "method", "post", "action", TogglePath(task.ID))
		dom.Append(form, tokenField(csrfToken)...)
		dom.Append(form, checkbox, label,
			dom.Append(dom.El("noscript"), dom.ElText("button", "Toggle", "type", "submit", "class", "button")),
		)

		items = append(items, dom.Append(li, form))
	}
	return items
}

func RenderClear(csrfToken string) *html.Node {
	form := dom.El("form", "method", "post", "action", ClearPath)
	dom.Append(form, tokenField(csrfToken)...)
	return dom.Append(form, dom.ElText("button", "Clear Completed", "type", "submit", "class", "button"))
}

const (
	PagePath  = "/reminders"
	ClearPath = "/reminders/clear"
)

func TogglePath(index int) string {
	return "/reminders/" + strconv.Itoa(index) + "/toggle"
}

func tokenField(token string) []*html.Node {
	if token == "" {
		return nil
	}
	return []*html.Node{dom.El("input", "type", "hidden", "name", CSRFField, "value", token)}
}
