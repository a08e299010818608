package directory

import (
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

const (
	GridID   = "member-grid"
	SearchID = "member-search"

	// QueryParam carries the search text.
	QueryParam = "q"

	NoResults = "No members found."
)

type View struct {
	members []guild.Member
}

func NewView(members []guild.Member) *View {
	return &View{members: members}
}

func (v *View) Init(r *http.Request, doc *html.Node) error {
	grid := dom.ByID(doc, GridID)
	search := dom.ByID(doc, SearchID)
	if grid == nil || search == nil {
		return nil
	}

	query := strings.TrimSpace(r.URL.Query().Get(QueryParam))
	dom.SetAttr(search, "value", query)

	dom.Clear(grid)
	dom.Append(grid, Render(Filter(v.members, query))...)
	return nil
}

func Render(members []guild.Member) []*html.Node {
	if len(members) == 0 {
		return []*html.Node{dom.ElText("p", NoResults)}
	}

	cards := make([]*html.Node, 0, len(members))
	for _, m := range members {
		details := dom.Append(dom.El("div", "class", "member-details"),
			dom.ElText("h4", m.Name),
			dom.ElText("p", "@"+m.Username),
			dom.ElText("p", m.Role),
		)
		cards = append(cards, dom.Append(dom.El("div", "class", "member-card"),
			Avatar("member-avatar", m.Name),
			details,
		))
	}
	return cards
}
