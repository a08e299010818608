package council

import (
	"net/http"
	"net/url"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/directory"
	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

const (
	GridClass = "council-grid"

	// OpenParam lists, once per card, the usernames whose bio is expanded.
	OpenParam = "open"

	ShowLabel = "View Bio"
	HideLabel = "Hide Bio"
)

type View struct {
	members []guild.Member
}

// NewView keeps only the council members of the given list.
func NewView(members []guild.Member) *View {
	return &View{members: Members(members)}
}

func (v *View) Init(r *http.Request, doc *html.Node) error {
	grid := dom.ByClass(doc, GridClass)
	if grid == nil {
		return nil
	}

	cards, err := Render(v.members, OpenSet(r.URL.Query()[OpenParam]), r.URL.Path)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to render council cards")
		return err
	}

	dom.Clear(grid)
	dom.Append(grid, cards...)
	return nil
}

// Open is the ordered set of expanded usernames.
type Open []string

func OpenSet(usernames []string) Open {
	seen := make(map[string]bool, len(usernames))
	out := make(Open, 0, len(usernames))
	for _, u := range usernames {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

func (o Open) Has(username string) bool {
	for _, u := range o {
		if u == username {
			return true
		}
	}
	return false
}

// Toggle flips username and leaves every other card as it was.
func (o Open) Toggle(username string) Open {
	out := make(Open, 0, len(o)+1)
	for _, u := range o {
		if u != username {
			out = append(out, u)
		}
	}
	if !o.Has(username) {
		out = append(out, username)
	}
	return out
}

func (o Open) Href(path, anchor string) string {
	href := path
	if len(o) > 0 {
		href += "?" + url.Values{OpenParam: o}.Encode()
	}
	return href + "#" + anchor
}

func Render(members []guild.Member, open Open, path string) ([]*html.Node, error) {
	cards := make([]*html.Node, 0, len(members))
	for _, m := range members {
		card, err := renderCard(m, open, path)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func CardID(username string) string {
	return "council-" + username
}

func renderCard(m guild.Member, open Open, path string) (*html.Node, error) {
	expanded := open.Has(m.Username)

	bioNodes, err := RenderBio(m.Bio)
	if err != nil {
		return nil, err
	}
	bio := dom.Append(dom.El("div", "class", "bio"), bioNodes...)

	label := ShowLabel
	if expanded {
		label = HideLabel
	} else {
		dom.SetAttr(bio, "hidden", "")
	}

	toggle := dom.ElText("a", label,
		"class", "button",
		"role", "button",
		"href", open.Toggle(m.Username).Href(path, CardID(m.Username)),
	)

	card := dom.El("div", "class", "council-card", "id", CardID(m.Username))
	if expanded {
		dom.AddClass(card, "expanded")
	}
	return dom.Append(card,
		directory.Avatar("avatar", m.Name),
		dom.ElText("h4", m.Name),
		dom.ElText("div", m.Role, "class", "role"),
		bio,
		toggle,
	), nil
}
