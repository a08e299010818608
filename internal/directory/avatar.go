package directory

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/colorhash"
	"github.com/saulo-duarte/ignite-guild/internal/dom"
)

// Avatar is the coloured initial shown on member and council cards.
func Avatar(class, name string) *html.Node {
	return dom.ElText("div", Initial(name),
		"class", class,
		"style", "background-color: "+colorhash.StringToColor(name),
	)
}

func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}
