package council

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/dom"
)

const NoBio = "No biography provided."

// Raw HTML in bios is dropped; WithUnsafe is not set.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// RenderBio converts a Markdown biography into nodes for the bio container.
// An empty bio renders the placeholder text.
func RenderBio(bio string) ([]*html.Node, error) {
	if bio == "" {
		return []*html.Node{dom.Text(NoBio)}, nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(bio), &buf); err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	return dom.ParseFragment(&buf)
}
