// Package trafilatura provides a go-trafilatura based implementation of
// harvest.Distiller, the default boilerplate-removal engine.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/harvest"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Distiller implements harvest.Distiller at compile time.
var _ harvest.Distiller = (*Distiller)(nil)

// Distiller wraps go-trafilatura to extract main content from HTML.
type Distiller struct{}

// NewDistiller creates a new Distiller.
func NewDistiller() *Distiller {
	return &Distiller{}
}

// Distill processes raw HTML and returns the main content.
// A page with no recoverable main content yields an empty ContentHTML.
func (d *Distiller) Distill(rawHTML string, opts harvest.DistillOptions) (*harvest.Distilled, error) {
	if rawHTML == "" {
		return nil, harvest.Errorf(harvest.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: !opts.IncludeComments,
		ExcludeTables:   !opts.IncludeTables,
	})
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &harvest.Distilled{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
