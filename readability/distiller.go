// Package readability provides a go-readability based implementation of
// harvest.Distiller, selectable as an alternate boilerplate-removal engine.
package readability

import (
	"strings"

	"github.com/fwojciec/harvest"
	"github.com/go-shiori/go-readability"
)

// Ensure Distiller implements harvest.Distiller at compile time.
var _ harvest.Distiller = (*Distiller)(nil)

// Distiller wraps go-readability to extract main content from HTML.
// go-readability has no comment/table toggles, so DistillOptions are
// accepted for interface compatibility and ignored.
type Distiller struct{}

// NewDistiller creates a new Distiller.
func NewDistiller() *Distiller {
	return &Distiller{}
}

// Distill processes raw HTML and returns the main content.
func (d *Distiller) Distill(rawHTML string, opts harvest.DistillOptions) (*harvest.Distilled, error) {
	if rawHTML == "" {
		return nil, harvest.Errorf(harvest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &harvest.Distilled{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
