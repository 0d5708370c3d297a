package mock

import "github.com/fwojciec/harvest"

var _ harvest.Distiller = (*Distiller)(nil)

// Distiller is a mock implementation of harvest.Distiller.
type Distiller struct {
	DistillFn func(html string, opts harvest.DistillOptions) (*harvest.Distilled, error)
}

func (d *Distiller) Distill(html string, opts harvest.DistillOptions) (*harvest.Distilled, error) {
	return d.DistillFn(html, opts)
}
