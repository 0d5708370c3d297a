package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of harvest.Extractor.
type Extractor struct {
	CanHandleFn func(source string) bool
	ExtractFn   func(ctx context.Context, source string) ([]*harvest.Item, error)
}

func (e *Extractor) CanHandle(source string) bool {
	return e.CanHandleFn(source)
}

func (e *Extractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	return e.ExtractFn(ctx, source)
}
