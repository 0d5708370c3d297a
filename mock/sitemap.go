package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of harvest.SitemapSource.
type SitemapSource struct {
	URLsFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *SitemapSource) URLs(ctx context.Context, siteURL string) ([]string, error) {
	return s.URLsFn(ctx, siteURL)
}
