package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.BrowserLauncher = (*BrowserLauncher)(nil)

// BrowserLauncher is a mock implementation of harvest.BrowserLauncher.
type BrowserLauncher struct {
	LaunchFn func(ctx context.Context) (harvest.Browser, error)
}

func (l *BrowserLauncher) Launch(ctx context.Context) (harvest.Browser, error) {
	return l.LaunchFn(ctx)
}

var _ harvest.Browser = (*Browser)(nil)

// Browser is a mock implementation of harvest.Browser.
type Browser struct {
	DiscoverLinksFn func(ctx context.Context, url string, accept func(string) bool) ([]string, error)
	RenderFn        func(ctx context.Context, url string) (string, error)
	CloseFn         func() error
}

func (b *Browser) DiscoverLinks(ctx context.Context, url string, accept func(string) bool) ([]string, error) {
	return b.DiscoverLinksFn(ctx, url, accept)
}

func (b *Browser) Render(ctx context.Context, url string) (string, error) {
	return b.RenderFn(ctx, url)
}

func (b *Browser) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}
