package harvest

import "context"

// Browser drives a headless browser session for pages whose content only
// exists after client-side rendering. A Browser is a scoped resource:
// acquired once per fallback invocation via a BrowserLauncher, used for the
// full URL set, and released unconditionally on exit.
type Browser interface {
	// DiscoverLinks renders the listing page and returns candidate article
	// URLs, deduplicated and in discovery order. Candidates come from two
	// techniques: "read more"-style elements (resolving the enclosing
	// anchor's href, or clicking and observing the resulting navigation
	// when no anchor exists), and a scan of every anchor on the rendered
	// page. The accept predicate filters URLs that do not look like
	// articles.
	DiscoverLinks(ctx context.Context, url string, accept func(string) bool) ([]string, error)

	// Render navigates to the URL, waits for client-side rendering to
	// settle, and returns the rendered HTML.
	Render(ctx context.Context, url string) (string, error)

	// Close terminates the browser session.
	Close() error
}

// BrowserLauncher creates browser sessions on demand. Strategies hold a
// launcher rather than a live browser so that a session is only paid for
// when the headless fallback actually runs.
type BrowserLauncher interface {
	Launch(ctx context.Context) (Browser, error)
}
