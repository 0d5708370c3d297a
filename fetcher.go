package harvest

import "context"

// Fetcher retrieves raw HTML (or any response body) from URLs over plain
// HTTP. It does not execute JavaScript; pages that render client side go
// through a Browser instead.
type Fetcher interface {
	// Fetch retrieves the response body for the given URL.
	// A non-2xx status or network error is returned as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any underlying resources.
	Close() error
}
