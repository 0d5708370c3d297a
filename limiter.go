package harvest

import "context"

// DomainLimiter rate limits requests per domain for politeness.
// Extraction is strictly sequential, so the limiter only inserts waits
// between consecutive fetches against the same host.
type DomainLimiter interface {
	// Wait blocks until a request to the host is permitted or the context
	// is canceled.
	Wait(ctx context.Context, host string) error
}
