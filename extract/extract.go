// Package extract implements the routing and extraction-strategy core: a
// fixed, explicitly ordered chain of per-source-family strategies behind the
// harvest.Extractor contract, plus the article-URL classifier and
// content-type inference shared across them.
package extract

import (
	"context"
	"net/url"
	"os"

	"github.com/fwojciec/harvest"
)

// isFile reports whether source names an existing regular file.
func isFile(source string) bool {
	info, err := os.Stat(source)
	return err == nil && info.Mode().IsRegular()
}

// waitForHost applies the domain limiter for the host of rawURL.
// An unparseable URL waits on the raw string so limiting still applies.
func waitForHost(ctx context.Context, limiter harvest.DomainLimiter, rawURL string) error {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return limiter.Wait(ctx, host)
}
