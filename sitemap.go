package harvest

import "context"

// SitemapSource discovers URLs from a website's sitemap.
type SitemapSource interface {
	// URLs returns the page URLs listed in the site's sitemap, resolved
	// from the root of the given site URL's domain. Sitemap indexes are
	// followed. A site without a sitemap returns an empty slice.
	URLs(ctx context.Context, siteURL string) ([]string, error)
}
