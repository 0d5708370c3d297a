package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/harvest"
)

// maxSitemapFetches caps how many sitemap documents one discovery will
// fetch, to keep index-of-index sites from running away.
const maxSitemapFetches = 10

// Ensure SitemapSource implements harvest.SitemapSource at compile time.
var _ harvest.SitemapSource = (*SitemapSource)(nil)

// SitemapSource discovers page URLs from a site's sitemap.xml.
type SitemapSource struct {
	fetcher harvest.Fetcher
}

// NewSitemapSource creates a new SitemapSource using the given fetcher.
func NewSitemapSource(fetcher harvest.Fetcher) *SitemapSource {
	return &SitemapSource{fetcher: fetcher}
}

// URLs fetches <root>/sitemap.xml for the site URL's domain and returns the
// page URLs it lists. Sitemap indexes are followed up to maxSitemapFetches
// documents. A site without a sitemap returns an empty slice.
func (s *SitemapSource) URLs(ctx context.Context, siteURL string) ([]string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "invalid site URL: %v", err)
	}
	if base.Host == "" {
		return nil, harvest.Errorf(harvest.EINVALID, "site URL has no host: %s", siteURL)
	}

	root := fmt.Sprintf("%s://%s/sitemap.xml", base.Scheme, base.Host)

	queue := []string{root}
	fetched := 0
	seen := make(map[string]bool)
	var urls []string

	for len(queue) > 0 && fetched < maxSitemapFetches {
		next := queue[0]
		queue = queue[1:]
		fetched++

		body, err := s.fetcher.Fetch(ctx, next)
		if err != nil {
			// The root sitemap being absent means "no sitemap"; nested
			// sitemaps failing are skipped.
			if next == root {
				return []string{}, nil
			}
			continue
		}

		pageURLs, childSitemaps, err := parseSitemap(body)
		if err != nil {
			continue
		}
		queue = append(queue, childSitemaps...)

		for _, u := range pageURLs {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

// parseSitemap parses a sitemap document, returning page URLs from a urlset
// or child sitemap URLs from a sitemapindex.
func parseSitemap(body string) (pageURLs, childSitemaps []string, err error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, nil, harvest.Errorf(harvest.EINVALID, "sitemap has no root element")
	}

	switch root.Tag {
	case "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			if loc := sm.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					childSitemaps = append(childSitemaps, u)
				}
			}
		}
	case "urlset":
		for _, entry := range root.SelectElements("url") {
			if loc := entry.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					pageURLs = append(pageURLs, u)
				}
			}
		}
	default:
		return nil, nil, harvest.Errorf(harvest.EINVALID, "unexpected sitemap root element: %s", root.Tag)
	}

	return pageURLs, childSitemaps, nil
}
