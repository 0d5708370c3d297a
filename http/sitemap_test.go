package http_test

import (
	"context"
	"fmt"
	"testing"

	harvesthttp "github.com/fwojciec/harvest/http"
	"github.com/fwojciec/harvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const urlsetXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
	<url><loc>https://example.com/blog/first-post</loc></url>
	<url><loc>https://example.com/blog/second-post</loc></url>
</urlset>`

const indexXML = `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
	<sitemap><loc>https://example.com/sitemap-posts.xml</loc></sitemap>
	<sitemap><loc>https://example.com/sitemap-pages.xml</loc></sitemap>
</sitemapindex>`

func TestSitemapSource_URLs(t *testing.T) {
	t.Parallel()

	t.Run("urlset", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.com/sitemap.xml", url)
				return urlsetXML, nil
			},
		}

		s := harvesthttp.NewSitemapSource(fetcher)

		urls, err := s.URLs(context.Background(), "https://example.com/blog")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/blog/first-post",
			"https://example.com/blog/second-post",
		}, urls)
	})

	t.Run("sitemap index is followed", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				switch url {
				case "https://example.com/sitemap.xml":
					return indexXML, nil
				case "https://example.com/sitemap-posts.xml":
					return urlsetXML, nil
				case "https://example.com/sitemap-pages.xml":
					return "", fmt.Errorf("HTTP 404")
				}
				return "", fmt.Errorf("unexpected fetch: %s", url)
			},
		}

		s := harvesthttp.NewSitemapSource(fetcher)

		urls, err := s.URLs(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/blog/first-post",
			"https://example.com/blog/second-post",
		}, urls)
	})

	t.Run("missing root sitemap means no sitemap", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", fmt.Errorf("HTTP 404")
			},
		}

		s := harvesthttp.NewSitemapSource(fetcher)

		urls, err := s.URLs(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("invalid site URL", func(t *testing.T) {
		t.Parallel()

		s := harvesthttp.NewSitemapSource(&mock.Fetcher{})

		_, err := s.URLs(context.Background(), "not a url")
		assert.Error(t, err)
	})
}
