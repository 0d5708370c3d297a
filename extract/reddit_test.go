package extract_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/extract"
	"github.com/fwojciec/harvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redditThreadJSON = `[{}, {"data":{"children":[{"data":{"body_html":"<p>hi</p>","author":"alice","author_fullname":"t2_x"}}]}}]`

func TestRedditExtractor_CanHandle(t *testing.T) {
	t.Parallel()

	e := extract.NewRedditExtractor(&mock.Fetcher{}, &mock.Converter{}, discardLogger())

	assert.True(t, e.CanHandle("www.reddit.com/r/golang/comments/abc/"))
	assert.False(t, e.CanHandle("www.example.com/r/golang"))
}

func TestRedditExtractor_Extract(t *testing.T) {
	t.Parallel()

	var fetched string
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			fetched = url
			return redditThreadJSON, nil
		},
	}
	converter := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			assert.Equal(t, "<p>hi</p>", html)
			return "hi", nil
		},
	}

	e := extract.NewRedditExtractor(fetcher, converter, discardLogger())

	items, err := e.Extract(context.Background(), "www.reddit.com/r/golang/comments/abc/")
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "www.reddit.com/r/golang/comments/abc.json", fetched,
		"trailing slash is stripped before appending the JSON suffix")
	assert.Equal(t, "Reddit comment by alice", items[0].Title)
	assert.Equal(t, "hi", items[0].Content)
	assert.Equal(t, harvest.TypeRedditComment, items[0].ContentType)
	assert.Equal(t, "www.reddit.com/r/golang/comments/abc/", items[0].SourceURL)
	assert.Equal(t, "alice", items[0].Author)
	assert.Equal(t, "t2_x", items[0].UserID)
}

func TestRedditExtractor_EmptyResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		err  error
	}{
		{"fetch failure", "", fmt.Errorf("boom")},
		{"not json", "<html>blocked</html>", nil},
		{"not a pair", `[{}]`, nil},
		{"no comments", `[{}, {"data":{"children":[]}}]`, nil},
		{"comment without body", `[{}, {"data":{"children":[{"data":{"author":"alice"}}]}}]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fetcher := &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return tt.body, tt.err },
			}

			e := extract.NewRedditExtractor(fetcher, &mock.Converter{}, discardLogger())

			items, err := e.Extract(context.Background(), "www.reddit.com/r/golang/comments/abc/")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}
