package extract_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/extract"
	"github.com/fwojciec/harvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter() *extract.Router {
	return extract.NewRouter(extract.Config{
		Fetcher:   &mock.Fetcher{},
		Distiller: &mock.Distiller{},
		Converter: &mock.Converter{},
		Browsers:  &mock.BrowserLauncher{},
		PDFs:      &mock.PDFReader{},
		Logger:    discardLogger(),
	})
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRouter_Extractor(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	t.Run("drive folder wins over website", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("https://drive.google.com/drive/folders/1AbC")
		assert.IsType(t, &extract.DriveExtractor{}, got)
	})

	t.Run("http source routes to website", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("https://example.com/blog")
		assert.IsType(t, &extract.WebsiteExtractor{}, got)
	})

	t.Run("http reddit thread routes to website", func(t *testing.T) {
		t.Parallel()
		// The website predicate matches any http-prefixed string and is
		// ordered before the platform strategies.
		got := router.Extractor("https://www.reddit.com/r/golang/comments/abc/")
		assert.IsType(t, &extract.WebsiteExtractor{}, got)
	})

	t.Run("schemeless reddit thread routes to reddit", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("www.reddit.com/r/golang/comments/abc/")
		assert.IsType(t, &extract.RedditExtractor{}, got)
	})

	t.Run("schemeless substack post routes to substack", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("example.substack.com/p/my-post")
		assert.IsType(t, &extract.SubstackExtractor{}, got)
	})

	t.Run("schemeless linkedin post routes to linkedin", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("www.linkedin.com/posts/someone_update")
		assert.IsType(t, &extract.LinkedInExtractor{}, got)
	})

	t.Run("existing pdf file routes to pdf", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "book.pdf", "%PDF-1.4")
		got := router.Extractor(path)
		assert.IsType(t, &extract.PDFExtractor{}, got)
	})

	t.Run("existing txt file routes to transcript", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "call.txt", "hello")
		got := router.Extractor(path)
		assert.IsType(t, &extract.TranscriptExtractor{}, got)
	})

	t.Run("nonexistent pdf path falls through to generic", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("/no/such/file.pdf")
		assert.IsType(t, &extract.GenericExtractor{}, got)
	})

	t.Run("unrecognized source falls through to generic", func(t *testing.T) {
		t.Parallel()
		got := router.Extractor("not-a-url-or-file")
		assert.IsType(t, &extract.GenericExtractor{}, got)
	})
}

func TestRouter_InferContentType(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	t.Run("pdf file is a book", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "book.pdf", "%PDF-1.4")
		assert.Equal(t, harvest.TypeBook, router.InferContentType(path, ""))
	})

	t.Run("text file is a call transcript", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "call.txt", "hello")
		assert.Equal(t, harvest.TypeCallTranscript, router.InferContentType(path, ""))
	})

	t.Run("reddit host is a reddit comment", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, harvest.TypeRedditComment,
			router.InferContentType("https://www.reddit.com/r/golang/comments/abc/", ""))
	})

	t.Run("linkedin host is a linkedin post", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, harvest.TypeLinkedInPost,
			router.InferContentType("https://www.linkedin.com/posts/someone_update", ""))
	})

	t.Run("substack host is a blog", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, harvest.TypeBlog,
			router.InferContentType("https://example.substack.com/p/my-post", ""))
	})

	t.Run("unrecognized url defaults to blog", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, harvest.TypeBlog,
			router.InferContentType("https://example.com/whatever", ""))
	})

	t.Run("unrecognized source defaults to blog", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, harvest.TypeBlog, router.InferContentType("mystery", ""))
	})
}
