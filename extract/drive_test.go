package extract_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/extract"
	"github.com/fwojciec/harvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	driveFolderURL = "https://drive.google.com/drive/folders/1TestFolder"

	driveID1 = "1AbCdEfGhIjKlMnOpQrStUvWxYz12345"
	driveID2 = "2ZyXwVuTsRqPoNmLkJiHgFeDcBa54321"
)

func driveDownloadURL(id string) string {
	return "https://drive.google.com/uc?export=download&id=" + id
}

// driveFolderHTML lists the first file through both discovery techniques
// (script payload and anchor), the second through the anchor only, and one
// tuple with an identifier too short to be valid.
const driveFolderHTML = `<html><body>
<script>
var data = [["` + driveID1 + `",[null],"report.pdf","application/pdf"],
["short",[null],"bad.pdf","application/pdf"]];
</script>
<a href="https://drive.google.com/file/d/` + driveID1 + `/view">report.pdf</a>
<a href="https://drive.google.com/file/d/` + driveID2 + `/view">notes.pdf</a>
<a href="https://drive.google.com/drive/folders/other">Subfolder</a>
</body></html>`

func TestDriveExtractor_CanHandle(t *testing.T) {
	t.Parallel()

	e := extract.NewDriveExtractor(&mock.Fetcher{}, &mock.Extractor{}, extract.NopLimiter{}, discardLogger())

	assert.True(t, e.CanHandle(driveFolderURL))
	assert.False(t, e.CanHandle("https://drive.google.com/file/d/abc/view"))
	assert.False(t, e.CanHandle("https://example.com/blog/post"))
}

func TestDriveExtractor_Extract(t *testing.T) {
	t.Parallel()

	fetcher := mapFetcher(map[string]string{
		driveFolderURL:              driveFolderHTML,
		driveDownloadURL(driveID1): "%PDF-1",
		driveDownloadURL(driveID2): "%PDF-2",
	}, nil)

	var paths []string
	pdfs := &mock.Extractor{
		ExtractFn: func(_ context.Context, source string) ([]*harvest.Item, error) {
			paths = append(paths, source)

			data, err := os.ReadFile(source)
			require.NoError(t, err)

			return []*harvest.Item{{
				Title:       "Doc " + string(data),
				Content:     "text",
				ContentType: harvest.TypeBook,
			}}, nil
		},
	}

	e := extract.NewDriveExtractor(fetcher, pdfs, extract.NopLimiter{}, discardLogger())

	items, err := e.Extract(context.Background(), driveFolderURL)
	require.NoError(t, err)
	require.Len(t, items, 2, "both techniques discovering the same file must yield one download")

	// Script-payload hits come first, the anchor-only file second.
	assert.Equal(t, "Doc %PDF-1", items[0].Title)
	assert.Equal(t, driveDownloadURL(driveID1), items[0].SourceURL)
	assert.Equal(t, "Doc %PDF-2", items[1].Title)
	assert.Equal(t, driveDownloadURL(driveID2), items[1].SourceURL)

	// Transient files live under the temp dir and are removed afterwards.
	require.Len(t, paths, 2)
	for _, path := range paths {
		assert.True(t, strings.HasPrefix(path, os.TempDir()), path)
		assert.Equal(t, ".pdf", filepath.Ext(path))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "transient file must be deleted: %s", path)
	}
}

func TestDriveExtractor_FileFailureIsolation(t *testing.T) {
	t.Parallel()

	fetcher := mapFetcher(map[string]string{
		driveFolderURL:              driveFolderHTML,
		driveDownloadURL(driveID2): "%PDF-2",
	}, nil)

	pdfs := &mock.Extractor{
		ExtractFn: func(_ context.Context, source string) ([]*harvest.Item, error) {
			return []*harvest.Item{{Title: "Doc", Content: "text", ContentType: harvest.TypeBook}}, nil
		},
	}

	e := extract.NewDriveExtractor(fetcher, pdfs, extract.NopLimiter{}, discardLogger())

	items, err := e.Extract(context.Background(), driveFolderURL)
	require.NoError(t, err)
	require.Len(t, items, 1, "one file failing to download must not abort the rest")
	assert.Equal(t, driveDownloadURL(driveID2), items[0].SourceURL)
}

func TestDriveExtractor_FetchFailure(t *testing.T) {
	t.Parallel()

	e := extract.NewDriveExtractor(mapFetcher(nil, nil), &mock.Extractor{}, extract.NopLimiter{}, discardLogger())

	items, err := e.Extract(context.Background(), driveFolderURL)
	require.NoError(t, err)
	assert.Empty(t, items)
}
