package extract_test

import (
	"context"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor_CanHandle(t *testing.T) {
	t.Parallel()

	e := extract.NewGenericExtractor(discardLogger())

	assert.True(t, e.CanHandle("anything"))
	assert.True(t, e.CanHandle(""))
	assert.True(t, e.CanHandle("https://example.com"))
}

func TestGenericExtractor_Extract(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "notes.md", "SUMMARY\n\nplain line")

	e := extract.NewGenericExtractor(discardLogger())

	items, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "notes.md", items[0].Title)
	assert.Equal(t, "## Summary\n\nplain line", items[0].Content)
	assert.Equal(t, harvest.TypeOther, items[0].ContentType)
}

func TestGenericExtractor_NotAFile(t *testing.T) {
	t.Parallel()

	e := extract.NewGenericExtractor(discardLogger())

	items, err := e.Extract(context.Background(), "not-a-url-or-file")
	require.NoError(t, err)
	assert.Empty(t, items)
}
