package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/mock"
	harvestslog "github.com/fwojciec/harvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor(t *testing.T) {
	t.Parallel()

	t.Run("CanHandle delegates without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Extractor{
			CanHandleFn: func(source string) bool { return source == "yes" },
		}

		e := harvestslog.NewLoggingExtractor(next, logger)
		assert.True(t, e.CanHandle("yes"))
		assert.False(t, e.CanHandle("no"))
		assert.Empty(t, buf.String())
	})

	t.Run("Extract logs source and item count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Extractor{
			ExtractFn: func(context.Context, string) ([]*harvest.Item, error) {
				return []*harvest.Item{
					{Title: "a", Content: "x", ContentType: harvest.TypeBlog},
					{Title: "b", Content: "y", ContentType: harvest.TypeBlog},
				}, nil
			},
		}

		e := harvestslog.NewLoggingExtractor(next, logger)

		items, err := e.Extract(context.Background(), "https://example.com/blog/post")
		require.NoError(t, err)
		assert.Len(t, items, 2)

		out := buf.String()
		assert.Contains(t, out, "https://example.com/blog/post")
		assert.Contains(t, out, "items=2")
		assert.Contains(t, out, "duration=")
	})
}
