package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/harvest"
)

// Ensure SubstackExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*SubstackExtractor)(nil)

// SubstackExtractor extracts newsletter posts by running boilerplate
// removal over the fetched page.
type SubstackExtractor struct {
	fetcher   harvest.Fetcher
	distiller harvest.Distiller
	converter harvest.Converter
	logger    *slog.Logger
}

// NewSubstackExtractor creates a new SubstackExtractor.
func NewSubstackExtractor(fetcher harvest.Fetcher, distiller harvest.Distiller, converter harvest.Converter, logger *slog.Logger) *SubstackExtractor {
	return &SubstackExtractor{fetcher: fetcher, distiller: distiller, converter: converter, logger: logger}
}

// CanHandle reports whether the source URL belongs to substack.
func (e *SubstackExtractor) CanHandle(source string) bool {
	return strings.Contains(source, "substack.com")
}

// Extract fetches the post, isolates its main content, and emits one blog
// item. Pages with no recoverable main content yield no items.
func (e *SubstackExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	html, err := e.fetcher.Fetch(ctx, source)
	if err != nil {
		e.logger.Error("substack: fetching post", "source", source, "error", err)
		return nil, nil
	}

	distilled, err := e.distiller.Distill(html, harvest.DistillOptions{IncludeTables: true})
	if err != nil || distilled.ContentHTML == "" {
		e.logger.Info("substack: no main content recovered", "source", source, "error", err)
		return nil, nil
	}

	content, err := e.converter.Convert(distilled.ContentHTML)
	if err != nil {
		e.logger.Error("substack: converting content", "source", source, "error", err)
		return nil, nil
	}

	title := source
	if doc, err := parseHTML(html); err == nil {
		title = pageTitle(doc, source)
	}

	return []*harvest.Item{{
		Title:       title,
		Content:     content,
		ContentType: harvest.TypeBlog,
		SourceURL:   source,
	}}, nil
}
