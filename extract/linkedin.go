package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/harvest"
)

// Ensure LinkedInExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*LinkedInExtractor)(nil)

// LinkedInExtractor extracts a professional-network post by locating the
// post's content container via its styling class signature.
type LinkedInExtractor struct {
	fetcher   harvest.Fetcher
	converter harvest.Converter
	logger    *slog.Logger
}

// NewLinkedInExtractor creates a new LinkedInExtractor.
func NewLinkedInExtractor(fetcher harvest.Fetcher, converter harvest.Converter, logger *slog.Logger) *LinkedInExtractor {
	return &LinkedInExtractor{fetcher: fetcher, converter: converter, logger: logger}
}

// CanHandle reports whether the source URL belongs to linkedin.
func (e *LinkedInExtractor) CanHandle(source string) bool {
	return strings.Contains(source, "linkedin.com")
}

// Extract fetches the page and emits one item for the post container.
// Pages without the expected container yield no items.
func (e *LinkedInExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	html, err := e.fetcher.Fetch(ctx, source)
	if err != nil {
		e.logger.Error("linkedin: fetching post", "source", source, "error", err)
		return nil, nil
	}

	doc, err := parseHTML(html)
	if err != nil {
		e.logger.Error("linkedin: parsing page", "source", source, "error", err)
		return nil, nil
	}

	container := doc.Find("div.break-words").First()
	if container.Length() == 0 {
		e.logger.Info("linkedin: post container not found", "source", source)
		return nil, nil
	}

	containerHTML, err := goquery.OuterHtml(container)
	if err != nil {
		e.logger.Error("linkedin: rendering container", "source", source, "error", err)
		return nil, nil
	}

	content, err := e.converter.Convert(containerHTML)
	if err != nil {
		e.logger.Error("linkedin: converting content", "source", source, "error", err)
		return nil, nil
	}

	return []*harvest.Item{{
		Title:       pageTitle(doc, source),
		Content:     content,
		ContentType: harvest.TypeLinkedInPost,
		SourceURL:   source,
	}}, nil
}
