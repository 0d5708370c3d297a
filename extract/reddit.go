package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/fwojciec/harvest"
)

// Ensure RedditExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*RedditExtractor)(nil)

// RedditExtractor extracts the first comment of a reddit thread via the
// site's JSON endpoint. There is no HTML-scraping fallback: any failure
// (network, parse, missing comment) yields an empty result.
type RedditExtractor struct {
	fetcher   harvest.Fetcher
	converter harvest.Converter
	logger    *slog.Logger
}

// NewRedditExtractor creates a new RedditExtractor.
func NewRedditExtractor(fetcher harvest.Fetcher, converter harvest.Converter, logger *slog.Logger) *RedditExtractor {
	return &RedditExtractor{fetcher: fetcher, converter: converter, logger: logger}
}

// CanHandle reports whether the source URL belongs to reddit.
func (e *RedditExtractor) CanHandle(source string) bool {
	return strings.Contains(source, "reddit.com")
}

// Extract fetches the thread's JSON endpoint and emits one item for the
// first comment, if any.
func (e *RedditExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	body, err := e.fetcher.Fetch(ctx, toJSONURL(source))
	if err != nil {
		e.logger.Error("reddit: fetching thread JSON", "source", source, "error", err)
		return nil, nil
	}

	comment, err := firstComment(body)
	if err != nil {
		e.logger.Info("reddit: no comment recovered", "source", source, "error", err)
		return nil, nil
	}

	content, err := e.converter.Convert(comment.BodyHTML)
	if err != nil {
		e.logger.Error("reddit: converting comment body", "source", source, "error", err)
		return nil, nil
	}

	return []*harvest.Item{{
		Title:       "Reddit comment by " + comment.Author,
		Content:     content,
		ContentType: harvest.TypeRedditComment,
		SourceURL:   source,
		Author:      comment.Author,
		UserID:      comment.AuthorFullname,
	}}, nil
}

// toJSONURL derives the structured-data endpoint for a thread URL.
func toJSONURL(url string) string {
	if strings.HasSuffix(url, ".json") {
		return url
	}
	return strings.TrimSuffix(url, "/") + ".json"
}

type redditComment struct {
	BodyHTML       string `json:"body_html"`
	Author         string `json:"author"`
	AuthorFullname string `json:"author_fullname"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditComment `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// firstComment parses the thread endpoint's [post, commentListing] response
// and returns the first comment in the listing.
func firstComment(body string) (*redditComment, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal([]byte(body), &parts); err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "unexpected response shape: %v", err)
	}
	if len(parts) < 2 {
		return nil, harvest.Errorf(harvest.EINVALID, "response is not a [post, comments] pair")
	}

	var listing redditListing
	if err := json.Unmarshal(parts[1], &listing); err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "unexpected comment listing: %v", err)
	}
	if len(listing.Data.Children) == 0 {
		return nil, harvest.Errorf(harvest.ENOTFOUND, "thread has no comments")
	}

	comment := listing.Data.Children[0].Data
	if comment.BodyHTML == "" {
		return nil, harvest.Errorf(harvest.ENOTFOUND, "first comment has no body")
	}
	return &comment, nil
}
