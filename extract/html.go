package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseHTML parses raw HTML into a goquery document.
func parseHTML(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// pageTitle returns the trimmed text of the page's title element, or the
// fallback when the element is absent or empty.
func pageTitle(doc *goquery.Document, fallback string) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return fallback
	}
	return title
}
