package extract

import (
	"net/url"
	"strings"
)

// skipMarkers reject a URL outright: listing/taxonomy paths, account and
// legal pages, feeds and crawler plumbing, non-HTTP schemes, and fragment
// links.
var skipMarkers = []string{
	"/category/", "/tag/", "/author/", "/page/", "/search",
	"/about", "/contact", "/privacy", "/terms", "/login",
	"/register", "/subscribe", "/newsletter", "/feed",
	"/sitemap", "/robots.txt", "/favicon", "/ads",
	"javascript:", "mailto:", "tel:", "#",
}

// articleMarkers accept a URL: article-like path segments, year-like
// segments, and markup-file extensions.
var articleMarkers = []string{
	"/blog/", "/post/", "/article/", "/news/", "/story/",
	"/202", "/2023/", "/2024/", "/2025/",
	".html", ".php", ".asp",
}

// IsArticleURL classifies a URL as likely pointing to a single content item
// rather than a listing or utility page. Rejection markers win over
// acceptance markers. Absent both, a structural heuristic applies: if the
// last two path segments each exceed 3 characters the URL is treated as a
// slug and accepted.
func IsArticleURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	lower := strings.ToLower(rawURL)
	for _, marker := range skipMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	for _, marker := range articleMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return false
	}
	for _, segment := range segments[len(segments)-2:] {
		if len(segment) <= 3 {
			return false
		}
	}
	return true
}
