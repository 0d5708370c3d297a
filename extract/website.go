package extract

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/harvest"
)

// Ensure WebsiteExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*WebsiteExtractor)(nil)

// WebsiteExtractor handles arbitrary HTTP(S) sources with a multi-stage
// fallback pipeline. For each discovered URL it tries, in order:
//
//  1. structural heuristics: locate blog-post containers and follow their
//     article links, extracting each article directly
//  2. headless-browser simulation, when containers exist but no links
//     could be resolved (client-side rendered listings)
//  3. boilerplate removal over the raw page, when no containers exist
//
// Its predicate matches any http-prefixed string, so it must be ordered
// after every narrower platform predicate but before the file strategies.
type WebsiteExtractor struct {
	fetcher   harvest.Fetcher
	distiller harvest.Distiller
	converter harvest.Converter
	browsers  harvest.BrowserLauncher
	sitemaps  harvest.SitemapSource
	limiter   harvest.DomainLimiter
	logger    *slog.Logger
}

// WebsiteOption configures a WebsiteExtractor.
type WebsiteOption func(*WebsiteExtractor)

// WithSitemapSource enables sitemap-based URL discovery as a fallback when
// a listing page yields no article-like anchors.
func WithSitemapSource(s harvest.SitemapSource) WebsiteOption {
	return func(e *WebsiteExtractor) {
		e.sitemaps = s
	}
}

// NewWebsiteExtractor creates a new WebsiteExtractor.
func NewWebsiteExtractor(
	fetcher harvest.Fetcher,
	distiller harvest.Distiller,
	converter harvest.Converter,
	browsers harvest.BrowserLauncher,
	limiter harvest.DomainLimiter,
	logger *slog.Logger,
	opts ...WebsiteOption,
) *WebsiteExtractor {
	e := &WebsiteExtractor{
		fetcher:   fetcher,
		distiller: distiller,
		converter: converter,
		browsers:  browsers,
		limiter:   limiter,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CanHandle reports whether the source is an HTTP(S) URL.
func (e *WebsiteExtractor) CanHandle(source string) bool {
	return strings.HasPrefix(source, "http")
}

// Extract discovers the URLs to process and runs the fallback pipeline on
// each. A failure on any single URL is logged and skipped.
func (e *WebsiteExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	urls := e.discoverURLs(ctx, source)
	e.logger.Info("website: discovered URLs", "source", source, "count", len(urls))

	var items []*harvest.Item
	for _, u := range urls {
		got, err := e.extractPage(ctx, u)
		if err != nil {
			e.logger.Error("website: processing URL", "url", u, "error", err)
			continue
		}
		items = append(items, got...)
	}
	return items, nil
}

// extractPage runs the three-stage fallback for one URL.
func (e *WebsiteExtractor) extractPage(ctx context.Context, pageURL string) ([]*harvest.Item, error) {
	if err := waitForHost(ctx, e.limiter, pageURL); err != nil {
		return nil, err
	}

	html, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	containers := doc.Find("div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return isPostContainer(sel)
	})
	links := articleLinks(containers, pageURL)
	e.logger.Info("website: structural scan", "url", pageURL,
		"containers", containers.Length(), "links", len(links))

	// Stage 1: resolved article links.
	if len(links) > 0 {
		var items []*harvest.Item
		for _, articleURL := range links {
			item, err := e.extractArticle(ctx, articleURL)
			if err != nil {
				e.logger.Error("website: extracting article", "url", articleURL, "error", err)
				continue
			}
			items = append(items, item)
		}
		return items, nil
	}

	// Stage 2: containers without resolvable links point at a client-side
	// rendered listing.
	if containers.Length() > 0 {
		return e.extractWithBrowser(ctx, pageURL), nil
	}

	// Stage 3: boilerplate removal over the raw page.
	item := e.distillPage(pageURL, html, doc)
	if item == nil {
		return nil, nil
	}
	return []*harvest.Item{item}, nil
}

// extractArticle fetches a single article URL and builds one blog item.
func (e *WebsiteExtractor) extractArticle(ctx context.Context, articleURL string) (*harvest.Item, error) {
	if err := waitForHost(ctx, e.limiter, articleURL); err != nil {
		return nil, err
	}

	html, err := e.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("h1, h2").First().Text())
	if title == "" {
		title = articleURL
	}

	contentHTML := html
	if main := mainContainer(doc); main != nil {
		if rendered, err := goquery.OuterHtml(main); err == nil {
			contentHTML = rendered
		}
	}

	content, err := e.converter.Convert(contentHTML)
	if err != nil {
		return nil, err
	}

	if date := publishDate(doc); date != "" {
		content = "Date: " + date + "\n\n" + content
	}

	return &harvest.Item{
		Title:       title,
		Content:     content,
		ContentType: harvest.TypeBlog,
		SourceURL:   articleURL,
	}, nil
}

// extractWithBrowser drives a headless browser over the listing page. The
// browser session is scoped to this invocation and released on exit,
// success or failure. All failures degrade to an empty result.
func (e *WebsiteExtractor) extractWithBrowser(ctx context.Context, listURL string) []*harvest.Item {
	browser, err := e.browsers.Launch(ctx)
	if err != nil {
		e.logger.Error("website: launching browser", "url", listURL, "error", err)
		return nil
	}
	defer browser.Close()

	urls, err := browser.DiscoverLinks(ctx, listURL, IsArticleURL)
	if err != nil {
		e.logger.Error("website: browser link discovery", "url", listURL, "error", err)
		return nil
	}
	e.logger.Info("website: browser discovered article URLs", "url", listURL, "count", len(urls))

	var items []*harvest.Item
	for _, articleURL := range urls {
		html, err := browser.Render(ctx, articleURL)
		if err != nil {
			e.logger.Error("website: rendering article", "url", articleURL, "error", err)
			continue
		}

		title := articleURL
		if doc, err := parseHTML(html); err == nil {
			if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
				title = h1
			}
		}

		distilled, err := e.distiller.Distill(html, harvest.DistillOptions{IncludeTables: true})
		if err != nil || distilled.ContentHTML == "" {
			e.logger.Info("website: no main content in rendered page", "url", articleURL, "error", err)
			continue
		}

		content, err := e.converter.Convert(distilled.ContentHTML)
		if err != nil || content == "" {
			continue
		}

		items = append(items, &harvest.Item{
			Title:       title,
			Content:     content,
			ContentType: harvest.TypeBlog,
			SourceURL:   articleURL,
		})
	}
	return items
}

// distillPage builds a single item from the raw page via boilerplate
// removal. Returns nil when no content is recoverable.
func (e *WebsiteExtractor) distillPage(pageURL, html string, doc *goquery.Document) *harvest.Item {
	distilled, err := e.distiller.Distill(html, harvest.DistillOptions{IncludeTables: true})
	if err != nil || distilled.ContentHTML == "" {
		e.logger.Info("website: no main content recovered", "url", pageURL, "error", err)
		return nil
	}

	content, err := e.converter.Convert(distilled.ContentHTML)
	if err != nil || content == "" {
		return nil
	}

	return &harvest.Item{
		Title:       cascadeTitle(doc),
		Content:     content,
		ContentType: harvest.TypeBlog,
		SourceURL:   pageURL,
	}
}

// discoverURLs decides which URLs to process for a source. A source that
// already looks like an article is processed alone. Otherwise the source is
// treated as a listing page and its article-like anchors are collected,
// with the sitemap as a secondary source; when nothing is found the source
// degrades to being processed alone.
func (e *WebsiteExtractor) discoverURLs(ctx context.Context, source string) []string {
	if IsArticleURL(source) {
		return []string{source}
	}

	if err := waitForHost(ctx, e.limiter, source); err != nil {
		return []string{source}
	}

	html, err := e.fetcher.Fetch(ctx, source)
	if err != nil {
		e.logger.Error("website: fetching listing page", "source", source, "error", err)
		return []string{source}
	}

	doc, err := parseHTML(html)
	if err != nil {
		return []string{source}
	}

	base, err := url.Parse(source)
	if err != nil {
		return []string{source}
	}

	seen := make(map[string]bool)
	var urls []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		resolved := resolveHref(base, sel.AttrOr("href", ""))
		if resolved == "" || seen[resolved] || !IsArticleURL(resolved) {
			return
		}
		seen[resolved] = true
		urls = append(urls, resolved)
	})
	if len(urls) > 0 {
		return urls
	}

	if e.sitemaps != nil {
		if fromSitemap := e.discoverFromSitemap(ctx, source); len(fromSitemap) > 0 {
			return fromSitemap
		}
	}

	e.logger.Info("website: no article links found, treating source as single article", "source", source)
	return []string{source}
}

// discoverFromSitemap collects article-like URLs from the site's sitemap.
func (e *WebsiteExtractor) discoverFromSitemap(ctx context.Context, source string) []string {
	all, err := e.sitemaps.URLs(ctx, source)
	if err != nil {
		e.logger.Info("website: sitemap discovery failed", "source", source, "error", err)
		return nil
	}

	var urls []string
	for _, u := range all {
		if IsArticleURL(u) {
			urls = append(urls, u)
		}
	}
	if len(urls) > 0 {
		e.logger.Info("website: sitemap discovered article URLs", "source", source, "count", len(urls))
	}
	return urls
}

// isPostContainer reports whether an element's classes match a known
// blog-listing signature: an explicit blog-post/post/article class, or the
// combined utility-class signature some listing layouts use.
func isPostContainer(sel *goquery.Selection) bool {
	classes := strings.Fields(sel.AttrOr("class", ""))
	has := func(name string) bool {
		for _, c := range classes {
			if c == name {
				return true
			}
		}
		return false
	}
	if has("bg-white") && has("p-[30px]") {
		return true
	}
	return has("blog-post") || has("post") || has("article")
}

// articleLinks resolves a full-article link for each post container:
// a direct anchor inside the container, or a button whose immediate parent
// is itself a link.
func articleLinks(containers *goquery.Selection, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	containers.Each(func(_ int, container *goquery.Selection) {
		href := container.Find("a[href]").First().AttrOr("href", "")
		if href == "" {
			button := container.Find("button").First()
			if button.Length() > 0 {
				parent := button.Parent()
				if goquery.NodeName(parent) == "a" {
					href = parent.AttrOr("href", "")
				}
			}
		}
		if href == "" {
			return
		}
		resolved := resolveHref(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})
	return links
}

// mainContainer picks the article's content container: a semantic main or
// article element when present, else the div with the most text. Ties keep
// the first container in document order.
func mainContainer(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}
	if article := doc.Find("article").First(); article.Length() > 0 {
		return article
	}

	var largest *goquery.Selection
	maxLen := 0
	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if n := len(sel.Text()); n > maxLen {
			maxLen = n
			largest = sel
		}
	})
	return largest
}

// publishDate extracts a dateline from the article page: a time element, or
// the muted small-text signature some blogs use for their datelines.
func publishDate(doc *goquery.Document) string {
	if t := doc.Find("time").First(); t.Length() > 0 {
		return strings.TrimSpace(t.Text())
	}
	dateline := doc.Find("h4, span").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		class := sel.AttrOr("class", "")
		return strings.Contains(class, "text-slate-500") && strings.Contains(class, "text-sm")
	}).First()
	if dateline.Length() > 0 {
		return strings.TrimSpace(dateline.Text())
	}
	return ""
}

// cascadeTitle resolves a page title through a prioritized selector
// cascade, defaulting to "Untitled" when every selector fails.
func cascadeTitle(doc *goquery.Document) string {
	selectors := []string{
		"h1",
		"title",
		`[class*="title"]`,
		`[class*="heading"]`,
		"h2",
		"h3",
	}
	for _, selector := range selectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if len(title) > 5 {
			return title
		}
	}
	return "Untitled"
}

// resolveHref resolves href against base and returns an absolute URL, or
// empty when the href cannot be parsed.
func resolveHref(base *url.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
