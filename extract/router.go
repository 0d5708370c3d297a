package extract

import (
	"log/slog"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/fwojciec/harvest"
)

// Config holds the collaborators threaded into every strategy. Nothing here
// is ambient process state; each strategy receives exactly what it needs at
// construction.
type Config struct {
	Fetcher   harvest.Fetcher
	Distiller harvest.Distiller
	Converter harvest.Converter
	Browsers  harvest.BrowserLauncher
	PDFs      harvest.PDFReader

	// Sitemaps optionally enables sitemap-based URL discovery.
	Sitemaps harvest.SitemapSource

	// Limiter defaults to NopLimiter when nil.
	Limiter harvest.DomainLimiter

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger

	// ChapterSplit enables the PDF strategy's chapter-splitting mode.
	ChapterSplit bool
}

// Router dispatches a source to the first strategy whose CanHandle returns
// true. The strategy order is a correctness-critical priority chain,
// most-specific first: the drive-folder predicate must pre-empt the website
// predicate (which matches any http-prefixed string), and the generic
// fallback must come last because it matches everything.
type Router struct {
	extractors []harvest.Extractor
}

// NewRouter creates a Router with the fixed strategy chain.
func NewRouter(cfg Config) *Router {
	if cfg.Limiter == nil {
		cfg.Limiter = NopLimiter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var pdfOpts []PDFOption
	if cfg.ChapterSplit {
		pdfOpts = append(pdfOpts, WithChapterSplit(true))
	}
	pdfs := NewPDFExtractor(cfg.PDFs, cfg.Logger, pdfOpts...)

	var websiteOpts []WebsiteOption
	if cfg.Sitemaps != nil {
		websiteOpts = append(websiteOpts, WithSitemapSource(cfg.Sitemaps))
	}

	return &Router{
		extractors: []harvest.Extractor{
			NewDriveExtractor(cfg.Fetcher, pdfs, cfg.Limiter, cfg.Logger),
			NewWebsiteExtractor(cfg.Fetcher, cfg.Distiller, cfg.Converter, cfg.Browsers, cfg.Limiter, cfg.Logger, websiteOpts...),
			pdfs,
			NewRedditExtractor(cfg.Fetcher, cfg.Converter, cfg.Logger),
			NewSubstackExtractor(cfg.Fetcher, cfg.Distiller, cfg.Converter, cfg.Logger),
			NewLinkedInExtractor(cfg.Fetcher, cfg.Converter, cfg.Logger),
			NewTranscriptExtractor(cfg.Logger),
			NewGenericExtractor(cfg.Logger),
		},
	}
}

// Extractor returns the first strategy in priority order that can handle
// the source. The generic fallback matches everything, so this never
// returns nil; callers needing a "no extractor" signal must compare the
// returned strategy's identity.
func (r *Router) Extractor(source string) harvest.Extractor {
	for _, e := range r.extractors {
		if e.CanHandle(source) {
			return e
		}
	}
	return r.extractors[len(r.extractors)-1]
}

// InferContentType classifies a source when an extractor yielded an item
// without an explicit label. Local files classify by mime type, URLs by
// host substring, and everything else defaults to blog.
func (r *Router) InferContentType(source, content string) string {
	if isFile(source) {
		mimeType := mime.TypeByExtension(filepath.Ext(source))
		switch {
		case strings.HasPrefix(mimeType, "application/pdf"):
			return harvest.TypeBook
		case strings.HasPrefix(mimeType, "text/plain"):
			return harvest.TypeCallTranscript
		}
	}

	if u, err := url.Parse(source); err == nil {
		host := strings.ToLower(u.Host)
		switch {
		case strings.Contains(host, "reddit.com"):
			return harvest.TypeRedditComment
		case strings.Contains(host, "linkedin.com"):
			return harvest.TypeLinkedInPost
		case strings.Contains(host, "substack.com"):
			return harvest.TypeBlog
		}
	}

	return harvest.TypeBlog
}
