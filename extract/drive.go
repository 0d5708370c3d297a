package extract

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/harvest"
	"github.com/google/uuid"
)

// Ensure DriveExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*DriveExtractor)(nil)

const driveFolderMarker = "drive.google.com/drive/folders/"

// DriveExtractor extracts PDFs listed in a Google Drive folder page. The
// folder's rendered listing (not an API) is scanned for file entries, each
// PDF is downloaded to a transient local file, and extraction is delegated
// to the PDF strategy.
type DriveExtractor struct {
	fetcher harvest.Fetcher
	pdfs    harvest.Extractor
	limiter harvest.DomainLimiter
	logger  *slog.Logger
}

// NewDriveExtractor creates a new DriveExtractor. The pdfs delegate handles
// the downloaded files; in production it is a *PDFExtractor.
func NewDriveExtractor(fetcher harvest.Fetcher, pdfs harvest.Extractor, limiter harvest.DomainLimiter, logger *slog.Logger) *DriveExtractor {
	return &DriveExtractor{fetcher: fetcher, pdfs: pdfs, limiter: limiter, logger: logger}
}

// CanHandle reports whether the source is a drive folder URL. This predicate
// is narrowly scoped so it can pre-empt the website strategy in the chain.
func (e *DriveExtractor) CanHandle(source string) bool {
	return strings.Contains(source, driveFolderMarker)
}

// Extract scrapes the folder listing for PDF entries and extracts each one.
// A failure on any single file is logged and skipped.
func (e *DriveExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	if err := waitForHost(ctx, e.limiter, source); err != nil {
		return nil, err
	}

	html, err := e.fetcher.Fetch(ctx, source)
	if err != nil {
		e.logger.Error("drive: fetching folder listing", "source", source, "error", err)
		return nil, nil
	}

	doc, err := parseHTML(html)
	if err != nil {
		e.logger.Error("drive: parsing folder listing", "source", source, "error", err)
		return nil, nil
	}

	links := dedupeLinks(findPDFLinks(doc))
	e.logger.Info("drive: discovered PDF files", "source", source, "count", len(links))

	var items []*harvest.Item
	for _, link := range links {
		got, err := e.extractFile(ctx, link)
		if err != nil {
			e.logger.Error("drive: extracting file", "name", link.name, "url", link.url, "error", err)
			continue
		}
		items = append(items, got...)
	}
	return items, nil
}

// extractFile downloads one PDF to a transient local file, delegates
// extraction, and stamps each item with the direct-download URL. The
// transient file is removed regardless of extraction outcome.
func (e *DriveExtractor) extractFile(ctx context.Context, link driveLink) ([]*harvest.Item, error) {
	if err := waitForHost(ctx, e.limiter, link.url); err != nil {
		return nil, err
	}

	body, err := e.fetcher.Fetch(ctx, link.url)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(os.TempDir(), "harvest-drive-"+uuid.NewString()+".pdf")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return nil, err
	}
	defer os.Remove(path)

	items, err := e.pdfs.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.SourceURL = link.url
	}
	return items, nil
}

type driveLink struct {
	url  string
	name string
}

var (
	// scriptFileRE matches the in-page data tuples the folder listing embeds
	// for each file: (fileId, metadataArray, fileName, mimeType).
	scriptFileRE = regexp.MustCompile(`"([A-Za-z0-9_-]{25,})"\s*,\s*\[[^\]]+\]\s*,\s*"([^"]+\.pdf)"\s*,\s*"application/pdf"`)

	fileViewRE = regexp.MustCompile(`/file/d/.+/view`)
	fileIDRE   = regexp.MustCompile(`/file/d/([^/]+)`)
)

// findPDFLinks discovers candidate PDF entries via two independent
// techniques: script-payload scanning and an anchor-based structural
// fallback. Results may overlap; callers deduplicate.
func findPDFLinks(doc *goquery.Document) []driveLink {
	var links []driveLink

	// Technique A: file data tuples embedded in script payloads.
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		script := sel.Text()
		if !strings.Contains(script, "application/pdf") {
			return
		}
		for _, m := range scriptFileRE.FindAllStringSubmatch(script, -1) {
			fileID, fileName := m[1], m[2]
			if !validFileID(fileID) {
				continue
			}
			links = append(links, driveLink{url: downloadURL(fileID), name: fileName})
		}
	})

	// Technique B: anchors to file-view pages that look like PDFs.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		text := strings.TrimSpace(sel.Text())
		if !fileViewRE.MatchString(href) {
			return
		}
		if !strings.Contains(strings.ToLower(text), ".pdf") && !strings.Contains(strings.ToLower(href), ".pdf") {
			return
		}

		m := fileIDRE.FindStringSubmatch(href)
		if m == nil {
			return
		}
		name := text
		if name == "" {
			name = m[1] + ".pdf"
		}
		links = append(links, driveLink{url: downloadURL(m[1]), name: name})
	})

	return links
}

// dedupeLinks removes duplicate download URLs, first occurrence wins.
func dedupeLinks(links []driveLink) []driveLink {
	seen := make(map[string]bool, len(links))
	var unique []driveLink
	for _, link := range links {
		if seen[link.url] {
			continue
		}
		seen[link.url] = true
		unique = append(unique, link)
	}
	return unique
}

// validFileID reports whether id looks like a drive file identifier:
// at least 25 characters, all alphanumeric, hyphen, or underscore.
func validFileID(id string) bool {
	if len(id) < 25 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// downloadURL converts a file ID to its direct-download URL.
func downloadURL(fileID string) string {
	return "https://drive.google.com/uc?export=download&id=" + fileID
}
