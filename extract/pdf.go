package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/harvest"
)

// Ensure PDFExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*PDFExtractor)(nil)

// PDFExtractor handles local PDF files.
//
// The default mode emits the whole document as one book item to avoid
// fragmentation. Chapter splitting is available via WithChapterSplit.
type PDFExtractor struct {
	reader       harvest.PDFReader
	logger       *slog.Logger
	chapterSplit bool
}

// PDFOption configures a PDFExtractor.
type PDFOption func(*PDFExtractor)

// WithChapterSplit enables the alternate mode that scans for "chapter N"
// markers and emits one item per chapter. A document with no markers
// degenerates to a single item titled "Document".
func WithChapterSplit(enabled bool) PDFOption {
	return func(e *PDFExtractor) {
		e.chapterSplit = enabled
	}
}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor(reader harvest.PDFReader, logger *slog.Logger, opts ...PDFOption) *PDFExtractor {
	e := &PDFExtractor{reader: reader, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CanHandle reports whether source names an existing .pdf file.
func (e *PDFExtractor) CanHandle(source string) bool {
	return isFile(source) && strings.HasSuffix(strings.ToLower(source), ".pdf")
}

// Extract reads the PDF's text in page order and emits book items.
func (e *PDFExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	if !isFile(source) {
		e.logger.Info("pdf: source is not a local file, nothing to extract", "source", source)
		return nil, nil
	}

	text, err := e.reader.ExtractText(source)
	if err != nil {
		e.logger.Error("pdf: extracting text", "source", source, "error", err)
		return nil, nil
	}

	if e.chapterSplit {
		var items []*harvest.Item
		for _, ch := range splitChapters(text) {
			items = append(items, &harvest.Item{
				Title:       ch.title,
				Content:     harvest.NormalizeText(ch.content),
				ContentType: harvest.TypeBook,
			})
		}
		return items, nil
	}

	title := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return []*harvest.Item{{
		Title:       title,
		Content:     harvest.NormalizeText(text),
		ContentType: harvest.TypeBook,
	}}, nil
}

type chapter struct {
	title   string
	content string
}

var chapterMarkerRE = regexp.MustCompile(`(?i)chapter\s+\d+[^\n]*`)

// splitChapters splits text on "chapter N" markers. Each chapter's title is
// the marker line and its content runs until the next marker. Chapters with
// no content are dropped. Text with no markers at all becomes a single
// "Document" chapter.
func splitChapters(text string) []chapter {
	marks := chapterMarkerRE.FindAllStringIndex(text, -1)

	var chapters []chapter
	for i, mark := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		content := strings.TrimSpace(text[mark[1]:end])
		if content == "" {
			continue
		}
		chapters = append(chapters, chapter{
			title:   strings.TrimSpace(text[mark[0]:mark[1]]),
			content: content,
		})
	}

	if len(chapters) == 0 {
		return []chapter{{title: "Document", content: strings.TrimSpace(text)}}
	}
	return chapters
}
