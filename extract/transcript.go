package extract

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/harvest"
)

// Ensure TranscriptExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*TranscriptExtractor)(nil)

// TranscriptExtractor handles plain-text transcript files.
type TranscriptExtractor struct {
	logger *slog.Logger
}

// NewTranscriptExtractor creates a new TranscriptExtractor.
func NewTranscriptExtractor(logger *slog.Logger) *TranscriptExtractor {
	return &TranscriptExtractor{logger: logger}
}

// CanHandle reports whether source names an existing .txt file.
func (e *TranscriptExtractor) CanHandle(source string) bool {
	return isFile(source) && strings.HasSuffix(strings.ToLower(source), ".txt")
}

// Extract reads the transcript and emits a single call_transcript item.
func (e *TranscriptExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		e.logger.Error("transcript: reading file", "source", source, "error", err)
		return nil, nil
	}

	return []*harvest.Item{{
		Title:       filepath.Base(source),
		Content:     harvest.NormalizeText(string(data)),
		ContentType: harvest.TypeCallTranscript,
	}}, nil
}
