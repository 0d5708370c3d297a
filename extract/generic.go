package extract

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/harvest"
)

// Ensure GenericExtractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*GenericExtractor)(nil)

// GenericExtractor is the fallback of last resort. It accepts every source
// and must therefore be ordered last in the router's chain.
type GenericExtractor struct {
	logger *slog.Logger
}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor(logger *slog.Logger) *GenericExtractor {
	return &GenericExtractor{logger: logger}
}

// CanHandle always returns true.
func (e *GenericExtractor) CanHandle(source string) bool {
	return true
}

// Extract reads the source as a local text file and emits a single item.
// Sources that do not name an existing file yield no items.
func (e *GenericExtractor) Extract(ctx context.Context, source string) ([]*harvest.Item, error) {
	if !isFile(source) {
		e.logger.Info("generic: source is not a local file, nothing to extract", "source", source)
		return nil, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		e.logger.Error("generic: reading file", "source", source, "error", err)
		return nil, nil
	}

	return []*harvest.Item{{
		Title:       filepath.Base(source),
		Content:     harvest.NormalizeText(string(data)),
		ContentType: harvest.TypeOther,
	}}, nil
}
