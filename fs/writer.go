// Package fs provides file-based persistence for export records.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/harvest"
)

// Ensure Writer implements harvest.ExportWriter at compile time.
var _ harvest.ExportWriter = (*Writer)(nil)

// Writer writes export records as JSON files.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteExport serializes the export to disk, creating parent directories
// as needed.
func (w *Writer) WriteExport(ctx context.Context, export *harvest.Export) error {
	if err := export.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(w.path, append(data, '\n'), 0o644)
}
