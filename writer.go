package harvest

import "context"

// ExportWriter persists the output record.
type ExportWriter interface {
	// WriteExport serializes the export, creating parent directories as
	// needed.
	WriteExport(ctx context.Context, export *Export) error
}
