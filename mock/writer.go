package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.ExportWriter = (*ExportWriter)(nil)

// ExportWriter is a mock implementation of harvest.ExportWriter.
type ExportWriter struct {
	WriteExportFn func(ctx context.Context, export *harvest.Export) error
}

func (w *ExportWriter) WriteExport(ctx context.Context, export *harvest.Export) error {
	return w.WriteExportFn(ctx, export)
}
