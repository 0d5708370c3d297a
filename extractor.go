package harvest

import "context"

// Extractor is the capability contract implemented by each source-family
// strategy (website, PDF, transcript, drive folder, and the named
// platforms). The router holds extractors in a fixed priority order and
// dispatches a source to the first one whose CanHandle returns true.
type Extractor interface {
	// CanHandle reports whether this extractor applies to the source.
	// It must be a pure predicate: no network or file I/O beyond
	// path/string inspection. The generic fallback extractor is the one
	// exception - it always returns true and must be ordered last.
	CanHandle(source string) bool

	// Extract performs all I/O and returns the recovered items.
	// Anticipated failures (transport errors, missing elements, bad file
	// paths) are absorbed: the failing unit is logged and skipped, and a
	// source with nothing recoverable yields an empty slice with a nil
	// error. The error return is reserved for programming errors.
	Extract(ctx context.Context, source string) ([]*Item, error)
}
