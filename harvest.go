// Package harvest extracts human-readable content from heterogeneous
// sources - websites, PDFs, plain-text transcripts, and a handful of named
// platforms - and normalizes everything into a single item schema suitable
// for downstream ingestion.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, rod/, trafilatura/). The
// routing and extraction-strategy core lives in extract/.
package harvest
