package harvest

// PDFReader extracts text from PDF files on disk.
type PDFReader interface {
	// ExtractText returns the concatenated extractable text of every page
	// in page order. Extraction is best-effort: a page whose text cannot
	// be extracted contributes an empty string, not an error. The error
	// return covers files that cannot be opened or parsed at all.
	ExtractText(path string) (string, error)
}
