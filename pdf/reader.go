// Package pdf provides a ledongthuc/pdf based implementation of
// harvest.PDFReader.
package pdf

import (
	"strings"

	"github.com/fwojciec/harvest"
	"github.com/ledongthuc/pdf"
)

// Ensure Reader implements harvest.PDFReader at compile time.
var _ harvest.PDFReader = (*Reader)(nil)

// Reader extracts plain text from PDF files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ExtractText concatenates the extractable text of every page in page
// order. A page whose text cannot be extracted contributes nothing; only a
// file that cannot be opened or parsed at all returns an error.
func (r *Reader) ExtractText(path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
