package mock

import "github.com/fwojciec/harvest"

var _ harvest.PDFReader = (*PDFReader)(nil)

// PDFReader is a mock implementation of harvest.PDFReader.
type PDFReader struct {
	ExtractTextFn func(path string) (string, error)
}

func (r *PDFReader) ExtractText(path string) (string, error) {
	return r.ExtractTextFn(path)
}
