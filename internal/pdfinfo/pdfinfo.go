// Package pdfinfo reads metadata out of uploaded PDF files
package pdfinfo

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PageCount parses the PDF in r and returns its number of pages
func PageCount(r io.ReaderAt, size int64) (count int, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if rec := recover(); rec != nil {
			count = 0
			err = fmt.Errorf("invalid pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return 0, fmt.Errorf("invalid pdf: %w", err)
	}

	count = reader.NumPage()
	if count < 1 {
		return 0, fmt.Errorf("invalid pdf: no pages")
	}

	return count, nil
}
