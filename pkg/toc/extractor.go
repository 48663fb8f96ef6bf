// Package toc extracts a table of contents from PDF documents by pattern
// matching over their per-page plain text. It uses ledongthuc/pdf (pure Go,
// no CGO) for text extraction.
package toc

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"

	"github.com/ledongthuc/pdf"
)

// ErrExtraction is the only error extraction reports. Corrupt files, parser
// faults and missing text layers all collapse into it; the cause is logged,
// not surfaced.
var ErrExtraction = errors.New("could not extract table of contents from PDF")

// Extract reads the PDF and scans its pages for headings. Pages are decoded
// strictly in order, one at a time, because the scanner's page counter and
// main-content flag are incremental over that order.
func Extract(r io.ReaderAt, size int64) (entries []Entry, err error) {
	// The parser panics on some malformed files; fold that into the one
	// extraction error like any other fault.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("toc: pdf parser fault: %v", rec)
			entries, err = nil, ErrExtraction
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		log.Printf("toc: open pdf: %v", err)
		return nil, ErrExtraction
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable pages still occupy a slot so page numbering
			// stays aligned with the document.
			log.Printf("toc: page %d unreadable: %v", i, err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return ScanPages(pages), nil
}

// ExtractBytes runs Extract over an in-memory PDF.
func ExtractBytes(content []byte) ([]Entry, error) {
	if len(content) == 0 {
		log.Printf("toc: empty pdf content")
		return nil, ErrExtraction
	}
	return Extract(bytes.NewReader(content), int64(len(content)))
}

// ExtractFile runs Extract over a PDF on disk.
func ExtractFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("toc: open %s: %v", path, err)
		return nil, ErrExtraction
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Printf("toc: stat %s: %v", path, err)
		return nil, ErrExtraction
	}

	return Extract(f, info.Size())
}
