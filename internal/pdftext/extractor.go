// Package pdftext turns an uploaded PDF into the concatenated plain text of
// its pages, for grounding lesson plan generation in reference material.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrPdfParse indicates the uploaded blob is not a readable PDF. The caller
// clears the selected file and surfaces a user-facing message; competency-only
// generation stays available.
var ErrPdfParse = errors.New("pdf parse failed")

// Result holds the extracted text of a document.
type Result struct {
	Pages int    `json:"pages"`
	Chars int    `json:"chars"`
	Text  string `json:"text"`
}

// Extractor extracts page text from PDF documents. The zero value is ready
// to use.
type Extractor struct {
	// PageSeparator is inserted between pages. Defaults to a blank line.
	PageSeparator string
}

// Extract reads the document from an in-memory blob. Pages are processed in
// order 1..N; the text items of each page are joined with single spaces and
// pages are joined with PageSeparator.
func (e *Extractor) Extract(data []byte) (*Result, error) {
	// pdfcpu parses the full xref up front, which catches truncated and
	// non-PDF uploads before the page loop starts.
	pageCount, err := pdfcpu.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPdfParse, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrPdfParse)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPdfParse, err)
	}

	return e.extractPages(reader)
}

// ExtractFile reads the document from disk.
func (e *Extractor) ExtractFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return e.Extract(data)
}

func (e *Extractor) extractPages(reader *pdf.Reader) (*Result, error) {
	separator := e.PageSeparator
	if separator == "" {
		separator = "\n\n"
	}

	total := reader.NumPage()
	var sb strings.Builder
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrPdfParse, pageNum, err)
		}

		// Collapse the per-item runs into single-space separated words so a
		// page reads as one flat line of text.
		joined := strings.Join(strings.Fields(text), " ")
		if joined == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(joined)
	}

	text := sb.String()
	return &Result{Pages: total, Chars: len(text), Text: text}, nil
}
