// Package docx generates DOCX files for the DepEd Daily Lesson Log,
// either one portrait section per day or one landscape weekly grid per
// five-day week.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jpsantiago/aralplan/internal/types"
)

// ErrExport wraps document generation failures. Export errors never
// touch the in-memory plan.
var ErrExport = errors.New("export error")

// Layout selects the document shape.
type Layout string

const (
	// LayoutDaily produces one portrait page per day.
	LayoutDaily Layout = "daily"
	// LayoutWeekly produces one landscape Monday-Friday grid per week.
	LayoutWeekly Layout = "weekly"
)

// ParseLayout validates a layout name. An empty string means daily.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutDaily:
		return LayoutDaily, nil
	case LayoutWeekly:
		return LayoutWeekly, nil
	default:
		return "", fmt.Errorf("%w: unknown layout %q", ErrExport, s)
	}
}

// Filename returns the download filename for a layout.
func (l Layout) Filename() string {
	if l == LayoutWeekly {
		return "lesson-plan-weekly.docx"
	}
	return "lesson-plan.docx"
}

// ContentType is the MIME type for DOCX downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Builder creates DOCX files.
type Builder struct {
	data   *types.GeneratedData
	info   types.PrintInfo
	layout Layout
}

// NewBuilder creates a new DOCX builder.
func NewBuilder(data *types.GeneratedData, info types.PrintInfo, layout Layout) *Builder {
	if layout == "" {
		layout = LayoutDaily
	}
	return &Builder{
		data:   data,
		info:   info,
		layout: layout,
	}
}

// Build generates the document and writes it to the specified path.
func (b *Builder) Build(outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %v", ErrExport, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %v", ErrExport, err)
	}
	defer f.Close()

	return b.WriteTo(f)
}

// WriteTo writes the document to a writer.
func (b *Builder) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := b.writeContentTypes(zw); err != nil {
		return err
	}
	if err := b.writePackageRels(zw); err != nil {
		return err
	}
	if err := b.writeDocumentRels(zw); err != nil {
		return err
	}
	if err := b.writeDocument(zw); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: failed to finalize archive: %v", ErrExport, err)
	}
	return nil
}

// BuildToBuffer generates the document and returns it as a byte buffer.
func (b *Builder) BuildToBuffer() (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := b.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// writeContentTypes writes [Content_Types].xml.
func (b *Builder) writeContentTypes(zw *zip.Writer) error {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	w, err := zw.Create("[Content_Types].xml")
	if err != nil {
		return fmt.Errorf("%w: failed to create content types: %v", ErrExport, err)
	}
	_, err = w.Write([]byte(content))
	return err
}

// writePackageRels writes _rels/.rels.
func (b *Builder) writePackageRels(zw *zip.Writer) error {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	w, err := zw.Create("_rels/.rels")
	if err != nil {
		return fmt.Errorf("%w: failed to create package rels: %v", ErrExport, err)
	}
	_, err = w.Write([]byte(content))
	return err
}

// writeDocumentRels writes word/_rels/document.xml.rels.
func (b *Builder) writeDocumentRels(zw *zip.Writer) error {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

	w, err := zw.Create("word/_rels/document.xml.rels")
	if err != nil {
		return fmt.Errorf("%w: failed to create document rels: %v", ErrExport, err)
	}
	_, err = w.Write([]byte(content))
	return err
}

// writeDocument writes word/document.xml.
func (b *Builder) writeDocument(zw *zip.Writer) error {
	w, err := zw.Create("word/document.xml")
	if err != nil {
		return fmt.Errorf("%w: failed to create document.xml: %v", ErrExport, err)
	}

	var content string
	switch b.layout {
	case LayoutWeekly:
		content = b.generateWeeklyDocument()
	default:
		content = b.generateDailyDocument()
	}

	_, err = w.Write([]byte(content))
	return err
}
