// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/plateful/plateful-tui/internal/model"
)

// =============================================================================
// PDF EXPORTER
// =============================================================================

// Layout constants for the recipe document. Heading sizes decrease with
// depth so levels stay visually distinct.
const (
	pdfTitleSize    = 18
	pdfHeading1Size = 16
	pdfHeading2Size = 14
	pdfHeading3Size = 12
	pdfBodySize     = 12

	pdfTitleHeight    = 10
	pdfHeading1Height = 10
	pdfHeading2Height = 8
	pdfHeading3Height = 8
	pdfBodyLineHeight = 6

	pdfTitleGap = 4
	pdfBlankGap = 2
)

// blockKind classifies one content line for layout.
type blockKind int

const (
	blockBlank blockKind = iota
	blockHeading1
	blockHeading2
	blockHeading3
	blockBody
)

// block is one laid-out unit of the document.
type block struct {
	kind blockKind
	text string
}

// parseBlocks walks the Markdown-like content line by line and produces
// layout blocks in original order. Only exact `# `, `## `, and `### `
// prefixes are heading markers; the marker and surrounding whitespace
// are stripped from the heading text. Every other non-blank line is a
// body paragraph.
func parseBlocks(content string) []block {
	var blocks []block
	for _, line := range strings.Split(content, "\n") {
		text := strings.TrimSpace(line)
		switch {
		case text == "":
			blocks = append(blocks, block{kind: blockBlank})
		case strings.HasPrefix(text, "# "):
			blocks = append(blocks, block{kind: blockHeading1, text: strings.TrimSpace(text[2:])})
		case strings.HasPrefix(text, "## "):
			blocks = append(blocks, block{kind: blockHeading2, text: strings.TrimSpace(text[3:])})
		case strings.HasPrefix(text, "### "):
			blocks = append(blocks, block{kind: blockHeading3, text: strings.TrimSpace(text[4:])})
		default:
			blocks = append(blocks, block{kind: blockBody, text: text})
		}
	}
	return blocks
}

// PDFExporter renders a recipe as a paginated PDF document.
//
// The title is placed as a centered top-level header on page 1, then the
// content blocks follow in original order. Page breaks are automatic, so
// the whole input is consumed without truncation and body text wraps to
// the page width instead of overflowing.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export converts a recipe to a single paginated PDF document.
func (e *PDFExporter) Export(recipe model.Recipe) ([]byte, error) {
	title := toLatin1(recipe.Title)
	content := toLatin1(recipe.Content)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", pdfTitleSize)
	pdf.CellFormat(0, pdfTitleHeight, title, "", 1, "C", false, 0, "")
	pdf.Ln(pdfTitleGap)

	for _, b := range parseBlocks(content) {
		switch b.kind {
		case blockBlank:
			pdf.Ln(pdfBlankGap)
		case blockHeading1:
			pdf.SetFont("Arial", "B", pdfHeading1Size)
			pdf.CellFormat(0, pdfHeading1Height, b.text, "", 1, "L", false, 0, "")
		case blockHeading2:
			pdf.SetFont("Arial", "B", pdfHeading2Size)
			pdf.CellFormat(0, pdfHeading2Height, b.text, "", 1, "L", false, 0, "")
		case blockHeading3:
			pdf.SetFont("Arial", "B", pdfHeading3Size)
			pdf.CellFormat(0, pdfHeading3Height, b.text, "", 1, "L", false, 0, "")
		case blockBody:
			pdf.SetFont("Arial", "", pdfBodySize)
			pdf.MultiCell(0, pdfBodyLineHeight, b.text, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for PDF.
func (e *PDFExporter) FileExtension() string {
	return ".pdf"
}

// MimeType returns the MIME type for PDF.
func (e *PDFExporter) MimeType() string {
	return "application/pdf"
}
