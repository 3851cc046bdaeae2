// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders saved recipes into downloadable documents.
//
// # Supported Formats
//
//   - PDF: paginated document with styled headings (the download format
//     offered in the saved-recipes view)
//   - Markdown: YAML frontmatter plus the raw recipe body
//   - JSON: complete recipe record, re-importable
//
// # Key Types
//
//   - Exporter: Export / FileExtension / MimeType interface
//   - Options: output directory and open-after-export behavior
//
// # Usage
//
//	path, err := export.ExportPDF(recipe, &export.Options{OutputDir: dir})
//
// or, for an in-memory byte buffer:
//
//	data, err := export.NewPDFExporter().Export(recipe)
//
// # Encoding
//
// PDF output uses the core Latin-1 fonts. Characters outside Latin-1
// are dropped deterministically before layout; see latin1.go.
package export
