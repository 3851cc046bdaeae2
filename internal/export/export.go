// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders saved recipes into downloadable documents.
// Supports paginated PDF, Markdown, and JSON output.
package export

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/plateful/plateful-tui/internal/model"
	"github.com/plateful/plateful-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for recipe exporters.
type Exporter interface {
	// Export converts a recipe to the target format and returns the
	// document as a byte buffer.
	Export(recipe model.Recipe) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".pdf").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		OpenAfterExport: false,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile exports a recipe to a file using the specified exporter.
// Returns the output file path or an error.
//
// The filename is derived from the recipe title; an unusable title falls
// back to "recipe". The write is atomic so a crash never leaves a
// half-written document next to the user's saved exports.
func ExportToFile(recipe model.Recipe, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(recipe)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, Filename(recipe, exporter))
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal - file was still created successfully
			fmt.Printf("Warning: Could not open file: %v\n", err)
		}
	}

	return outputPath, nil
}

// Filename returns the download filename for a recipe in the exporter's
// format, derived from the recipe title.
func Filename(recipe model.Recipe, exporter Exporter) string {
	return sanitizeFilename(recipe.Title) + exporter.FileExtension()
}

// ExportPDF exports a recipe as a paginated PDF document.
func ExportPDF(recipe model.Recipe, opts *Options) (string, error) {
	return ExportToFile(recipe, NewPDFExporter(), opts)
}

// ExportMarkdown exports a recipe to Markdown format.
func ExportMarkdown(recipe model.Recipe, opts *Options) (string, error) {
	return ExportToFile(recipe, NewMarkdownExporter(), opts)
}

// ExportJSON exports a recipe to JSON format.
func ExportJSON(recipe model.Recipe, opts *Options) (string, error) {
	return ExportToFile(recipe, NewJSONExporter(), opts)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename removes or replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	// Limit length
	s = util.SafeSubstring(s, 0, 50)

	// Replace problematic characters (Windows and Unix)
	replacer := map[rune]rune{
		'/':  '-',
		'\\': '-',
		':':  '-',
		'*':  '-',
		'?':  '-',
		'"':  '-',
		'<':  '-',
		'>':  '-',
		'|':  '-',
		' ':  '_',
		'\t': '_',
		'\n': '_',
		'\r': '_',
	}

	result := []rune{}
	for _, r := range s {
		if replacement, found := replacer[r]; found {
			result = append(result, replacement)
		} else if r < 32 || r == 127 {
			// Replace control characters
			result = append(result, '-')
		} else {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "recipe"
	}

	return string(result)
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
