// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"

	"github.com/plateful/plateful-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports recipes to JSON format. The export is the
// complete recipe record, so it round-trips through encoding/json.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a recipe to JSON format.
func (e *JSONExporter) Export(recipe model.Recipe) ([]byte, error) {
	if recipe.Content == "" {
		return nil, fmt.Errorf("recipe has no content")
	}

	return json.MarshalIndent(recipe, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
