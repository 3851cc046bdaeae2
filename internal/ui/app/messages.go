// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/plateful/plateful-tui/internal/model"

// =============================================================================
// ASYNC RESULT MESSAGES
// =============================================================================

// GenerateResultMsg carries the outcome of a recipe generation request.
type GenerateResultMsg struct {
	Recipe model.Recipe
	Err    error
}

// RegenerateResultMsg carries the outcome of a regeneration request.
type RegenerateResultMsg struct {
	Recipe model.Recipe
	Err    error
}

// SubstituteResultMsg carries the outcome of an ingredient substitution
// request. Ingredient echoes what was asked so the exchange can be
// displayed alongside the reply.
type SubstituteResultMsg struct {
	Ingredient string
	Reply      string
	Err        error
}

// ExportResultMsg carries the outcome of a PDF export.
type ExportResultMsg struct {
	Path string
	Err  error
}
