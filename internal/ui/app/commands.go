// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plateful/plateful-tui/internal/export"
	"github.com/plateful/plateful-tui/internal/model"
	"github.com/plateful/plateful-tui/internal/planner"
)

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// Commands wrap the blocking session transitions so the UI stays
// responsive while a request is in flight. Cancellation is not wired to
// the UI; the client's own timeout bounds each call.

func generateCmd(s *planner.Session, inputs planner.PromptInputs) tea.Cmd {
	return func() tea.Msg {
		recipe, err := s.Generate(context.Background(), inputs)
		return GenerateResultMsg{Recipe: recipe, Err: err}
	}
}

func regenerateCmd(s *planner.Session) tea.Cmd {
	return func() tea.Msg {
		recipe, err := s.Regenerate(context.Background())
		return RegenerateResultMsg{Recipe: recipe, Err: err}
	}
}

func substituteCmd(s *planner.Session, ingredient string) tea.Cmd {
	return func() tea.Msg {
		reply, err := s.Substitute(context.Background(), ingredient)
		return SubstituteResultMsg{Ingredient: ingredient, Reply: reply, Err: err}
	}
}

func exportCmd(recipe model.Recipe, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ExportPDF(recipe, opts)
		return ExportResultMsg{Path: path, Err: err}
	}
}
