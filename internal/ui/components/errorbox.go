// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plateful/plateful-tui/internal/cloud"
	"github.com/plateful/plateful-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BOX COMPONENT
// =============================================================================

// ErrorBox renders a dismissible error with a title, message, and
// actionable suggestions.
type ErrorBox struct {
	Title       string
	Message     string
	Suggestions []string

	width int
}

// NewErrorBox creates an error box for an arbitrary error, deriving a
// title and suggestions from the well-known API error classes.
func NewErrorBox(err error) *ErrorBox {
	if err == nil {
		return nil
	}

	box := &ErrorBox{
		Title:   "Something went wrong",
		Message: err.Error(),
	}

	switch {
	case errors.Is(err, cloud.ErrNotConfigured):
		box.Title = "API key missing"
		box.Suggestions = []string{
			"Set PLATEFUL_API_KEY in your environment",
			"Or add api.key to ~/.plateful/config.toml",
		}
	case errors.Is(err, cloud.ErrAuthFailed):
		box.Title = "Authentication failed"
		box.Suggestions = []string{
			"Verify your OpenRouter API key",
			"Keys start with sk-or-",
		}
	case errors.Is(err, cloud.ErrRateLimited):
		box.Title = "Rate limited"
		box.Suggestions = []string{
			"Wait a moment and try again",
			"Free-tier models have per-minute limits",
		}
	case errors.Is(err, cloud.ErrInsufficientCredits):
		box.Title = "Out of credits"
		box.Suggestions = []string{
			"Top up your OpenRouter account",
			"Or switch to a free model via PLATEFUL_MODEL",
		}
	case errors.Is(err, cloud.ErrModelNotFound):
		box.Title = "Model not found"
		box.Suggestions = []string{
			"Check the model name in your config",
		}
	case errors.Is(err, cloud.ErrServerError):
		box.Title = "Service unavailable"
		box.Suggestions = []string{
			"OpenRouter had an internal error",
			"Try again in a moment",
		}
	case errors.Is(err, cloud.ErrTimeout):
		box.Title = "Request timed out"
		box.Suggestions = []string{
			"Try again; free-tier models can be slow",
			"Raise api.timeout_seconds in your config",
		}
	case cloud.IsTransportError(err):
		box.Title = "Connection failed"
		box.Suggestions = []string{
			"Check your network connection",
			"Try again in a moment",
		}
	}

	return box
}

// SetWidth sets the rendered box width.
func (e *ErrorBox) SetWidth(width int) {
	e.width = width
}

// View renders the error box.
func (e *ErrorBox) View(theme *styles.Theme) string {
	if e == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(theme.ErrorTitle.Render(styles.StatusIndicators.Error + " " + e.Title))
	sb.WriteString("\n")
	sb.WriteString(theme.ErrorMessage.Render(e.Message))

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range e.Suggestions {
			sb.WriteString("\n")
			sb.WriteString(theme.ErrorSuggestion.Render("- " + s))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(theme.ShortcutDesc.Render("press esc to dismiss"))

	box := theme.ErrorBox
	if e.width > 4 {
		box = box.Width(e.width - 4)
	}
	return box.Render(sb.String())
}

// =============================================================================
// RENDER HELPERS
// =============================================================================

// Overlay centers content within the given dimensions.
func Overlay(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
