// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plateful/plateful-tui/internal/ui/styles"
	"github.com/plateful/plateful-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is a single key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders a bottom bar with key hints and a transient status
// message (e.g. "Saved" or an export path).
type StatusBar struct {
	Shortcuts []Shortcut
	Message   string

	width int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetShortcuts replaces the displayed key hints.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.Shortcuts = shortcuts
}

// SetMessage sets the transient status message.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
}

// View renders the status bar.
func (s *StatusBar) View(theme *styles.Theme) string {
	var parts []string
	for _, sc := range s.Shortcuts {
		parts = append(parts,
			theme.ShortcutKey.Render(sc.Key)+" "+theme.ShortcutDesc.Render(sc.Desc))
	}
	hints := strings.Join(parts, "  ")

	line := hints
	if s.Message != "" {
		msg := s.Message
		if s.width > 0 {
			// Keep the message from pushing the hints off-screen.
			budget := s.width - util.StringWidth(hints) - 4
			msg = util.TruncateWidth(msg, budget)
		}
		if msg != "" {
			line = hints + "  " + theme.InfoStyle.Render(msg)
		}
	}

	bar := theme.StatusBar
	if s.width > 0 {
		bar = bar.Width(s.width)
	}
	return bar.Render(line)
}

// RenderShortcutLine renders a standalone hint line without the bar
// background, for use inside view bodies.
func RenderShortcutLine(theme *styles.Theme, shortcuts []Shortcut) string {
	var parts []string
	for _, sc := range shortcuts {
		parts = append(parts,
			theme.ShortcutKey.Render(sc.Key)+" "+theme.ShortcutDesc.Render(sc.Desc))
	}
	return lipgloss.NewStyle().Render(strings.Join(parts, "  "))
}
