// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plateful/plateful-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header renders the application title bar with the active tab highlighted.
type Header struct {
	Title    string
	Subtitle string
	Tabs     []string
	Active   int

	width int
}

// NewHeader creates the standard plateful header.
func NewHeader() *Header {
	return &Header{
		Title:    "Plateful",
		Subtitle: "AI meal planner",
		Tabs:     []string{"Plan", "Recipe", "Saved", "History"},
	}
}

// SetWidth sets the header width for centering.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetActive selects the highlighted tab by index.
func (h *Header) SetActive(idx int) {
	if idx >= 0 && idx < len(h.Tabs) {
		h.Active = idx
	}
}

// View renders the header and tab bar.
func (h *Header) View(theme *styles.Theme) string {
	title := theme.HeaderTitle.Render(h.Title)
	if h.Subtitle != "" {
		title += " " + theme.HeaderSubtitle.Render(h.Subtitle)
	}

	var tabs []string
	for i, tab := range h.Tabs {
		if i == h.Active {
			tabs = append(tabs, theme.TabActive.Render(tab))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(tab))
		}
	}
	tabBar := strings.Join(tabs, " ")

	line := lipgloss.JoinVertical(lipgloss.Left, title, tabBar)
	if h.width > 0 {
		return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, line)
	}
	return line
}
