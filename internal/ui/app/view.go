// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plateful/plateful-tui/internal/ui/components"
	"github.com/plateful/plateful-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full screen for the active view.
func (m *Model) View() string {
	if !m.ready {
		return "Starting plateful..."
	}

	var body string
	switch m.view {
	case ViewPlan:
		body = m.viewPlan()
	case ViewRecipe:
		body = m.viewRecipe()
	case ViewSaved:
		body = m.viewSaved()
	case ViewHistory:
		body = m.viewHistory()
	}

	if m.errBox != nil {
		m.errBox.SetWidth(m.width)
		body = components.Overlay(m.errBox.View(m.theme), m.width, m.vp.Height)
	}

	m.status.SetShortcuts(m.shortcuts())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(m.theme),
		"",
		body,
		m.status.View(m.theme),
	)
}

// =============================================================================
// PER-VIEW BODIES
// =============================================================================

func (m *Model) viewPlan() string {
	var sb strings.Builder
	sb.WriteString(m.form.View(m.theme))
	if m.pending {
		sb.WriteString("\n" + m.spin.View())
	} else {
		sb.WriteString("\n" + m.theme.FormHint.Render("tab to move, enter to generate"))
	}
	return m.theme.Container.Render(sb.String())
}

func (m *Model) viewRecipe() string {
	if !m.session.HasRecipe() && !m.pending {
		return m.theme.Container.Render(
			m.theme.FormHint.Render("No recipe yet. Press 1 to plan one."))
	}

	var sb strings.Builder
	sb.WriteString(m.vp.View())

	if m.substituting {
		sb.WriteString("\n" + m.subInput.View())
	}
	if m.pending {
		sb.WriteString("\n" + m.spin.View())
	}

	return sb.String()
}

func (m *Model) viewSaved() string {
	saved := m.session.SavedRecipes()
	if len(saved) == 0 {
		return m.theme.Container.Render(
			m.theme.FormHint.Render("Nothing saved yet. Press w on a recipe to keep it."))
	}

	var sb strings.Builder
	sb.WriteString(m.theme.RecipeTitle.Render("Saved recipes") + "\n\n")
	for i, recipe := range saved {
		line := strconv.Itoa(i+1) + ". " + util.TruncateRunes(recipe.Title, 60)
		if i == m.savedIndex {
			sb.WriteString(m.theme.ListItemSelected.Render(line))
		} else {
			sb.WriteString(m.theme.ListItem.Render(line))
		}
		sb.WriteString("\n")
	}
	return m.theme.Container.Render(sb.String())
}

func (m *Model) viewHistory() string {
	titles := m.session.HistoryTitles()
	if len(titles) == 0 {
		return m.theme.Container.Render(
			m.theme.FormHint.Render("No recipes generated this session."))
	}

	var sb strings.Builder
	sb.WriteString(m.theme.RecipeTitle.Render("Generated this session") + "\n\n")
	for i, title := range titles {
		sb.WriteString(m.theme.ListItem.Render(strconv.Itoa(i+1) + ". " + util.TruncateRunes(title, 60)))
		sb.WriteString("\n")
	}
	return m.theme.Container.Render(sb.String())
}

// =============================================================================
// STATUS BAR SHORTCUTS
// =============================================================================

func (m *Model) shortcuts() []components.Shortcut {
	switch m.view {
	case ViewPlan:
		return []components.Shortcut{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "generate"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case ViewRecipe:
		if m.substituting {
			return []components.Shortcut{
				{Key: "enter", Desc: "ask"},
				{Key: "esc", Desc: "cancel"},
			}
		}
		return []components.Shortcut{
			{Key: "s", Desc: "substitute"},
			{Key: "r", Desc: "regenerate"},
			{Key: "w", Desc: "save"},
			{Key: "e", Desc: "export"},
			{Key: "n", Desc: "new plan"},
			{Key: "q", Desc: "quit"},
		}
	case ViewSaved:
		return []components.Shortcut{
			{Key: "↑/↓", Desc: "select"},
			{Key: "e", Desc: "export"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	default:
		return []components.Shortcut{
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
}
