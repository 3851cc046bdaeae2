// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plateful/plateful-tui/internal/export"
	"github.com/plateful/plateful-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the single message router for the UI.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case GenerateResultMsg:
		return m.handleRecipeResult(msg.Err)

	case RegenerateResultMsg:
		return m.handleRecipeResult(msg.Err)

	case SubstituteResultMsg:
		m.pending = false
		m.spin.Stop()
		if msg.Err != nil {
			m.errBox = components.NewErrorBox(msg.Err)
			return m, nil
		}
		m.exchanges = append(m.exchanges, exchange{Ingredient: msg.Ingredient, Reply: msg.Reply})
		m.setRecipeContent()
		m.status.SetMessage("Substitutes for " + msg.Ingredient)
		return m, nil

	case ExportResultMsg:
		if msg.Err != nil {
			m.errBox = components.NewErrorBox(msg.Err)
			return m, nil
		}
		m.status.SetMessage("Exported " + msg.Path)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleResize propagates the new terminal size to the theme, the
// layout components, and the Markdown renderer.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.theme.SetSize(msg.Width, msg.Height)
	m.header.SetWidth(msg.Width)
	m.status.SetWidth(msg.Width)

	m.vp.Width = msg.Width - 2
	// Header takes two lines plus a blank, the status bar one.
	contentHeight := msg.Height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.vp.Height = contentHeight

	m.rebuildRenderer()
	m.setRecipeContent()
	return m, nil
}

// handleRecipeResult finishes a Generate or Regenerate round trip.
// On success the substitution exchanges belong to the discarded plan
// and are cleared.
func (m *Model) handleRecipeResult(err error) (tea.Model, tea.Cmd) {
	m.pending = false
	m.spin.Stop()

	if err != nil {
		m.errBox = components.NewErrorBox(err)
		return m, nil
	}

	m.exchanges = nil
	m.setRecipeContent()
	m.switchView(ViewRecipe)
	m.vp.GotoTop()
	if recipe, ok := m.session.LatestRecipe(); ok {
		m.status.SetMessage(recipe.Title)
	}
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-request.
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// A visible error captures input until dismissed.
	if m.errBox != nil {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Submit) {
			m.errBox = nil
		}
		return m, nil
	}

	// While a request is in flight, everything except quit is ignored.
	if m.pending {
		return m, nil
	}

	switch m.view {
	case ViewPlan:
		return m.handlePlanKey(msg)
	case ViewRecipe:
		return m.handleRecipeKey(msg)
	case ViewSaved:
		return m.handleSavedKey(msg)
	case ViewHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

// handlePlanKey drives the form. Printable keys go to the focused text
// input, so letter shortcuts are deliberately not available here.
func (m *Model) handlePlanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		m.form.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.pending = true
		m.status.SetMessage("")
		return m, tea.Batch(m.spin.Start(), generateCmd(m.session, m.form.Inputs()))

	case key.Matches(msg, m.keys.Back):
		if m.session.HasRecipe() {
			m.switchView(ViewRecipe)
		}
		return m, nil
	}

	if m.form.FocusedIsToggle() {
		switch msg.String() {
		case " ", "y", "n", "left", "right":
			m.form.Toggle()
			return m, nil
		}
	}

	return m, m.form.Update(msg)
}

func (m *Model) handleRecipeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The substitution prompt captures input when open.
	if m.substituting {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.substituting = false
			m.subInput.SetValue("")
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			ingredient := m.subInput.Value()
			m.substituting = false
			m.subInput.SetValue("")
			m.pending = true
			m.spin.SetMessage("Finding substitutes")
			return m, tea.Batch(m.spin.Start(), substituteCmd(m.session, ingredient))
		}
		var cmd tea.Cmd
		m.subInput, cmd = m.subInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Substitute):
		if !m.session.HasRecipe() {
			return m, nil
		}
		m.substituting = true
		return m, m.subInput.Focus()

	case key.Matches(msg, m.keys.Regenerate):
		if !m.session.HasRecipe() {
			return m, nil
		}
		m.pending = true
		m.spin.SetMessage("Cooking up a recipe")
		return m, tea.Batch(m.spin.Start(), regenerateCmd(m.session))

	case key.Matches(msg, m.keys.Save):
		recipe, err := m.session.Save()
		if err != nil {
			m.errBox = components.NewErrorBox(err)
			return m, nil
		}
		m.status.SetMessage("Saved " + recipe.Title)
		return m, nil

	case key.Matches(msg, m.keys.Export):
		recipe, ok := m.session.LatestRecipe()
		if !ok {
			return m, nil
		}
		return m, exportCmd(recipe, m.exportOptions())

	case key.Matches(msg, m.keys.NewPlan):
		m.switchView(ViewPlan)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.vp.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.vp.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m.handleViewSwitchKey(msg)
}

func (m *Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.savedIndex > 0 {
			m.savedIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.savedIndex < m.session.SavedCount()-1 {
			m.savedIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		saved := m.session.SavedRecipes()
		if m.savedIndex >= len(saved) {
			return m, nil
		}
		return m, exportCmd(saved[m.savedIndex], m.exportOptions())

	case key.Matches(msg, m.keys.Back):
		m.backToMain()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m.handleViewSwitchKey(msg)
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.backToMain()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m.handleViewSwitchKey(msg)
}

// handleViewSwitchKey handles the numeric tab shortcuts shared by all
// views without a focused text input.
func (m *Model) handleViewSwitchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.GoPlan):
		m.switchView(ViewPlan)
	case key.Matches(msg, m.keys.GoRecipe):
		m.switchView(ViewRecipe)
	case key.Matches(msg, m.keys.GoSaved):
		m.switchView(ViewSaved)
	case key.Matches(msg, m.keys.GoHistory):
		m.switchView(ViewHistory)
	}
	return m, nil
}

// backToMain returns to the recipe when one exists, otherwise the form.
func (m *Model) backToMain() {
	if m.session.HasRecipe() {
		m.switchView(ViewRecipe)
	} else {
		m.switchView(ViewPlan)
	}
}

func (m *Model) exportOptions() *export.Options {
	opts := export.DefaultOptions()
	if m.cfg.Export.OutputDir != "" {
		opts.OutputDir = m.cfg.Export.OutputDir
	}
	opts.OpenAfterExport = m.cfg.Export.OpenAfterExport
	return opts
}
