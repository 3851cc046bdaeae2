// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/plateful/plateful-tui/internal/config"
	"github.com/plateful/plateful-tui/internal/planner"
	"github.com/plateful/plateful-tui/internal/ui/components"
	"github.com/plateful/plateful-tui/internal/ui/styles"
)

// =============================================================================
// VIEW IDENTIFIERS
// =============================================================================

// ViewID identifies the active screen. The values match the header tab
// order.
type ViewID int

const (
	ViewPlan ViewID = iota
	ViewRecipe
	ViewSaved
	ViewHistory
)

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// exchange is one substitution question and its reply, shown under the
// recipe until the next generation replaces the plan.
type exchange struct {
	Ingredient string
	Reply      string
}

// Model is the root Bubble Tea model for the planner UI.
type Model struct {
	theme *styles.Theme
	keys  KeyMap
	cfg   *config.Config

	session *planner.Session

	view   ViewID
	header *components.Header
	status *components.StatusBar
	spin   components.Spinner
	errBox *components.ErrorBox

	form *Form

	// Recipe view
	vp        viewport.Model
	renderer  *glamour.TermRenderer
	exchanges []exchange

	// Substitution prompt, shown over the recipe view
	subInput     textinput.Model
	substituting bool

	// Saved list selection
	savedIndex int

	pending bool
	width   int
	height  int
	ready   bool
}

// New creates the root model bound to a planning session.
func New(session *planner.Session, cfg *config.Config) *Model {
	theme := styles.NewThemeForMode(cfg.UI.Theme)

	sub := textinput.New()
	sub.Placeholder = "ingredient to substitute"
	sub.CharLimit = 200
	sub.Width = 40
	sub.Prompt = "substitute> "
	sub.PromptStyle = theme.InputPrompt
	sub.TextStyle = theme.InputText
	sub.PlaceholderStyle = theme.InputPlaceholder

	return &Model{
		theme:    theme,
		keys:     DefaultKeyMap(),
		cfg:      cfg,
		session:  session,
		header:   components.NewHeader(),
		status:   components.NewStatusBar(),
		spin:     components.NewCookingSpinner(),
		form:     NewForm(theme),
		vp:       viewport.New(80, 20),
		subInput: sub,
	}
}

// Init starts the cursor blink for the focused form field.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// VIEW SWITCHING
// =============================================================================

func (m *Model) switchView(v ViewID) {
	m.view = v
	m.header.SetActive(int(v))
	if v != ViewRecipe {
		m.substituting = false
	}
	if v == ViewSaved {
		m.clampSavedIndex()
	}
}

func (m *Model) clampSavedIndex() {
	n := m.session.SavedCount()
	if n == 0 {
		m.savedIndex = 0
		return
	}
	if m.savedIndex >= n {
		m.savedIndex = n - 1
	}
	if m.savedIndex < 0 {
		m.savedIndex = 0
	}
}

// =============================================================================
// RECIPE RENDERING
// =============================================================================

// setRecipeContent renders the latest recipe plus any substitution
// exchanges into the viewport.
func (m *Model) setRecipeContent() {
	recipe, ok := m.session.LatestRecipe()
	if !ok {
		m.vp.SetContent(m.theme.FormHint.Render("No recipe yet. Press 1 to plan one."))
		return
	}

	var sb strings.Builder
	sb.WriteString(recipe.Content)
	for _, ex := range m.exchanges {
		sb.WriteString("\n\n---\n\n")
		sb.WriteString("**Substitute " + ex.Ingredient + ":**\n\n")
		sb.WriteString(ex.Reply)
	}

	content := sb.String()
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.vp.SetContent(content)
}

// rebuildRenderer recreates the Markdown renderer for the current width.
func (m *Model) rebuildRenderer() {
	wrap := m.width - 4
	if wrap < 40 {
		wrap = 40
	}
	if wrap > 100 {
		wrap = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return
	}
	m.renderer = r
}
