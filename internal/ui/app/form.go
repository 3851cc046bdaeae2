// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plateful/plateful-tui/internal/planner"
	"github.com/plateful/plateful-tui/internal/ui/styles"
)

// =============================================================================
// FIELD DEFINITIONS
// =============================================================================

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldToggle
)

// Field indices, in display order.
const (
	fieldIngredients = iota
	fieldMealType
	fieldDietary
	fieldPrepTime
	fieldPortions
	fieldTools
	fieldNutrition
	fieldExtra
	fieldCount
)

type formField struct {
	label       string
	placeholder string
	kind        fieldKind

	input  textinput.Model
	toggle bool
}

// =============================================================================
// FORM
// =============================================================================

// Form is the meal-preference input form. It manages focus across the
// text fields and the nutrition toggle and maps its values onto the
// prompt inputs.
type Form struct {
	fields []formField
	focus  int
}

// NewForm creates the form with all fields blank and the first focused.
func NewForm(theme *styles.Theme) *Form {
	defs := []struct {
		label       string
		placeholder string
		kind        fieldKind
	}{
		{"Ingredients", "e.g. chicken, rice, broccoli", fieldText},
		{"Meal type", "breakfast, lunch, dinner, snack", fieldText},
		{"Dietary needs", "vegetarian, gluten-free, none...", fieldText},
		{"Prep time", "e.g. 30 minutes", fieldText},
		{"Portions", "e.g. 2 servings", fieldText},
		{"Tools to avoid", "e.g. oven, blender", fieldText},
		{"Include nutrition info", "", fieldToggle},
		{"Other preferences", "anything else the cook should know", fieldText},
	}

	f := &Form{fields: make([]formField, 0, len(defs))}
	for _, d := range defs {
		field := formField{label: d.label, placeholder: d.placeholder, kind: d.kind}
		if d.kind == fieldText {
			ti := textinput.New()
			ti.Placeholder = d.placeholder
			ti.CharLimit = 500
			ti.Width = 48
			ti.PromptStyle = theme.InputPrompt
			ti.TextStyle = theme.InputText
			ti.PlaceholderStyle = theme.InputPlaceholder
			field.input = ti
		}
		f.fields = append(f.fields, field)
	}

	f.applyFocus()
	return f
}

// =============================================================================
// FOCUS AND INPUT
// =============================================================================

// Focus returns the index of the focused field.
func (f *Form) Focus() int {
	return f.focus
}

// Next moves focus to the following field, wrapping at the end.
func (f *Form) Next() {
	f.focus = (f.focus + 1) % len(f.fields)
	f.applyFocus()
}

// Prev moves focus to the preceding field, wrapping at the start.
func (f *Form) Prev() {
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.applyFocus()
}

func (f *Form) applyFocus() {
	for i := range f.fields {
		if f.fields[i].kind != fieldText {
			continue
		}
		if i == f.focus {
			f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
}

// FocusedIsToggle reports whether the focused field is the toggle.
func (f *Form) FocusedIsToggle() bool {
	return f.fields[f.focus].kind == fieldToggle
}

// Toggle flips the toggle field when it has focus.
func (f *Form) Toggle() {
	if f.FocusedIsToggle() {
		f.fields[f.focus].toggle = !f.fields[f.focus].toggle
	}
}

// Update routes a message to the focused text field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if f.fields[f.focus].kind != fieldText {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// =============================================================================
// VALUES
// =============================================================================

// Inputs maps the current field values onto the prompt inputs. The
// toggle becomes the literal "yes" or "no" the prompt template embeds.
func (f *Form) Inputs() planner.PromptInputs {
	nutrition := "no"
	if f.fields[fieldNutrition].toggle {
		nutrition = "yes"
	}
	return planner.PromptInputs{
		Ingredients:      strings.TrimSpace(f.fields[fieldIngredients].input.Value()),
		MealType:         strings.TrimSpace(f.fields[fieldMealType].input.Value()),
		DietaryNeed:      strings.TrimSpace(f.fields[fieldDietary].input.Value()),
		PrepTime:         strings.TrimSpace(f.fields[fieldPrepTime].input.Value()),
		PortionSize:      strings.TrimSpace(f.fields[fieldPortions].input.Value()),
		ToolsToAvoid:     strings.TrimSpace(f.fields[fieldTools].input.Value()),
		NutritionAnswer:  nutrition,
		ExtraPreferences: strings.TrimSpace(f.fields[fieldExtra].input.Value()),
	}
}

// SetValue sets a text field's value directly. Toggle fields are
// ignored; use Toggle.
func (f *Form) SetValue(idx int, value string) {
	if idx < 0 || idx >= len(f.fields) || f.fields[idx].kind != fieldText {
		return
	}
	f.fields[idx].input.SetValue(value)
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the form fields with the focused label highlighted.
func (f *Form) View(theme *styles.Theme) string {
	var sb strings.Builder
	for i, field := range f.fields {
		label := theme.FormLabel.Render(field.label)
		if i == f.focus {
			label = theme.FormLabelFocused.Render(field.label)
		}

		sb.WriteString(label)
		sb.WriteString("\n")
		if field.kind == fieldToggle {
			sb.WriteString("  " + renderToggle(theme, field.toggle, i == f.focus))
		} else {
			sb.WriteString("  " + field.input.View())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderToggle(theme *styles.Theme, on, focused bool) string {
	var out string
	if on {
		out = theme.FormToggleOn.Render("[x] yes")
	} else {
		out = theme.FormToggleOff.Render("[ ] no")
	}
	if focused {
		out += " " + theme.FormHint.Render("(space to toggle)")
	}
	return out
}
