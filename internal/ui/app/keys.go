// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/charmbracelet/bubbles/key"

// =============================================================================
// KEY BINDINGS
// =============================================================================

// KeyMap defines all key bindings for the planner UI. Letter bindings are
// only consulted in views without a focused text input; the form and the
// substitution prompt receive printable keys verbatim.
type KeyMap struct {
	// Form navigation
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// Recipe actions
	Substitute key.Binding
	Regenerate key.Binding
	Save       key.Binding
	Export     key.Binding
	NewPlan    key.Binding

	// View switching
	GoPlan    key.Binding
	GoRecipe  key.Binding
	GoSaved   key.Binding
	GoHistory key.Binding

	// Scrolling and lists
	Up   key.Binding
	Down key.Binding

	// Global
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Substitute: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "substitute"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export PDF"),
		),
		NewPlan: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new plan"),
		),
		GoPlan: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "plan"),
		),
		GoRecipe: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "recipe"),
		),
		GoSaved: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "saved"),
		),
		GoHistory: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "history"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
