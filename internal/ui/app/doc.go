// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the Bubble Tea application driving the plateful TUI.
//
// # Key Types
//
//   - Model: the root model, routing messages between the plan form,
//     the rendered recipe, the saved library, and the title history
//   - Form: the meal-preference input form
//   - KeyMap: all key bindings
//
// # Usage
//
//	session := planner.NewSession(client)
//	p := tea.NewProgram(app.New(session, cfg), tea.WithAltScreen())
//	_, err := p.Run()
//
// Remote calls run as commands; while one is in flight the UI shows a
// spinner and ignores everything except ctrl+c. A failed call surfaces
// as a dismissible error box and leaves the session untouched.
package app
