// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the plateful TUI.
//
// # Key Types
//
//   - Header: application title bar with tab highlighting
//   - StatusBar: bottom bar with key hints and transient status messages
//   - Spinner: loading spinner with message and elapsed-time display
//   - ErrorBox: dismissible error display with suggestions derived from
//     the API error classes
//
// Components are plain view helpers: they hold their own state, take the
// active Theme at render time, and leave message routing to the parent
// Bubble Tea model.
package components
