// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package planner owns the session-scoped state of one meal-planning
// conversation and the transitions that mutate it.
//
// # State machine
//
// A session starts Empty and moves to HasRecipe on the first successful
// Generate. Substitute, Regenerate, and Save are self-loops on
// HasRecipe. A failed remote call leaves the session state unchanged;
// the failure is reported to the caller of that transition only.
//
// # Key Types
//
//   - Session: mutable bundle of conversation, latest recipe, history,
//     and saved library, guarded by a mutex
//   - PromptInputs: the form fields embedded verbatim into the prompt
//   - Completer: the single remote call the planner depends on
//
// # Usage
//
//	session := planner.NewSession(client)
//	recipe, err := session.Generate(ctx, inputs)
//	reply, err := session.Substitute(ctx, "chicken")
//	recipe, err := session.Regenerate(ctx)
//	saved, err := session.Save()
package planner
