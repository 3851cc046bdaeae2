// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for planning conversations,
// messages, and recipes.
//
// This package defines the core domain types used throughout the
// application for representing the chat exchange with the remote model
// and the recipes derived from it.
//
// # Key Types
//
//   - Conversation: Append-only ordered list of turns for one session
//   - Message: Single turn with role, content, and timestamp
//   - Recipe: Titled block of generated Markdown-like text
//   - SavedLibrary: Append-only list of recipes saved during the session
//   - History: Ordered list of generated titles, observational only
//   - Role: Message role enumeration (user, assistant, system)
//
// # Usage
//
// Create a new conversation and append turns:
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("Generate a recipe...")
//	conv.AddAssistantMessage(reply)
//
// Derive a recipe from the assistant reply:
//
//	recipe := model.NewRecipe(reply)
//
// All types are memory-resident for the process lifetime; nothing in
// this package persists to durable storage.
package model
