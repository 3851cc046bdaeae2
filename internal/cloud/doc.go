// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud provides OpenRouter integration for recipe generation.
//
// OpenRouter provides access to multiple LLM providers through a single
// API. This package implements the chat completions client used to
// generate recipes, plus a content-addressed response cache that
// deduplicates identical conversations for the process lifetime.
//
// # Key Types
//
//   - OpenRouterClient: HTTP client for the chat completions endpoint
//   - ChatMessage: Chat message compatible with the OpenRouter API format
//   - ChatRequest / ChatResponse: Wire structures for completions
//   - ResponseCache: Content-addressed cache keyed on the serialized
//     message sequence
//
// # Usage
//
// Create a client and request a completion:
//
//	client := cloud.NewOpenRouterClient(apiKey)
//	text, err := client.Complete(ctx, []cloud.ChatMessage{
//	    cloud.NewUserMessage("Generate a recipe..."),
//	})
//
// A repeated call with a byte-identical message sequence returns the
// cached text without a network call.
//
// # Failure model
//
// Requests are attempted exactly once. Network failures classify onto
// ErrTimeout and ErrConnection (the IsTransportError pair), API-status
// failures onto their own sentinels (ErrAuthFailed, ErrRateLimited,
// ErrServerError, ...), and malformed responses onto ErrEmptyResponse.
// Every error carries the underlying cause; the caller reports it and
// the session state is left untouched. There is no automatic retry.
//
// # Security
//
// API keys are never logged; display paths use a SHA-256 fingerprint.
// All requests use TLS 1.2+ and response bodies are size-limited.
package cloud
