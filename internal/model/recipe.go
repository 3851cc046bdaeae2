// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for planning conversations,
// messages, and recipes.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UntitledRecipe is the title used when no title can be derived from
// the generated content.
const UntitledRecipe = "Untitled Recipe"

// =============================================================================
// RECIPE TYPE
// =============================================================================

// Recipe is a titled block of generated Markdown-like text.
type Recipe struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecipe creates a recipe from generated content, deriving the title.
func NewRecipe(content string) Recipe {
	return Recipe{
		ID:        "recipe_" + uuid.NewString(),
		Title:     DeriveTitle(content),
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// DeriveTitle extracts a display title from recipe content: the first
// non-blank line with leading '#' markers and surrounding whitespace
// stripped. Falls back to UntitledRecipe when the content has no
// non-blank line.
//
// The model is instructed to open its reply with a level-1 heading, so
// the first non-blank line is normally "# <name>".
func DeriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "#")
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == "" {
			// A line of bare '#' markers carries no title text.
			continue
		}
		return trimmed
	}
	return UntitledRecipe
}

// =============================================================================
// SAVED LIBRARY
// =============================================================================

// SavedLibrary is the ordered, append-only list of recipes the user has
// saved during the session. Duplicates are legal and appear as separate
// entries.
type SavedLibrary struct {
	recipes []Recipe
}

// Add appends a recipe snapshot to the library.
func (l *SavedLibrary) Add(r Recipe) {
	l.recipes = append(l.recipes, r)
}

// All returns a copy of the saved recipes in save order.
func (l *SavedLibrary) All() []Recipe {
	out := make([]Recipe, len(l.recipes))
	copy(out, l.recipes)
	return out
}

// Len returns the number of saved recipes.
func (l *SavedLibrary) Len() int {
	return len(l.recipes)
}

// Get returns the recipe at index i.
func (l *SavedLibrary) Get(i int) (Recipe, bool) {
	if i < 0 || i >= len(l.recipes) {
		return Recipe{}, false
	}
	return l.recipes[i], true
}

// =============================================================================
// HISTORY
// =============================================================================

// History is the ordered list of generated recipe titles, one appended
// per successful generation or regeneration. It is observational only
// and is never read back into requests.
type History struct {
	titles []string
}

// Append records a generated title.
func (h *History) Append(title string) {
	h.titles = append(h.titles, title)
}

// Titles returns a copy of the recorded titles in generation order.
func (h *History) Titles() []string {
	out := make([]string, len(h.titles))
	copy(out, h.titles)
	return out
}

// Len returns the number of recorded titles.
func (h *History) Len() int {
	return len(h.titles)
}
