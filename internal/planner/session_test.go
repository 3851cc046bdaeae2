// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful-tui/internal/cloud"
)

// fakeCompleter is a scripted Completer: it returns queued replies in
// order and records every message slice it was called with.
type fakeCompleter struct {
	replies []string
	err     error
	calls   [][]cloud.ChatMessage
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []cloud.ChatMessage) (string, error) {
	// Record a copy so later appends by the session don't alias.
	call := make([]cloud.ChatMessage, len(messages))
	copy(call, messages)
	f.calls = append(f.calls, call)

	if f.err != nil {
		return "", f.err
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

const recipeOne = "# Lemon Chicken\n\n## Preparation Time\n30 minutes\n\n## Instructions\nCook it."
const recipeTwo = "# Garlic Pasta\n\n## Preparation Time\n20 minutes\n\n## Instructions\nBoil it."

func testInputs() PromptInputs {
	return PromptInputs{
		Ingredients: "chicken, lemon",
		MealType:    "dinner",
		DietaryNeed: "none",
		PrepTime:    "30",
		PortionSize: "2",
	}
}

// =============================================================================
// GENERATE TESTS
// =============================================================================

func TestGenerate_BuildsRecipeAndHistory(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne}}
	s := NewSession(fake)

	recipe, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	assert.Equal(t, "Lemon Chicken", recipe.Title)
	assert.Equal(t, recipeOne, recipe.Content)
	assert.True(t, s.HasRecipe())
	assert.Equal(t, []string{"Lemon Chicken"}, s.HistoryTitles())

	// The outbound request carries the structured prompt as the sole
	// user turn.
	require.Len(t, fake.calls, 1)
	require.Len(t, fake.calls[0], 1)
	assert.Equal(t, "user", fake.calls[0][0].Role)
	assert.Contains(t, fake.calls[0][0].Content, "chicken, lemon")
	assert.Contains(t, fake.calls[0][0].Content, "## Shopping List")

	// The conversation now holds prompt + reply.
	conv := s.Conversation()
	require.Equal(t, 2, conv.MessageCount())
	assert.Equal(t, recipeOne, conv.Messages[1].Content)
}

func TestGenerate_EmptyInputsAreLegal(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), PromptInputs{})
	require.NoError(t, err)

	// Empty fields render as empty template slots, not an error.
	assert.Contains(t, fake.calls[0][0].Content, "Ingredients that user currently has: \n")
}

func TestGenerate_FailureLeavesStateUnchanged(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.Error(t, err)

	assert.False(t, s.HasRecipe())
	assert.Empty(t, s.HistoryTitles())
	assert.Empty(t, s.LatestPrompt())
	assert.Equal(t, 0, s.Conversation().MessageCount())
}

func TestGenerate_ReplacesConversationKeepsHistory(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne, recipeTwo}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)
	_, err = s.Save()
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	// A fresh generate starts a new conversation but history and saved
	// entries from prior successful actions remain intact.
	assert.Equal(t, []string{"Lemon Chicken", "Garlic Pasta"}, s.HistoryTitles())
	assert.Equal(t, 1, s.SavedCount())
	assert.Equal(t, 2, s.Conversation().MessageCount())
}

// =============================================================================
// SUBSTITUTE TESTS
// =============================================================================

func TestSubstitute_AppendsTurnsOnly(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne, "Try tofu, halloumi, or seitan."}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	reply, err := s.Substitute(context.Background(), "chicken")
	require.NoError(t, err)
	assert.Equal(t, "Try tofu, halloumi, or seitan.", reply)

	// The remote call replays the full conversation plus the new turn.
	require.Len(t, fake.calls, 2)
	require.Len(t, fake.calls[1], 3)
	assert.Contains(t, fake.calls[1][2].Content, "substitute 'chicken'")

	// Informational only: latest recipe and history are untouched.
	recipe, ok := s.LatestRecipe()
	require.True(t, ok)
	assert.Equal(t, "Lemon Chicken", recipe.Title)
	assert.Equal(t, []string{"Lemon Chicken"}, s.HistoryTitles())

	// But the turns are now part of the conversation.
	assert.Equal(t, 4, s.Conversation().MessageCount())
}

func TestSubstitute_RequiresIngredient(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	_, err = s.Substitute(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNoIngredient)

	// Rejected before any remote call.
	assert.Len(t, fake.calls, 1)
	assert.Equal(t, 2, s.Conversation().MessageCount())
}

func TestSubstitute_RequiresRecipe(t *testing.T) {
	s := NewSession(&fakeCompleter{})

	_, err := s.Substitute(context.Background(), "chicken")
	assert.ErrorIs(t, err, ErrNoRecipe)
}

func TestSubstitute_FailureLeavesStateUnchanged(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	fake.err = errors.New("rate limited")
	_, err = s.Substitute(context.Background(), "chicken")
	require.Error(t, err)

	// The failed turn must not linger in the conversation, and the
	// recipe and history keep their pre-call values.
	assert.Equal(t, 2, s.Conversation().MessageCount())
	recipe, _ := s.LatestRecipe()
	assert.Equal(t, "Lemon Chicken", recipe.Title)
	assert.Equal(t, []string{"Lemon Chicken"}, s.HistoryTitles())
}

// =============================================================================
// REGENERATE TESTS
// =============================================================================

func TestRegenerate_ReplacesRecipeAppendsHistory(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne, recipeTwo}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	recipe, err := s.Regenerate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Garlic Pasta", recipe.Title)
	assert.Equal(t, []string{"Lemon Chicken", "Garlic Pasta"}, s.HistoryTitles())

	latest, _ := s.LatestRecipe()
	assert.Equal(t, "Garlic Pasta", latest.Title)

	// Conversation: prompt, reply, rejection turn, new reply.
	conv := s.Conversation()
	require.Equal(t, 4, conv.MessageCount())
	assert.Equal(t, "I didn't like the previous recipe. Please generate a new one.", conv.Messages[2].Content)
}

func TestRegenerate_RequiresRecipe(t *testing.T) {
	s := NewSession(&fakeCompleter{})

	_, err := s.Regenerate(context.Background())
	assert.ErrorIs(t, err, ErrNoRecipe)
}

func TestRegenerate_FailureLeavesStateUnchanged(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	fake.err = errors.New("server error")
	_, err = s.Regenerate(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2, s.Conversation().MessageCount())
	assert.Equal(t, []string{"Lemon Chicken"}, s.HistoryTitles())
	latest, _ := s.LatestRecipe()
	assert.Equal(t, "Lemon Chicken", latest.Title)
}

func TestHistory_GrowsOncePerSuccessfulGeneration(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne, recipeTwo, recipeOne, recipeTwo}}
	s := NewSession(fake)

	ctx := context.Background()
	_, err := s.Generate(ctx, testInputs())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = s.Regenerate(ctx)
		require.NoError(t, err)
	}

	assert.Len(t, s.HistoryTitles(), 4)
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSave_AppendsSnapshotDuplicatesLegal(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)

	first, err := s.Save()
	require.NoError(t, err)
	second, err := s.Save()
	require.NoError(t, err)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, 2, s.SavedCount())

	saved := s.SavedRecipes()
	require.Len(t, saved, 2)
	assert.Equal(t, "Lemon Chicken", saved[0].Title)
	assert.Equal(t, "Lemon Chicken", saved[1].Title)
}

func TestSave_RequiresRecipe(t *testing.T) {
	s := NewSession(&fakeCompleter{})

	_, err := s.Save()
	assert.ErrorIs(t, err, ErrNoRecipe)
	assert.Equal(t, 0, s.SavedCount())
}

func TestSave_SnapshotSurvivesRegenerate(t *testing.T) {
	fake := &fakeCompleter{replies: []string{recipeOne, recipeTwo}}
	s := NewSession(fake)

	_, err := s.Generate(context.Background(), testInputs())
	require.NoError(t, err)
	_, err = s.Save()
	require.NoError(t, err)

	_, err = s.Regenerate(context.Background())
	require.NoError(t, err)

	// The saved snapshot keeps the discarded recipe's content.
	saved := s.SavedRecipes()
	require.Len(t, saved, 1)
	assert.Equal(t, "Lemon Chicken", saved[0].Title)
	assert.Equal(t, recipeOne, saved[0].Content)
}
