// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package planner owns the session-scoped state of one meal-planning
// conversation and the transitions that mutate it.
package planner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plateful/plateful-tui/internal/cloud"
	"github.com/plateful/plateful-tui/internal/model"
)

// Error variables for invalid transitions.
var (
	// ErrNoRecipe indicates an action that requires a generated recipe
	// was triggered before a successful Generate.
	ErrNoRecipe = errors.New("no recipe generated yet")

	// ErrNoIngredient indicates a substitution was requested without
	// naming an ingredient.
	ErrNoIngredient = errors.New("no ingredient specified")
)

// Completer is the single call the planner makes against the remote
// model: given an ordered conversation, return the assistant's text
// reply or a failure.
type Completer interface {
	Complete(ctx context.Context, messages []cloud.ChatMessage) (string, error)
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the mutable state bundle for one planning session: the
// running conversation, the latest generated recipe, the title history,
// and the saved library.
//
// Every transition is all-or-nothing: a failed remote call leaves the
// session exactly as it was before the call, and the error is reported
// to the triggering action only. There is no terminal state; the session
// ends when the process ends.
type Session struct {
	mu sync.Mutex

	id        string
	startTime time.Time

	client Completer

	conversation *model.Conversation
	latestRecipe *model.Recipe
	latestPrompt string
	history      model.History
	saved        model.SavedLibrary
}

// NewSession creates a session bound to the given completer.
func NewSession(client Completer) *Session {
	return &Session{
		id:        "sess_" + uuid.NewString(),
		startTime: time.Now(),
		client:    client,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// StartTime returns when the session started.
func (s *Session) StartTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startTime
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Generate builds the structured prompt from the form inputs, starts a
// fresh conversation with it as the sole user turn, and records the
// assistant's reply as the latest recipe.
//
// On success the derived title is appended to the history. History and
// saved entries from earlier generations are kept; only the conversation
// is replaced.
func (s *Session) Generate(ctx context.Context, inputs PromptInputs) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt := BuildPrompt(inputs)

	conv := model.NewConversation()
	conv.AddUserMessage(prompt)

	reply, err := s.client.Complete(ctx, toChatMessages(conv))
	if err != nil {
		return model.Recipe{}, err
	}

	conv.AddAssistantMessage(reply)
	recipe := model.NewRecipe(reply)

	// Commit: nothing above mutated session state, so a failure path
	// never reaches here.
	s.conversation = conv
	s.latestPrompt = prompt
	s.latestRecipe = &recipe
	s.history.Append(recipe.Title)

	return recipe, nil
}

// Substitute appends a user turn asking for alternatives to the named
// ingredient, replays the full conversation, and appends the reply.
//
// Substitution replies are informational only: the latest recipe, the
// history, and the saved library are untouched.
func (s *Session) Substitute(ctx context.Context, ingredient string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return "", ErrNoIngredient
	}
	if s.conversation == nil || s.conversation.IsEmpty() {
		return "", ErrNoRecipe
	}

	ask := substitutionPrompt(ingredient)

	messages := toChatMessages(s.conversation)
	messages = append(messages, cloud.NewUserMessage(ask))

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		return "", err
	}

	s.conversation.AddUserMessage(ask)
	s.conversation.AddAssistantMessage(reply)

	return reply, nil
}

// Regenerate appends the fixed rejection turn to the existing
// conversation and replaces the latest recipe with the new reply. The
// previous recipe is discarded unless the user saved it earlier; the new
// title is appended to the history.
func (s *Session) Regenerate(ctx context.Context) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conversation == nil || s.conversation.IsEmpty() || s.latestRecipe == nil {
		return model.Recipe{}, ErrNoRecipe
	}

	messages := toChatMessages(s.conversation)
	messages = append(messages, cloud.NewUserMessage(regeneratePrompt))

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		return model.Recipe{}, err
	}

	s.conversation.AddUserMessage(regeneratePrompt)
	s.conversation.AddAssistantMessage(reply)

	recipe := model.NewRecipe(reply)
	s.latestRecipe = &recipe
	s.history.Append(recipe.Title)

	return recipe, nil
}

// Save appends a snapshot of the latest recipe to the saved library and
// returns it. Saving the same recipe twice produces two entries; the
// library never deduplicates.
func (s *Session) Save() (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latestRecipe == nil {
		return model.Recipe{}, ErrNoRecipe
	}

	snapshot := *s.latestRecipe
	s.saved.Add(snapshot)
	return snapshot, nil
}

// =============================================================================
// STATE QUERIES
// =============================================================================

// HasRecipe reports whether a recipe has been generated this session.
func (s *Session) HasRecipe() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestRecipe != nil
}

// LatestRecipe returns the most recently generated recipe.
func (s *Session) LatestRecipe() (model.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestRecipe == nil {
		return model.Recipe{}, false
	}
	return *s.latestRecipe, true
}

// LatestPrompt returns the structured prompt of the current conversation.
func (s *Session) LatestPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestPrompt
}

// HistoryTitles returns the generated titles in call order.
func (s *Session) HistoryTitles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Titles()
}

// SavedRecipes returns the saved library entries in save order.
func (s *Session) SavedRecipes() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.All()
}

// SavedCount returns the number of saved recipes.
func (s *Session) SavedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.Len()
}

// Conversation returns a deep copy of the running conversation for
// display. The copy keeps callers from violating the append-only
// invariant.
func (s *Session) Conversation() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conversation == nil {
		return model.NewConversation()
	}
	return s.conversation.Clone()
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// toChatMessages converts a conversation to the wire message format,
// preserving turn order exactly.
func toChatMessages(conv *model.Conversation) []cloud.ChatMessage {
	history := conv.GetHistory()
	messages := make([]cloud.ChatMessage, 0, len(history))
	for _, msg := range history {
		messages = append(messages, cloud.ChatMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}
	return messages
}
