// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package planner owns the session-scoped state of one meal-planning
// conversation and the transitions that mutate it.
package planner

import "fmt"

// PromptInputs holds the form fields embedded into the generation
// prompt. No validation is performed on field content: empty strings are
// allowed and simply render as empty in the template.
type PromptInputs struct {
	// Basic inputs
	Ingredients string
	MealType    string
	DietaryNeed string
	PrepTime    string
	PortionSize string

	// Advanced options
	ToolsToAvoid     string
	NutritionAnswer  string // free-text "yes"/"no" answer, embedded verbatim
	ExtraPreferences string
}

// generatePrompt is the fixed template for the initial recipe request.
// The response-structure instructions pin the Markdown heading layout the
// document renderer and title derivation rely on.
const generatePrompt = `You are a helpful and knowledgeable meal planning assistant with many years of experience in several types of cousine.
You will generate a tailored recipe based on the user preferences and needs stated below
Ingredients that user currently has: %s
The kind of meal the user wants to cook: %s
Dietary Needs: %s
Preparation Time Preference: %s minutes
If the user answers 'yes' for this question, they want a nutritional breakdown of the meal so also include the info in the recipe, if they answered 'no', you don't display that info: %s
Portion size the user wants to cook: %s
Tools the user does not have available: %s
Additional Preferences of the user: %s
When listing ingredients, make sure to always use metric system i.e. grams, liters, etc. NOT imperial system.
You may use extra ingredients if needed, but clearly list them at the end under a section titled '🛒 Shopping List'.
Clearly structure your response like this, each point being a separate headline:
1. Recipe title (as a top-level Markdown heading, # Title)
2. Preparation time of the meal (## Preparation Time)
3. Ingredients List (including both user's and extra ones as subheading ## Ingredients)
4. Any special tools they need but might not have (## Tools)
5. Step-by-step instructions (## Instructions)
6. 🛒 Shopping List (only the ingredients the user didn't provide, under ## Shopping List)
At the end, add a friendly sign-off like 'Enjoy your meal!' or 'Bon Appétit!'.`

// regeneratePrompt is the fixed turn appended when the user rejects the
// previous recipe.
const regeneratePrompt = "I didn't like the previous recipe. Please generate a new one."

// BuildPrompt renders the generation prompt with the inputs embedded
// verbatim.
func BuildPrompt(in PromptInputs) string {
	return fmt.Sprintf(generatePrompt,
		in.Ingredients,
		in.MealType,
		in.DietaryNeed,
		in.PrepTime,
		in.NutritionAnswer,
		in.PortionSize,
		in.ToolsToAvoid,
		in.ExtraPreferences,
	)
}

// substitutionPrompt renders the turn appended for an ingredient
// substitution request.
func substitutionPrompt(ingredient string) string {
	return fmt.Sprintf("I would like to substitute '%s'. Can you suggest 2–3 alternatives and explain why?", ingredient)
}
