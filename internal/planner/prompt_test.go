// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package planner

import (
	"strings"
	"testing"
)

func TestBuildPrompt_EmbedsInputsVerbatim(t *testing.T) {
	prompt := BuildPrompt(PromptInputs{
		Ingredients:      "eggs, spinach",
		MealType:         "breakfast",
		DietaryNeed:      "vegetarian",
		PrepTime:         "15",
		PortionSize:      "1",
		ToolsToAvoid:     "blender",
		NutritionAnswer:  "yes",
		ExtraPreferences: "high protein",
	})

	wantFragments := []string{
		"Ingredients that user currently has: eggs, spinach",
		"The kind of meal the user wants to cook: breakfast",
		"Dietary Needs: vegetarian",
		"Preparation Time Preference: 15 minutes",
		"Portion size the user wants to cook: 1",
		"Tools the user does not have available: blender",
		"Additional Preferences of the user: high protein",
		"metric system",
		"# Title",
		"## Preparation Time",
		"## Ingredients",
		"## Tools",
		"## Instructions",
		"## Shopping List",
	}
	for _, want := range wantFragments {
		if !strings.Contains(prompt, want) {
			t.Errorf("BuildPrompt missing %q", want)
		}
	}
}

func TestBuildPrompt_EmptyInputsRenderEmpty(t *testing.T) {
	prompt := BuildPrompt(PromptInputs{})

	if !strings.Contains(prompt, "Dietary Needs: \n") {
		t.Error("empty field should render as empty text, not be rejected")
	}
	if strings.Contains(prompt, "%!s") || strings.Contains(prompt, "%s") {
		t.Errorf("unfilled template verb in prompt:\n%s", prompt)
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	in := PromptInputs{Ingredients: "rice", MealType: "lunch"}
	if BuildPrompt(in) != BuildPrompt(in) {
		t.Error("BuildPrompt should be a pure function of its inputs")
	}
}

func TestSubstitutionPrompt(t *testing.T) {
	got := substitutionPrompt("paneer")
	if !strings.Contains(got, "'paneer'") {
		t.Errorf("substitutionPrompt = %q, want the ingredient quoted", got)
	}
	if !strings.Contains(got, "alternatives") {
		t.Errorf("substitutionPrompt = %q, want a request for alternatives", got)
	}
}
