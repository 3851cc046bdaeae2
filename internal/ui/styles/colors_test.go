// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestStatusIndicators_AreASCII(t *testing.T) {
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Pending,
		StatusIndicators.Active,
	}

	for _, ind := range indicators {
		if ind == "" {
			t.Error("status indicator should not be empty")
		}
		for _, r := range ind {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", ind, r)
			}
		}
	}
}

func TestRenderStatus(t *testing.T) {
	success := RenderSuccess("saved")
	if !strings.Contains(success, StatusIndicators.Success) {
		t.Errorf("RenderSuccess missing %q indicator: %q", StatusIndicators.Success, success)
	}
	if !strings.Contains(success, "saved") {
		t.Errorf("RenderSuccess missing message: %q", success)
	}

	failure := RenderError("request failed")
	if !strings.Contains(failure, StatusIndicators.Error) {
		t.Errorf("RenderError missing %q indicator: %q", StatusIndicators.Error, failure)
	}

	if got := RenderStatus(true, "done"); !strings.Contains(got, StatusIndicators.Success) {
		t.Errorf("RenderStatus(true) = %q, want success indicator", got)
	}
	if got := RenderStatus(false, "broke"); !strings.Contains(got, StatusIndicators.Error) {
		t.Errorf("RenderStatus(false) = %q, want error indicator", got)
	}
}

func TestAdaptiveColors_LightAndDarkDefined(t *testing.T) {
	colors := map[string]struct{ light, dark string }{
		"Emerald":     {Emerald.Light, Emerald.Dark},
		"Cyan":        {Cyan.Light, Cyan.Dark},
		"Purple":      {Purple.Light, Purple.Dark},
		"Rose":        {Rose.Light, Rose.Dark},
		"Amber":       {Amber.Light, Amber.Dark},
		"TextPrimary": {TextPrimary.Light, TextPrimary.Dark},
		"Surface":     {Surface.Light, Surface.Dark},
	}

	for name, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s is missing a light or dark variant", name)
		}
		if !strings.HasPrefix(c.light, "#") || !strings.HasPrefix(c.dark, "#") {
			t.Errorf("%s variants should be hex colors, got %q / %q", name, c.light, c.dark)
		}
	}
}
