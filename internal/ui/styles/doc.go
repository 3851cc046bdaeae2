// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the plateful TUI.

This package defines the complete color palette and theme system used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Emerald - Primary accent, recipe highlights, fresh-food branding
  - Cyan - Shortcuts and user highlights
  - Purple - Assistant replies and the loading spinner
  - Amber - Warnings and pending states
  - Rose - Errors and critical warnings

## Surface Colors

Layered surface system for depth:

	Surface    - Main background
	SurfaceDim - Subtle backgrounds (headers, status bars)
	Overlay    - Borders, separators, popups

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewThemeForMode(cfg.UI.Theme)
	if theme.IsDark {
		// Dark terminal detected (or forced by config)
	}

# Usage Example

	import "github.com/plateful/plateful-tui/internal/ui/styles"

	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)
*/
package styles
