// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// The PDF core fonts cover Latin-1 only and read text one byte per
// glyph, so content is converted to Latin-1 bytes before layout.
// Handing the renderer UTF-8 would draw every accented character as two
// mojibake glyphs. Characters outside the set (non-Latin scripts,
// emoji) are dropped rather than substituted. The drop is lossy but
// deterministic: repeated renders of the same input lose exactly the
// same characters. Documented limitation of the core fonts, not a
// defect to fix silently.

// toLatin1Transform drops every rune outside the Latin-1 range, then
// encodes the remainder to single Latin-1 bytes.
var toLatin1Transform = transform.Chain(
	runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxLatin1
	})),
	charmap.ISO8859_1.NewEncoder(),
)

// toLatin1 converts s to its Latin-1 byte representation. Every byte of
// the result is the code point of the corresponding rune.
func toLatin1(s string) string {
	out, _, err := transform.String(toLatin1Transform, s)
	if err != nil {
		// The chain cannot fail on valid UTF-8 (the remover strips
		// everything the encoder cannot map, including the replacement
		// rune for malformed input); fall back to a manual filter.
		filtered := make([]byte, 0, len(s))
		for _, r := range s {
			if r <= unicode.MaxLatin1 {
				filtered = append(filtered, byte(r))
			}
		}
		return string(filtered)
	}
	return out
}
