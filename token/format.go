/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"
	"unicode"
)

// FormatName converts a raw token key to its canonical dashed form.
// Word boundaries are camelCase transitions, letter/digit transitions,
// and explicit separators:
//
//	"interactive01"  -> "interactive-01"
//	"uiBackground"   -> "ui-background"
//	"hoverUI"        -> "hover-ui"
//	"inverse_link"   -> "inverse-link"
func FormatName(raw string) string {
	return strings.ToLower(strings.Join(splitWords(raw), "-"))
}

// splitWords splits on hyphens, underscores, dots, spaces, camelCase
// boundaries, and letter/digit transitions. A run of uppercase letters
// stays one word until a lowercase letter starts the next ("HTTPServer"
// splits into "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			flush()
			continue
		case i > 0 && boundary(runes[i-1], r, peek(runes, i+1)):
			flush()
		}
		current.WriteRune(r)
	}
	flush()

	return words
}

func peek(runes []rune, i int) rune {
	if i < len(runes) {
		return runes[i]
	}
	return 0
}

// boundary reports whether a new word starts at curr, given the
// previous and next runes.
func boundary(prev, curr, next rune) bool {
	switch {
	case unicode.IsDigit(curr) && unicode.IsLetter(prev):
		return true
	case unicode.IsLetter(curr) && unicode.IsDigit(prev):
		return true
	case unicode.IsUpper(curr) && unicode.IsLower(prev):
		return true
	case unicode.IsUpper(curr) && unicode.IsUpper(prev) && unicode.IsLower(next):
		return true
	}
	return false
}
