/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package generate

import "errors"

// Sentinel errors for generation configuration.
var (
	// ErrNoThemes indicates the theme table is empty.
	ErrNoThemes = errors.New("no themes to generate")

	// ErrNoTokens indicates the canonical token list is empty.
	ErrNoTokens = errors.New("canonical token list is empty")

	// ErrUnknownDefaultTheme indicates the configured default theme has
	// no entry in the theme table.
	ErrUnknownDefaultTheme = errors.New("default theme not present in theme table")
)
