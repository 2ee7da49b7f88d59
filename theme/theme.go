/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package theme provides the theme table and canonical token list that
// feed the generator. Themes preserve the order their entries were
// declared in; generated map literals follow that order.
package theme

// Entry is one token-to-color assignment within a theme.
type Entry struct {
	// Token is the raw token key (e.g., "interactive01").
	Token string

	// Value is the color value, emitted verbatim.
	Value string
}

// Theme is a named, ordered set of token-to-color assignments.
type Theme struct {
	Name    string
	Entries []Entry
}

// Lookup returns the color value for a raw token key.
func (t Theme) Lookup(tok string) (string, bool) {
	for _, entry := range t.Entries {
		if entry.Token == tok {
			return entry.Value, true
		}
	}
	return "", false
}

// Table is an ordered collection of themes.
type Table struct {
	themes []Theme
}

// NewTable builds a table preserving the given theme order.
func NewTable(themes ...Theme) Table {
	return Table{themes: themes}
}

// Themes returns the themes in declaration order.
func (tb Table) Themes() []Theme {
	return tb.themes
}

// Lookup returns the theme with the given name.
func (tb Table) Lookup(name string) (Theme, bool) {
	for _, t := range tb.themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Len returns the number of themes in the table.
func (tb Table) Len() int {
	return len(tb.themes)
}
