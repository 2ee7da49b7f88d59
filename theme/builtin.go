/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package theme

// DefaultName is the theme bound to the default map when nothing else
// is configured.
const DefaultName = "white"

// Tokens is the canonical color token list. It is the authoritative
// enumeration of which tokens exist and the order they are emitted in
// every generated artifact.
func Tokens() []string {
	return []string{
		"interactive01",
		"interactive02",
		"interactive03",
		"interactive04",
		"uiBackground",
		"ui01",
		"ui02",
		"ui03",
		"ui04",
		"ui05",
		"text01",
		"text02",
		"text03",
		"text04",
		"icon01",
		"icon02",
		"icon03",
		"link01",
		"field01",
		"field02",
		"inverse01",
		"inverse02",
		"support01",
		"support02",
		"support03",
		"support04",
		"overlay01",
		"danger",
		"focus",
		"hoverPrimary",
		"activePrimary",
		"hoverUI",
		"activeUI",
		"selectedUI",
		"disabled01",
		"disabled02",
		"disabled03",
		"highlight",
		"skeleton01",
		"skeleton02",
	}
}

// Builtin returns the four stock Seaglass themes: white and g10 on the
// light end, g90 and g100 on the dark end.
func Builtin() Table {
	return NewTable(white, g10, g90, g100)
}

var white = Theme{
	Name: "white",
	Entries: []Entry{
		{"interactive01", "#0f62fe"},
		{"interactive02", "#393939"},
		{"interactive03", "#0f62fe"},
		{"interactive04", "#0f62fe"},
		{"uiBackground", "#ffffff"},
		{"ui01", "#f4f4f4"},
		{"ui02", "#ffffff"},
		{"ui03", "#e0e0e0"},
		{"ui04", "#8d8d8d"},
		{"ui05", "#161616"},
		{"text01", "#161616"},
		{"text02", "#525252"},
		{"text03", "#a8a8a8"},
		{"text04", "#ffffff"},
		{"icon01", "#161616"},
		{"icon02", "#525252"},
		{"icon03", "#ffffff"},
		{"link01", "#0f62fe"},
		{"field01", "#f4f4f4"},
		{"field02", "#ffffff"},
		{"inverse01", "#ffffff"},
		{"inverse02", "#393939"},
		{"support01", "#da1e28"},
		{"support02", "#24a148"},
		{"support03", "#f1c21b"},
		{"support04", "#0043ce"},
		{"overlay01", "rgba(22, 22, 22, 0.5)"},
		{"danger", "#da1e28"},
		{"focus", "#0f62fe"},
		{"hoverPrimary", "#0353e9"},
		{"activePrimary", "#002d9c"},
		{"hoverUI", "#e5e5e5"},
		{"activeUI", "#c6c6c6"},
		{"selectedUI", "#e0e0e0"},
		{"disabled01", "#f4f4f4"},
		{"disabled02", "#c6c6c6"},
		{"disabled03", "#8d8d8d"},
		{"highlight", "#d0e2ff"},
		{"skeleton01", "#e5e5e5"},
		{"skeleton02", "#c6c6c6"},
	},
}

var g10 = Theme{
	Name: "g10",
	Entries: []Entry{
		{"interactive01", "#0f62fe"},
		{"interactive02", "#393939"},
		{"interactive03", "#0f62fe"},
		{"interactive04", "#0f62fe"},
		{"uiBackground", "#f4f4f4"},
		{"ui01", "#ffffff"},
		{"ui02", "#f4f4f4"},
		{"ui03", "#e0e0e0"},
		{"ui04", "#8d8d8d"},
		{"ui05", "#161616"},
		{"text01", "#161616"},
		{"text02", "#525252"},
		{"text03", "#a8a8a8"},
		{"text04", "#ffffff"},
		{"icon01", "#161616"},
		{"icon02", "#525252"},
		{"icon03", "#ffffff"},
		{"link01", "#0f62fe"},
		{"field01", "#ffffff"},
		{"field02", "#f4f4f4"},
		{"inverse01", "#ffffff"},
		{"inverse02", "#393939"},
		{"support01", "#da1e28"},
		{"support02", "#24a148"},
		{"support03", "#f1c21b"},
		{"support04", "#0043ce"},
		{"overlay01", "rgba(22, 22, 22, 0.5)"},
		{"danger", "#da1e28"},
		{"focus", "#0f62fe"},
		{"hoverPrimary", "#0353e9"},
		{"activePrimary", "#002d9c"},
		{"hoverUI", "#e5e5e5"},
		{"activeUI", "#c6c6c6"},
		{"selectedUI", "#e0e0e0"},
		{"disabled01", "#ffffff"},
		{"disabled02", "#c6c6c6"},
		{"disabled03", "#8d8d8d"},
		{"highlight", "#edf5ff"},
		{"skeleton01", "#e5e5e5"},
		{"skeleton02", "#c6c6c6"},
	},
}

var g90 = Theme{
	Name: "g90",
	Entries: []Entry{
		{"interactive01", "#0f62fe"},
		{"interactive02", "#6f6f6f"},
		{"interactive03", "#ffffff"},
		{"interactive04", "#4589ff"},
		{"uiBackground", "#262626"},
		{"ui01", "#393939"},
		{"ui02", "#525252"},
		{"ui03", "#525252"},
		{"ui04", "#8d8d8d"},
		{"ui05", "#f4f4f4"},
		{"text01", "#f4f4f4"},
		{"text02", "#c6c6c6"},
		{"text03", "#6f6f6f"},
		{"text04", "#ffffff"},
		{"icon01", "#f4f4f4"},
		{"icon02", "#c6c6c6"},
		{"icon03", "#ffffff"},
		{"link01", "#78a9ff"},
		{"field01", "#393939"},
		{"field02", "#525252"},
		{"inverse01", "#161616"},
		{"inverse02", "#f4f4f4"},
		{"support01", "#fa4d56"},
		{"support02", "#42be65"},
		{"support03", "#f1c21b"},
		{"support04", "#4589ff"},
		{"overlay01", "rgba(22, 22, 22, 0.7)"},
		{"danger", "#da1e28"},
		{"focus", "#ffffff"},
		{"hoverPrimary", "#0353e9"},
		{"activePrimary", "#002d9c"},
		{"hoverUI", "#4c4c4c"},
		{"activeUI", "#6f6f6f"},
		{"selectedUI", "#525252"},
		{"disabled01", "#393939"},
		{"disabled02", "#6f6f6f"},
		{"disabled03", "#a8a8a8"},
		{"highlight", "#0043ce"},
		{"skeleton01", "#353535"},
		{"skeleton02", "#525252"},
	},
}

var g100 = Theme{
	Name: "g100",
	Entries: []Entry{
		{"interactive01", "#0f62fe"},
		{"interactive02", "#6f6f6f"},
		{"interactive03", "#ffffff"},
		{"interactive04", "#4589ff"},
		{"uiBackground", "#161616"},
		{"ui01", "#262626"},
		{"ui02", "#393939"},
		{"ui03", "#393939"},
		{"ui04", "#6f6f6f"},
		{"ui05", "#f4f4f4"},
		{"text01", "#f4f4f4"},
		{"text02", "#c6c6c6"},
		{"text03", "#6f6f6f"},
		{"text04", "#ffffff"},
		{"icon01", "#f4f4f4"},
		{"icon02", "#c6c6c6"},
		{"icon03", "#ffffff"},
		{"link01", "#78a9ff"},
		{"field01", "#262626"},
		{"field02", "#393939"},
		{"inverse01", "#161616"},
		{"inverse02", "#f4f4f4"},
		{"support01", "#fa4d56"},
		{"support02", "#42be65"},
		{"support03", "#f1c21b"},
		{"support04", "#4589ff"},
		{"overlay01", "rgba(22, 22, 22, 0.7)"},
		{"danger", "#da1e28"},
		{"focus", "#ffffff"},
		{"hoverPrimary", "#0353e9"},
		{"activePrimary", "#002d9c"},
		{"hoverUI", "#353535"},
		{"activeUI", "#525252"},
		{"selectedUI", "#393939"},
		{"disabled01", "#262626"},
		{"disabled02", "#525252"},
		{"disabled03", "#6f6f6f"},
		{"highlight", "#002d9c"},
		{"skeleton01", "#353535"},
		{"skeleton02", "#393939"},
	},
}
