/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package generate

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/seaglass-design/themegen/scss"
	"github.com/seaglass-design/themegen/theme"
	"github.com/seaglass-design/themegen/token"
)

var titleCaser = cases.Title(language.English)

// ThemeMaps builds the theme-maps module: one documented map literal
// per theme, in table order, followed by the default-map alias.
func ThemeMaps(opts Options) *scss.StyleSheet {
	opts = opts.normalized()

	sheet := &scss.StyleSheet{}
	sheet.Append(banner(), scss.Newline{})

	for _, th := range opts.Themes.Themes() {
		sheet.Append(themeMap(opts, th)...)
		sheet.Append(scss.Newline{})
	}

	sheet.Append(defaultMapAlias(opts)...)
	return sheet
}

// themeMap emits one theme's map literal. Entries follow the theme
// table's own order, keyed by canonical token name, values verbatim.
func themeMap(opts Options, th theme.Theme) []scss.Node {
	pairs := make([]scss.Pair, len(th.Entries))
	for i, entry := range th.Entries {
		pairs[i] = scss.Pair{
			Key:   scss.Str{Value: token.FormatName(entry.Token)},
			Value: scss.Lit{Value: entry.Value},
		}
	}

	return []scss.Node{
		scss.DocComment{Lines: []string{
			fmt.Sprintf("Color token map for the %s theme", titleCaser.String(th.Name)),
			"@type Map",
			"@access public",
		}},
		scss.Assignment{
			Name:    opts.themeMapName(th.Name),
			Value:   scss.Map{Pairs: pairs},
			Default: true,
		},
	}
}

// defaultMapAlias binds the well-known default map identifier to the
// configured default theme's map. If that theme was never emitted the
// reference dangles; Run rejects that configuration up front.
func defaultMapAlias(opts Options) []scss.Node {
	return []scss.Node{
		scss.DocComment{Lines: []string{
			fmt.Sprintf("Default color token map, set to the %s theme", titleCaser.String(opts.DefaultTheme)),
			"@type Map",
			"@access public",
		}},
		scss.Assignment{
			Name:    opts.defaultMapName(),
			Value:   scss.Variable{Name: opts.themeMapName(opts.DefaultTheme)},
			Default: true,
		},
	}
}
