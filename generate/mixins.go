/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package generate

import (
	"fmt"

	"github.com/seaglass-design/themegen/scss"
	"github.com/seaglass-design/themegen/token"
)

// ThemeMixins builds the mixins module: a single mixin that rebinds
// every canonical token as a global variable from the given theme map,
// yields to @content, and restores the default theme afterward when a
// non-default theme was applied.
func ThemeMixins(opts Options) *scss.StyleSheet {
	opts = opts.normalized()

	sheet := &scss.StyleSheet{}
	sheet.Append(banner(), scss.Newline{})
	sheet.Append(scss.Import{Path: themeMapsModule}, scss.Newline{})

	body := make([]scss.Node, 0, len(opts.Tokens)+5)
	for _, raw := range opts.Tokens {
		name := token.FormatName(raw)
		body = append(body, scss.Assignment{
			Name: name,
			Value: scss.Call{Name: "map-get", Args: []scss.Expr{
				scss.Variable{Name: "theme"},
				scss.Str{Value: name},
			}},
			// Bindings must outlive the mixin body so content injected
			// after it sees the applied theme.
			Global: true,
		})
	}

	body = append(body,
		scss.Newline{},
		scss.Content{},
		scss.Newline{},
		// Re-including with no argument always satisfies the guard's
		// negation, so the reset recurses exactly once.
		scss.Comment{Lines: []string{"Reset token defaults for declarations following @content"}},
		scss.If{
			Condition: scss.Binary{
				Left:  scss.Variable{Name: "theme"},
				Op:    "!=",
				Right: scss.Variable{Name: opts.defaultMapName()},
			},
			Body: []scss.Node{
				scss.Include{Name: opts.mixinName()},
			},
		},
	)

	sheet.Append(
		scss.DocComment{Lines: []string{
			"Applies a theme's color tokens for the duration of @content",
			fmt.Sprintf("@param {Map} $theme [$%s] - Map of token names to color values", opts.defaultMapName()),
			"@access public",
		}},
		scss.Mixin{
			Name: opts.mixinName(),
			Params: []scss.Param{
				{Name: "theme", Default: scss.Variable{Name: opts.defaultMapName()}},
			},
			Body: body,
		},
	)

	return sheet
}
