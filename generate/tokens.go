/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package generate

import (
	"github.com/seaglass-design/themegen/scss"
	"github.com/seaglass-design/themegen/token"
)

// TokenDefaults builds the token-defaults module: one public variable
// per canonical token, in canonical order, each defaulted to a lookup
// in the default map and annotated from metadata.
func TokenDefaults(opts Options) *scss.StyleSheet {
	opts = opts.normalized()

	sheet := &scss.StyleSheet{}
	sheet.Append(banner(), scss.Newline{})
	sheet.Append(scss.Import{Path: themeMapsModule}, scss.Newline{})

	for i, raw := range opts.Tokens {
		if i > 0 {
			sheet.Append(scss.Newline{})
		}
		sheet.Append(tokenDefault(opts, raw)...)
	}

	return sheet
}

// tokenDefault emits one token's documentation block and !default
// assignment. Annotations absent from the metadata are omitted, never
// emitted empty.
func tokenDefault(opts Options, raw string) []scss.Node {
	name := token.FormatName(raw)

	var doc []string
	meta, ok := opts.Metadata.Lookup(raw)
	if ok {
		doc = append(doc, meta.Role...)
	}
	doc = append(doc, "@type Color", "@access public")
	if ok && meta.Alias != "" {
		doc = append(doc, "@alias "+meta.Alias)
	}
	if ok && meta.Deprecated {
		doc = append(doc, "@deprecated")
	}

	return []scss.Node{
		scss.DocComment{Lines: doc},
		scss.Assignment{
			Name: name,
			Value: scss.Call{Name: "map-get", Args: []scss.Expr{
				scss.Variable{Name: opts.defaultMapName()},
				scss.Str{Value: name},
			}},
			Default: true,
		},
	}
}
