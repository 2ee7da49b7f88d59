/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package generate builds the three SCSS theme modules: per-token
// default variables, the theme-application mixin, and the per-theme
// color maps. Each module is assembled as a syntax tree and serialized
// once; running twice on the same input produces identical bytes.
package generate

import (
	"fmt"
	"path"

	"github.com/seaglass-design/themegen/fs"
	"github.com/seaglass-design/themegen/internal/logger"
	"github.com/seaglass-design/themegen/scss"
	"github.com/seaglass-design/themegen/theme"
	"github.com/seaglass-design/themegen/token"
)

// Generated module file names.
const (
	TokensFile    = "_tokens.scss"
	MixinsFile    = "_mixins.scss"
	ThemeMapsFile = "_theme-maps.scss"
)

// themeMapsModule is the import path the other two modules use to pull
// in the theme maps.
const themeMapsModule = "theme-maps"

// Options configures one generation run.
type Options struct {
	// Prefix namespaces every generated identifier ("sg" yields
	// $sg--theme, $sg--theme--white, @mixin sg--theme).
	Prefix string

	// DefaultTheme names the theme bound to the default map.
	DefaultTheme string

	// Themes is the theme table to emit maps for.
	Themes theme.Table

	// Tokens is the canonical token list, in emission order.
	Tokens []string

	// Metadata holds the already-transformed documentation entries.
	// May be nil; tokens without metadata get no annotations.
	Metadata *token.Set
}

// normalized applies defaults for the zero-value fields.
func (o Options) normalized() Options {
	if o.Prefix == "" {
		o.Prefix = "sg"
	}
	if o.DefaultTheme == "" {
		o.DefaultTheme = theme.DefaultName
	}
	return o
}

// defaultMapName is the well-known default map identifier, without the "$".
func (o Options) defaultMapName() string {
	return o.Prefix + "--theme"
}

// themeMapName is the map identifier for one theme, without the "$".
func (o Options) themeMapName(themeName string) string {
	return o.Prefix + "--theme--" + themeName
}

// mixinName is the name of the theme-application mixin.
func (o Options) mixinName() string {
	return o.Prefix + "--theme"
}

// banner is the generated-file header shared by all three modules.
func banner() scss.Node {
	return scss.Comment{Lines: []string{
		"Code generated by themegen. DO NOT EDIT.",
		"",
		"Copyright 2026 Seaglass Design",
		"Licensed under the Apache License, Version 2.0",
	}}
}

// Run assembles all three modules and writes them to outDir. Any
// failure aborts the run; no partial-success notion exists beyond
// files already written.
func Run(filesystem fs.FileSystem, outDir string, opts Options) error {
	opts = opts.normalized()

	if opts.Themes.Len() == 0 {
		return ErrNoThemes
	}
	if len(opts.Tokens) == 0 {
		return ErrNoTokens
	}
	if _, ok := opts.Themes.Lookup(opts.DefaultTheme); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDefaultTheme, opts.DefaultTheme)
	}

	if err := filesystem.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	modules := []struct {
		name  string
		sheet *scss.StyleSheet
	}{
		{TokensFile, TokenDefaults(opts)},
		{MixinsFile, ThemeMixins(opts)},
		{ThemeMapsFile, ThemeMaps(opts)},
	}

	for _, module := range modules {
		target := path.Join(outDir, module.name)
		if err := filesystem.WriteFile(target, scss.Print(module.sheet), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		logger.Info("wrote %s", target)
	}

	return nil
}
