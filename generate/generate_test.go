/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaglass-design/themegen/generate"
	"github.com/seaglass-design/themegen/internal/mapfs"
	"github.com/seaglass-design/themegen/scss"
	"github.com/seaglass-design/themegen/theme"
	"github.com/seaglass-design/themegen/token"
)

const bannerText = "// Code generated by themegen. DO NOT EDIT.\n" +
	"//\n" +
	"// Copyright 2026 Seaglass Design\n" +
	"// Licensed under the Apache License, Version 2.0\n"

// minimalOptions mirrors the one-token example from the generator's
// documentation: a single interactive01 token and a white theme.
func minimalOptions() generate.Options {
	return generate.Options{
		DefaultTheme: "white",
		Themes: theme.NewTable(theme.Theme{
			Name:    "white",
			Entries: []theme.Entry{{Token: "interactive01", Value: "#0f62fe"}},
		}),
		Tokens: []string{"interactive01"},
	}
}

func TestThemeMaps_Minimal(t *testing.T) {
	got := string(scss.Print(generate.ThemeMaps(minimalOptions())))

	want := bannerText +
		"\n" +
		"/// Color token map for the White theme\n" +
		"/// @type Map\n" +
		"/// @access public\n" +
		"$sg--theme--white: (\n" +
		"  'interactive-01': #0f62fe,\n" +
		") !default;\n" +
		"\n" +
		"/// Default color token map, set to the White theme\n" +
		"/// @type Map\n" +
		"/// @access public\n" +
		"$sg--theme: $sg--theme--white !default;\n"

	assert.Equal(t, want, got)
}

func TestTokenDefaults_Minimal(t *testing.T) {
	opts := minimalOptions()
	opts.Metadata = token.NewSet([]*token.Meta{
		{Name: "interactive01", Role: []string{"Primary interactive color", "Primary buttons"}},
	})

	got := string(scss.Print(generate.TokenDefaults(opts)))

	want := bannerText +
		"\n" +
		"@import 'theme-maps';\n" +
		"\n" +
		"/// Primary interactive color\n" +
		"/// Primary buttons\n" +
		"/// @type Color\n" +
		"/// @access public\n" +
		"$interactive-01: map-get($sg--theme, 'interactive-01') !default;\n"

	assert.Equal(t, want, got)
}

func TestTokenDefaults_AnnotationsOmittedWhenAbsent(t *testing.T) {
	got := string(scss.Print(generate.TokenDefaults(minimalOptions())))

	assert.NotContains(t, got, "@alias")
	assert.NotContains(t, got, "@deprecated")
	assert.Contains(t, got, "/// @type Color\n/// @access public\n$interactive-01:")
}

func TestTokenDefaults_AliasAndDeprecated(t *testing.T) {
	opts := minimalOptions()
	opts.Metadata = token.NewSet([]*token.Meta{
		{Name: "interactive01", Alias: "`$brand-01`", Deprecated: true},
	})

	got := string(scss.Print(generate.TokenDefaults(opts)))

	assert.Contains(t, got, "/// @alias `$brand-01`\n/// @deprecated\n$interactive-01:")
}

func TestThemeMixins_Minimal(t *testing.T) {
	got := string(scss.Print(generate.ThemeMixins(minimalOptions())))

	want := bannerText +
		"\n" +
		"@import 'theme-maps';\n" +
		"\n" +
		"/// Applies a theme's color tokens for the duration of @content\n" +
		"/// @param {Map} $theme [$sg--theme] - Map of token names to color values\n" +
		"/// @access public\n" +
		"@mixin sg--theme($theme: $sg--theme) {\n" +
		"  $interactive-01: map-get($theme, 'interactive-01') !global;\n" +
		"\n" +
		"  @content;\n" +
		"\n" +
		"  // Reset token defaults for declarations following @content\n" +
		"  @if $theme != $sg--theme {\n" +
		"    @include sg--theme();\n" +
		"  }\n" +
		"}\n"

	assert.Equal(t, want, got)
}

// builtinOptions runs the generators over the full built-in theme set.
func builtinOptions() generate.Options {
	return generate.Options{
		Prefix:       "sg",
		DefaultTheme: theme.DefaultName,
		Themes:       theme.Builtin(),
		Tokens:       theme.Tokens(),
	}
}

func TestTokenDefaults_OnePerTokenInCanonicalOrder(t *testing.T) {
	got := string(scss.Print(generate.TokenDefaults(builtinOptions())))

	last := -1
	for _, raw := range theme.Tokens() {
		decl := "$" + token.FormatName(raw) + ": map-get($sg--theme, '" + token.FormatName(raw) + "') !default;"
		assert.Equal(t, 1, strings.Count(got, decl), "declaration for %s", raw)

		idx := strings.Index(got, decl)
		require.Greater(t, idx, last, "token %s out of canonical order", raw)
		last = idx
	}
}

func TestThemeMixins_OneGlobalPerTokenRegardlessOfThemes(t *testing.T) {
	opts := builtinOptions()
	// The reassignment block depends only on the canonical list.
	opts.Themes = theme.NewTable(theme.Theme{Name: "white", Entries: nil})

	got := string(scss.Print(generate.ThemeMixins(opts)))

	assert.Equal(t, len(theme.Tokens()), strings.Count(got, " !global;"))

	last := -1
	for _, raw := range theme.Tokens() {
		decl := "$" + token.FormatName(raw) + ": map-get($theme, '" + token.FormatName(raw) + "') !global;"
		idx := strings.Index(got, decl)
		require.GreaterOrEqual(t, idx, 0, "missing global reassignment for %s", raw)
		require.Greater(t, idx, last, "token %s out of canonical order", raw)
		last = idx
	}
}

func TestThemeMaps_EntriesFollowThemeTableOrder(t *testing.T) {
	// Table order deliberately differs from the canonical list.
	opts := generate.Options{
		DefaultTheme: "white",
		Themes: theme.NewTable(theme.Theme{
			Name: "white",
			Entries: []theme.Entry{
				{Token: "danger", Value: "#da1e28"},
				{Token: "interactive01", Value: "#0f62fe"},
			},
		}),
		Tokens: []string{"interactive01", "danger"},
	}

	got := string(scss.Print(generate.ThemeMaps(opts)))

	assert.Contains(t, got,
		"$sg--theme--white: (\n"+
			"  'danger': #da1e28,\n"+
			"  'interactive-01': #0f62fe,\n"+
			") !default;\n")
}

func TestThemeMaps_OneMapPerTheme(t *testing.T) {
	got := string(scss.Print(generate.ThemeMaps(builtinOptions())))

	for _, th := range theme.Builtin().Themes() {
		assert.Equal(t, 1, strings.Count(got, "$sg--theme--"+th.Name+": ("), "map for %s", th.Name)
	}
	assert.Contains(t, got, "$sg--theme: $sg--theme--white !default;")
}

func TestRun_WritesThreeModules(t *testing.T) {
	mfs := mapfs.New()

	err := generate.Run(mfs, "out", builtinOptions())
	require.NoError(t, err)

	for _, name := range []string{generate.TokensFile, generate.MixinsFile, generate.ThemeMapsFile} {
		data, err := mfs.ReadFile("out/" + name)
		require.NoError(t, err, "missing %s", name)
		assert.True(t, strings.HasPrefix(string(data), "// Code generated by themegen. DO NOT EDIT."), "banner in %s", name)
	}
}

func TestRun_Idempotent(t *testing.T) {
	first := mapfs.New()
	require.NoError(t, generate.Run(first, "out", builtinOptions()))

	second := mapfs.New()
	require.NoError(t, generate.Run(second, "out", builtinOptions()))

	for _, name := range []string{generate.TokensFile, generate.MixinsFile, generate.ThemeMapsFile} {
		a, err := first.ReadFile("out/" + name)
		require.NoError(t, err)
		b, err := second.ReadFile("out/" + name)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "regeneration of %s is not byte-identical", name)
	}
}

func TestRun_UnknownDefaultTheme(t *testing.T) {
	opts := builtinOptions()
	opts.DefaultTheme = "sepia"

	err := generate.Run(mapfs.New(), "out", opts)
	assert.ErrorIs(t, err, generate.ErrUnknownDefaultTheme)
}

func TestRun_NoThemes(t *testing.T) {
	opts := builtinOptions()
	opts.Themes = theme.NewTable()

	err := generate.Run(mapfs.New(), "out", opts)
	assert.ErrorIs(t, err, generate.ErrNoThemes)
}

func TestRun_NoTokens(t *testing.T) {
	opts := builtinOptions()
	opts.Tokens = nil

	err := generate.Run(mapfs.New(), "out", opts)
	assert.ErrorIs(t, err, generate.ErrNoTokens)
}
