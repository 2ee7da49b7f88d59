/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for themegen.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seaglass-design/themegen/config"
	"github.com/seaglass-design/themegen/fs"
	genlib "github.com/seaglass-design/themegen/generate"
	"github.com/seaglass-design/themegen/internal/logger"
	"github.com/seaglass-design/themegen/metadata"
	"github.com/seaglass-design/themegen/theme"
	"github.com/seaglass-design/themegen/token"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the SCSS theme modules",
	Long: `Generate the three SCSS theme modules from the built-in theme tables
and the token metadata file. Every run is a full regeneration.

Outputs:
  _tokens.scss      per-token default variables, bound to the default theme
  _mixins.scss      the theme-application mixin
  _theme-maps.scss  one color map per theme plus the default-map alias

Examples:
  # Generate into the default output directory
  themegen generate --metadata tokens.yml

  # Generate a g100-defaulted build under a custom namespace
  themegen generate -m tokens.yml -o dist/scss --default-theme g100 --prefix carbon

  # Use metadata and output settings from .config/themegen.yaml
  themegen generate`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", `Output directory (default "scss/generated")`)
	Cmd.Flags().StringArrayP("metadata", "m", nil, "Token metadata file (repeatable; overrides config)")
	Cmd.Flags().String("default-theme", "", `Theme bound to the default map (default "white")`)
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	metadataFlag, _ := cmd.Flags().GetStringArray("metadata")
	defaultTheme, _ := cmd.Flags().GetString("default-theme")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/themegen.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	if output == "" {
		output = cfg.OutputDir
	}
	if output == "" {
		output = config.Default().OutputDir
	}
	if defaultTheme == "" {
		defaultTheme = cfg.DefaultTheme
	}

	// CLI flag takes precedence over config for metadata sources.
	paths := metadataFlag
	if len(paths) == 0 {
		var err error
		paths, err = cfg.ExpandMetadata(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error resolving metadata files: %w", err)
		}
	}
	if len(paths) == 0 {
		logger.Warn("no token metadata configured; generating without annotations")
	}

	entries, err := metadata.LoadAll(filesystem, paths)
	if err != nil {
		return err
	}

	tokens := theme.Tokens()
	metadata.Transform(entries, tokens)

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = cfg.Prefix
	}

	return genlib.Run(filesystem, output, genlib.Options{
		Prefix:       prefix,
		DefaultTheme: defaultTheme,
		Themes:       theme.Builtin(),
		Tokens:       tokens,
		Metadata:     token.NewSet(entries),
	})
}
