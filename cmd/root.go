/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for themegen.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seaglass-design/themegen/cmd/generate"
	"github.com/seaglass-design/themegen/cmd/list"
	"github.com/seaglass-design/themegen/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "themegen",
	Short: "Generate SCSS theme modules from color tokens",
	Long:  `themegen generates the Seaglass SCSS theme modules: per-token default variables, the theme-application mixin, and one color map per theme.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", `Namespace for generated identifiers (default "sg")`)
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
