/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package list provides the list command for themegen.
package list

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"github.com/seaglass-design/themegen/theme"
	"github.com/seaglass-design/themegen/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List color tokens and their theme values",
	Long:  `List the canonical color tokens with their value in each theme.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String("theme", "", "Only show values for one theme")
	Cmd.Flags().Bool("hex", false, "Normalize color values to hex notation")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	themeFilter, _ := cmd.Flags().GetString("theme")
	hex, _ := cmd.Flags().GetBool("hex")

	table := theme.Builtin()

	themes := table.Themes()
	if themeFilter != "" {
		th, ok := table.Lookup(themeFilter)
		if !ok {
			return fmt.Errorf("unknown theme: %s", themeFilter)
		}
		themes = []theme.Theme{th}
	}

	switch format {
	case "json":
		return printJSON(themes, hex)
	case "table":
		return printTable(themes, hex)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}
}

type row struct {
	Name   string            `json:"name"`
	Values map[string]string `json:"values"`
}

func printJSON(themes []theme.Theme, hex bool) error {
	rows := make([]row, 0, len(theme.Tokens()))
	for _, raw := range theme.Tokens() {
		r := row{Name: token.FormatName(raw), Values: make(map[string]string, len(themes))}
		for _, th := range themes {
			if value, ok := th.Lookup(raw); ok {
				r.Values[th.Name] = display(value, hex)
			}
		}
		rows = append(rows, r)
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling token list: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printTable(themes []theme.Theme, hex bool) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "TOKEN")
	for _, th := range themes {
		fmt.Fprintf(w, "\t%s", th.Name)
	}
	fmt.Fprintln(w)

	for _, raw := range theme.Tokens() {
		fmt.Fprint(w, token.FormatName(raw))
		for _, th := range themes {
			value, ok := th.Lookup(raw)
			if !ok {
				value = "-"
			} else {
				value = display(value, hex)
			}
			fmt.Fprintf(w, "\t%s", value)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

// display normalizes a color value to hex notation for readability.
// Values that do not parse as colors pass through unchanged.
func display(value string, hex bool) string {
	if !hex {
		return value
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return value
	}
	return c.HexString()
}
