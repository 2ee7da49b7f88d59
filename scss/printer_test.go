/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package scss_test

import (
	"testing"

	"github.com/seaglass-design/themegen/scss"
)

func render(nodes ...scss.Node) string {
	sheet := &scss.StyleSheet{}
	sheet.Append(nodes...)
	return string(scss.Print(sheet))
}

func TestPrint_Comments(t *testing.T) {
	got := render(scss.Comment{Lines: []string{"Code generated.", "", "Second paragraph."}})
	want := "// Code generated.\n//\n// Second paragraph.\n"
	if got != want {
		t.Errorf("comment output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestPrint_DocCommentAndAssignment(t *testing.T) {
	got := render(
		scss.DocComment{Lines: []string{"@type Color", "@access public"}},
		scss.Assignment{
			Name: "interactive-01",
			Value: scss.Call{Name: "map-get", Args: []scss.Expr{
				scss.Variable{Name: "sg--theme"},
				scss.Str{Value: "interactive-01"},
			}},
			Default: true,
		},
	)
	want := "/// @type Color\n" +
		"/// @access public\n" +
		"$interactive-01: map-get($sg--theme, 'interactive-01') !default;\n"
	if got != want {
		t.Errorf("assignment output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestPrint_Import(t *testing.T) {
	got := render(scss.Import{Path: "theme-maps"})
	want := "@import 'theme-maps';\n"
	if got != want {
		t.Errorf("import output mismatch: got %q, want %q", got, want)
	}
}

func TestPrint_MapLiteral(t *testing.T) {
	got := render(scss.Assignment{
		Name: "sg--theme--white",
		Value: scss.Map{Pairs: []scss.Pair{
			{Key: scss.Str{Value: "interactive-01"}, Value: scss.Lit{Value: "#0f62fe"}},
			{Key: scss.Str{Value: "overlay-01"}, Value: scss.Lit{Value: "rgba(22, 22, 22, 0.5)"}},
		}},
		Default: true,
	})
	want := "$sg--theme--white: (\n" +
		"  'interactive-01': #0f62fe,\n" +
		"  'overlay-01': rgba(22, 22, 22, 0.5),\n" +
		") !default;\n"
	if got != want {
		t.Errorf("map output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestPrint_Mixin(t *testing.T) {
	got := render(scss.Mixin{
		Name: "sg--theme",
		Params: []scss.Param{
			{Name: "theme", Default: scss.Variable{Name: "sg--theme"}},
		},
		Body: []scss.Node{
			scss.Assignment{
				Name: "danger",
				Value: scss.Call{Name: "map-get", Args: []scss.Expr{
					scss.Variable{Name: "theme"},
					scss.Str{Value: "danger"},
				}},
				Global: true,
			},
			scss.Newline{},
			scss.Content{},
			scss.Newline{},
			scss.If{
				Condition: scss.Binary{
					Left:  scss.Variable{Name: "theme"},
					Op:    "!=",
					Right: scss.Variable{Name: "sg--theme"},
				},
				Body: []scss.Node{
					scss.Include{Name: "sg--theme"},
				},
			},
		},
	})
	want := "@mixin sg--theme($theme: $sg--theme) {\n" +
		"  $danger: map-get($theme, 'danger') !global;\n" +
		"\n" +
		"  @content;\n" +
		"\n" +
		"  @if $theme != $sg--theme {\n" +
		"    @include sg--theme();\n" +
		"  }\n" +
		"}\n"
	if got != want {
		t.Errorf("mixin output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestPrint_Deterministic(t *testing.T) {
	sheet := &scss.StyleSheet{}
	sheet.Append(
		scss.Comment{Lines: []string{"banner"}},
		scss.Newline{},
		scss.Assignment{Name: "focus", Value: scss.Lit{Value: "#0f62fe"}, Default: true},
	)

	first := string(scss.Print(sheet))
	second := string(scss.Print(sheet))
	if first != second {
		t.Errorf("Print is not deterministic:\n%s\nvs:\n%s", first, second)
	}
}
