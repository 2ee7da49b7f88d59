/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

// Package scss provides a small SCSS syntax tree and its serializer.
// Generators assemble StyleSheet values from the node constructors here
// and hand them to Print for deterministic text output.
package scss

// Node is a top-level or block-level stylesheet construct.
type Node interface {
	writeTo(p *printer)
}

// Expr is a value expression, usable on the right-hand side of an
// assignment, as a call argument, or inside a map literal.
type Expr interface {
	writeExpr(p *printer)
}

// StyleSheet is an ordered sequence of top-level declarations.
type StyleSheet struct {
	Nodes []Node
}

// Append adds nodes to the end of the stylesheet.
func (s *StyleSheet) Append(nodes ...Node) {
	s.Nodes = append(s.Nodes, nodes...)
}

// Comment is a block of single-line comments ("// ...").
type Comment struct {
	Lines []string
}

// DocComment is a block of SassDoc comments ("/// ...").
type DocComment struct {
	Lines []string
}

// Newline emits a blank line between declarations.
type Newline struct{}

// Import is an @import statement. Path is emitted single-quoted.
type Import struct {
	Path string
}

// Assignment is a variable assignment ("$name: value;").
type Assignment struct {
	// Name is the variable name without the leading "$".
	Name string

	// Value is the assigned expression.
	Value Expr

	// Default appends the !default flag (assign only if unset).
	Default bool

	// Global appends the !global flag (assign in global scope).
	Global bool
}

// Mixin is an @mixin definition.
type Mixin struct {
	Name   string
	Params []Param
	Body   []Node
}

// Param is a mixin parameter with an optional default expression.
type Param struct {
	// Name is the parameter name without the leading "$".
	Name string

	// Default is the default expression, or nil for a required parameter.
	Default Expr
}

// Content is the @content yield point inside a mixin body.
type Content struct{}

// If is an @if block.
type If struct {
	Condition Expr
	Body      []Node
}

// Include is an @include statement.
type Include struct {
	Name string
	Args []Expr
}

// Variable references a variable ("$name").
type Variable struct {
	Name string
}

// Str is a single-quoted string literal.
type Str struct {
	Value string
}

// Lit is a verbatim expression, used for color literals and other
// values that pass through the generator unchanged.
type Lit struct {
	Value string
}

// Call is a function call expression.
type Call struct {
	Name string
	Args []Expr
}

// Binary is a binary expression such as "$theme != $sg--theme".
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
}

// Map is a parenthesized map literal, printed one pair per line.
type Map struct {
	Pairs []Pair
}

// Pair is a single key-value entry in a map literal.
type Pair struct {
	Key   Expr
	Value Expr
}
