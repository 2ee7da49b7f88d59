/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package scss

import "strings"

// indentUnit is the indentation emitted per nesting level.
const indentUnit = "  "

// Print serializes a stylesheet to SCSS source text.
// Output is deterministic: the same tree always yields the same bytes.
func Print(sheet *StyleSheet) []byte {
	p := &printer{}
	for _, node := range sheet.Nodes {
		node.writeTo(p)
	}
	return []byte(p.sb.String())
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) line(s string) {
	for i := 0; i < p.indent; i++ {
		p.sb.WriteString(indentUnit)
	}
	p.sb.WriteString(s)
	p.sb.WriteString("\n")
}

func (p *printer) expr(e Expr) string {
	sub := &printer{indent: p.indent}
	e.writeExpr(sub)
	return sub.sb.String()
}

func (p *printer) body(nodes []Node) {
	p.indent++
	for _, node := range nodes {
		node.writeTo(p)
	}
	p.indent--
}

func (c Comment) writeTo(p *printer) {
	for _, line := range c.Lines {
		if line == "" {
			p.line("//")
			continue
		}
		p.line("// " + line)
	}
}

func (c DocComment) writeTo(p *printer) {
	for _, line := range c.Lines {
		if line == "" {
			p.line("///")
			continue
		}
		p.line("/// " + line)
	}
}

func (Newline) writeTo(p *printer) {
	p.sb.WriteString("\n")
}

func (i Import) writeTo(p *printer) {
	p.line("@import '" + i.Path + "';")
}

func (a Assignment) writeTo(p *printer) {
	decl := "$" + a.Name + ": " + p.expr(a.Value)
	if a.Default {
		decl += " !default"
	}
	if a.Global {
		decl += " !global"
	}
	p.line(decl + ";")
}

func (m Mixin) writeTo(p *printer) {
	params := make([]string, len(m.Params))
	for i, param := range m.Params {
		params[i] = "$" + param.Name
		if param.Default != nil {
			params[i] += ": " + p.expr(param.Default)
		}
	}
	p.line("@mixin " + m.Name + "(" + strings.Join(params, ", ") + ") {")
	p.body(m.Body)
	p.line("}")
}

func (Content) writeTo(p *printer) {
	p.line("@content;")
}

func (i If) writeTo(p *printer) {
	p.line("@if " + p.expr(i.Condition) + " {")
	p.body(i.Body)
	p.line("}")
}

func (i Include) writeTo(p *printer) {
	args := make([]string, len(i.Args))
	for j, arg := range i.Args {
		args[j] = p.expr(arg)
	}
	p.line("@include " + i.Name + "(" + strings.Join(args, ", ") + ");")
}

func (v Variable) writeExpr(p *printer) {
	p.sb.WriteString("$" + v.Name)
}

func (s Str) writeExpr(p *printer) {
	p.sb.WriteString("'" + s.Value + "'")
}

func (l Lit) writeExpr(p *printer) {
	p.sb.WriteString(l.Value)
}

func (c Call) writeExpr(p *printer) {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = p.expr(arg)
	}
	p.sb.WriteString(c.Name + "(" + strings.Join(args, ", ") + ")")
}

func (b Binary) writeExpr(p *printer) {
	p.sb.WriteString(p.expr(b.Left) + " " + b.Op + " " + p.expr(b.Right))
}

// writeExpr prints a map literal across multiple lines. The closing
// parenthesis lands at the parent's indentation so the literal nests
// correctly inside an assignment.
func (m Map) writeExpr(p *printer) {
	p.sb.WriteString("(\n")
	for _, pair := range m.Pairs {
		for i := 0; i <= p.indent; i++ {
			p.sb.WriteString(indentUnit)
		}
		p.sb.WriteString(p.expr(pair.Key) + ": " + p.expr(pair.Value) + ",\n")
	}
	for i := 0; i < p.indent; i++ {
		p.sb.WriteString(indentUnit)
	}
	p.sb.WriteString(")")
}
