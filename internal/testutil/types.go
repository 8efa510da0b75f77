// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/wjson/ast"
)

// Shape renders a compact single-line description of the structure of v,
// listing the key and kind of every entry. Numbers are shown with six
// fractional digits, so values that differ only beyond that precision have
// the same shape.
//
// For example, an object with a string member "a" and a list member "b"
// holding one number is rendered as:
//
//	{a:string("x") b:[0:number(1.000000)]}
func Shape(v ast.Value) string {
	if v == nil {
		return "empty"
	}
	var sh shaper
	if err := ast.Walk(v, &sh); err != nil {
		return fmt.Sprintf("unknown(%T)", v)
	}
	return sh.String()
}

// ObjectShape is shorthand for the Shape of c as an object.
func ObjectShape(c *ast.Container) string { return Shape(ast.Object{Container: c}) }

// shaper is an ast.Handler that renders a shape string.
type shaper struct{ strings.Builder }

func (s *shaper) BeginObject(*ast.Container) error { s.WriteByte('{'); return nil }
func (s *shaper) EndObject(*ast.Container) error { s.WriteByte('}'); return nil }
func (s *shaper) BeginList(*ast.Container) error { s.WriteByte('['); return nil }
func (s *shaper) EndList(*ast.Container) error { s.WriteByte(']'); return nil }
func (s *shaper) EndEntry(*ast.Node) error { return nil }

func (s *shaper) BeginEntry(n *ast.Node) error {
	if n.Prev() != nil {
		s.WriteByte(' ')
	}
	s.WriteString(n.Key())
	s.WriteByte(':')
	return nil
}

func (s *shaper) Value(v ast.Value) error {
	switch t := v.(type) {
	case ast.Number:
		fmt.Fprintf(s, "number(%s)", strconv.FormatFloat(float64(t), 'f', 6, 64))
	case ast.String:
		fmt.Fprintf(s, "string(%q)", string(t))
	case ast.Bool:
		fmt.Fprintf(s, "bool(%v)", bool(t))
	case ast.Null:
		s.WriteString("null")
	}
	return nil
}
