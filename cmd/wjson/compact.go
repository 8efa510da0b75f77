// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"strconv"

	"github.com/creachadair/wjson/ast"
	"github.com/tailscale/hujson"
)

// toJSON converts root into a standard JSON value. Strings are escaped as
// JSON requires, and numbers keep the six-digit form of the canonical text.
func toJSON(root *ast.Container) (hujson.Value, error) {
	var b jsonBuilder
	if err := ast.Walk(ast.Object{Container: root}, &b); err != nil {
		return hujson.Value{}, err
	}
	return b.root, nil
}

// jsonBuilder is an ast.Handler that constructs a hujson.Value.
type jsonBuilder struct {
	open []hujson.Value // enclosing composites, innermost last
	keys []string       // keys of the entries being built, innermost last
	root hujson.Value
}

func (b *jsonBuilder) BeginObject(*ast.Container) error {
	b.open = append(b.open, hujson.Value{Value: new(hujson.Object)})
	return nil
}

func (b *jsonBuilder) BeginList(*ast.Container) error {
	b.open = append(b.open, hujson.Value{Value: new(hujson.Array)})
	return nil
}

func (b *jsonBuilder) EndObject(*ast.Container) error { return b.close() }
func (b *jsonBuilder) EndList(*ast.Container) error { return b.close() }

func (b *jsonBuilder) BeginEntry(n *ast.Node) error {
	b.keys = append(b.keys, n.Key())
	return nil
}

func (b *jsonBuilder) EndEntry(*ast.Node) error {
	b.keys = b.keys[:len(b.keys)-1]
	return nil
}

func (b *jsonBuilder) Value(v ast.Value) error {
	var lit hujson.Literal
	switch t := v.(type) {
	case ast.Null:
		lit = hujson.Literal("null")
	case ast.Bool:
		lit = hujson.Bool(bool(t))
	case ast.Number:
		lit = hujson.Literal(strconv.FormatFloat(float64(t), 'f', 6, 64))
	case ast.String:
		lit = hujson.String(string(t))
	default:
		return errors.New("unknown scalar value")
	}
	return b.add(hujson.Value{Value: lit})
}

func (b *jsonBuilder) close() error {
	n := len(b.open) - 1
	v := b.open[n]
	b.open = b.open[:n]
	return b.add(v)
}

// add adds v to the innermost open composite, or makes it the root.
func (b *jsonBuilder) add(v hujson.Value) error {
	if len(b.open) == 0 {
		b.root = v
		return nil
	}
	switch t := b.open[len(b.open)-1].Value.(type) {
	case *hujson.Object:
		key := b.keys[len(b.keys)-1]
		t.Members = append(t.Members, hujson.ObjectMember{
			Name:  hujson.Value{Value: hujson.String(key)},
			Value: v,
		})
	case *hujson.Array:
		t.Elements = append(t.Elements, v)
	default:
		return errors.New("value outside of a container")
	}
	return nil
}
