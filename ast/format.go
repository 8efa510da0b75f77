// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print renders the text of the object c to w. Entries are written one per
// line, indented by indent+1 tabs, and the closing brace is indented by indent
// tabs. The opening brace is not indented, and no newline follows the closing
// brace.
//
// Numbers are written with exactly six fractional digits, so 32 is written
// as 32.000000. Strings are written between double quotes without escaping.
// Hence the output is the canonical text of this package, and is not in
// general valid JSON.
//
// Print reports an error without writing anything if c == nil.
func Print(w io.Writer, c *Container, indent int) error {
	if c == nil {
		return errNilContainer
	}
	p := printer{w: bufio.NewWriter(w)}
	p.object(c, indent)
	return p.w.Flush()
}

// PrintList renders the text of the list c to w, as Print does for objects.
func PrintList(w io.Writer, c *Container, indent int) error {
	if c == nil {
		return errNilContainer
	}
	p := printer{w: bufio.NewWriter(w)}
	p.list(c, indent)
	return p.w.Flush()
}

// FormatToString renders the object c to a string. In case of error in
// formatting, it returns an empty string.
func FormatToString(c *Container) string {
	var sb strings.Builder
	if Print(&sb, c, 0) != nil {
		return ""
	}
	return sb.String()
}

var errNilContainer = errors.New("print nil container")

// A printer renders containers to a buffered writer. Write errors are
// retained by the writer and reported when it is flushed.
type printer struct {
	w *bufio.Writer
}

func (p printer) indent(n int) {
	for range n {
		p.w.WriteByte('\t')
	}
}

func (p printer) object(c *Container, indent int) {
	if c.IsEmpty() {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{\n")
	for n := range c.Entries() {
		p.indent(indent + 1)
		p.w.WriteByte('"')
		p.w.WriteString(n.key)
		p.w.WriteString(`" : `)
		p.value(n.value, indent+1)
		p.endEntry(n)
	}
	p.indent(indent)
	p.w.WriteByte('}')
}

func (p printer) list(c *Container, indent int) {
	if c.IsEmpty() {
		p.w.WriteString("[]")
		return
	}
	p.w.WriteString("[\n")
	for n := range c.Entries() {
		p.indent(indent + 1)
		p.value(n.value, indent+1)
		p.endEntry(n)
	}
	p.indent(indent)
	p.w.WriteByte(']')
}

// endEntry terminates the line for n, with a comma unless n is last.
func (p printer) endEntry(n *Node) {
	if n.next != nil {
		p.w.WriteByte(',')
	}
	p.w.WriteByte('\n')
}

func (p printer) value(v Value, indent int) {
	switch t := v.(type) {
	case Null:
		p.w.WriteString("null")
	case Bool:
		p.w.WriteString(strconv.FormatBool(bool(t)))
	case Number:
		p.w.WriteString(strconv.FormatFloat(float64(t), 'f', 6, 64))
	case String:
		p.w.WriteByte('"')
		p.w.WriteString(string(t))
		p.w.WriteByte('"')
	case Object:
		p.object(t.Container, indent)
	case List:
		p.list(t.Container, indent)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
