// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"
	"os"

	"github.com/creachadair/wjson"
	"go4.org/mem"
	"golang.org/x/text/encoding"
)

// DefaultMaxDepth is the nesting depth of containers allowed by default.
const DefaultMaxDepth = 10000

// Options control the behavior of the reader. A nil *Options is ready for use
// and provides default settings.
type Options struct {
	// The maximum nesting depth of containers, counting the root as 1.
	// If zero, DefaultMaxDepth is used; if negative, depth is not bounded.
	MaxDepth int

	// If true, null elements of a list are added to the list as Null values.
	// By default they are recognized and discarded.
	KeepListNulls bool

	// The encoding of the input. If nil, the input is UTF-8 unless it begins
	// with a byte-order mark (see wjson.DecodeInput).
	Encoding encoding.Encoding
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) keepListNulls() bool { return o != nil && o.KeepListNulls }

func (o *Options) encoding() encoding.Encoding {
	if o == nil {
		return nil
	}
	return o.Encoding
}

// Parse reads a document from r with default options. See ParseWithOptions.
func Parse(r io.Reader) (*Container, error) { return ParseWithOptions(r, nil) }

// ParseFile opens the named file and reads a document from it. If the file
// cannot be opened, ParseFile reports an error of kind StreamUnavailable and
// no parse is attempted.
func ParseFile(name string, opts *Options) (*Container, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wjson.Errorf(wjson.StreamUnavailable, -1, "open input: %w", err)
	}
	defer f.Close()
	return ParseWithOptions(f, opts)
}

// ParseWithOptions reads a document from r and returns its root object.
//
// The reader is lenient: input before the first "{" is skipped, characters
// that do not begin a recognized construct are discarded, and a container or
// string that is not closed before the end of input is accepted as far as it
// goes. If the input has no "{" at all, the result is an empty container.
//
// In case of error, the root is returned along with the error, holding the
// entries completed before the error occurred.
func ParseWithOptions(r io.Reader, opts *Options) (*Container, error) {
	p := &parser{
		s:        wjson.NewScannerWithEncoding(r, opts.encoding()),
		maxDepth: opts.maxDepth(),
		keepNull: opts.keepListNulls(),
	}
	root := NewContainer()
	return root, p.document(root)
}

// keywords are tried in this order when a value begins with a letter.
var keywords = []string{"true", "false", "null"}

type parser struct {
	s        *wjson.Scanner
	depth    int
	maxDepth int
	keepNull bool
}

// next returns the next input rune. At the end of the input it returns false
// and a nil error.
func (p *parser) next() (rune, bool, error) {
	ch, err := p.s.Next()
	if err == io.EOF {
		return 0, false, nil
	} else if err != nil {
		return 0, false, wjson.Errorf(wjson.ReadFailed, p.s.Offset(), "read: %w", err)
	}
	return ch, true, nil
}

// document scans forward to the first object opener and parses that object
// into root.
func (p *parser) document(root *Container) error {
	for {
		ch, ok, err := p.next()
		if err != nil || !ok {
			return err
		} else if ch == '{' {
			return p.object(root)
		}
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return wjson.Errorf(wjson.DepthExceeded, p.s.Offset(),
			"nesting depth exceeds %d", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// object parses the members of an object into c. The opening "{" has already
// been consumed.
func (p *parser) object(c *Container) error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	for {
		ch, ok, err := p.next()
		if err != nil || !ok {
			return err
		}
		switch ch {
		case '}':
			return nil
		case '"':
			key, err := p.stringLit()
			if err != nil {
				return err
			}
			if err := p.member(c, key); err != nil {
				return err
			}
		}
		// Anything else is discarded.
	}
}

// member scans forward to the value of an object member and adds it to c
// under key. A "}" seen before any value ends the member without a value,
// and is left for the enclosing object.
func (p *parser) member(c *Container, key string) error {
	for {
		ch, ok, err := p.next()
		if err != nil || !ok {
			return err
		} else if ch == '}' {
			p.s.Unread(ch)
			return nil
		}
		v, found, err := p.value(ch)
		if !found && err == nil {
			continue
		}
		if v != nil {
			if _, isNull := v.(Null); isNull {
				v = String("null")
			}
			if aerr := c.Append(key, v); err == nil {
				err = aerr
			}
		}
		return err
	}
}

// list parses the elements of a list into c. The opening "[" has already been
// consumed.
func (p *parser) list(c *Container) error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	for {
		ch, ok, err := p.next()
		if err != nil || !ok {
			return err
		} else if ch == ']' {
			return nil
		}
		v, _, err := p.value(ch)
		if v != nil {
			if _, isNull := v.(Null); isNull && !p.keepNull {
				v = nil
			}
		}
		if v != nil {
			if aerr := c.Push(v); err == nil {
				err = aerr
			}
		}
		if err != nil {
			return err
		}
	}
}

// value parses a value beginning with ch. It reports false if ch does not
// begin a value, in which case ch has been discarded.
//
// A nested container is returned even when parsing it fails, holding what
// was read before the failure.
func (p *parser) value(ch rune) (Value, bool, error) {
	switch {
	case ch == '{':
		sub := NewContainer()
		return Object{sub}, true, p.object(sub)

	case ch == '[':
		sub := NewContainer()
		return List{sub}, true, p.list(sub)

	case ch == '"':
		s, err := p.stringLit()
		if err != nil {
			return nil, true, err
		}
		return String(s), true, nil

	case ch == 't' || ch == 'f' || ch == 'n':
		p.s.Unread(ch)
		for _, kw := range keywords {
			if p.s.Match(kw) {
				switch kw {
				case "true":
					return Bool(true), true, nil
				case "false":
					return Bool(false), true, nil
				default:
					return Null{}, true, nil
				}
			}
		}
		p.s.Next() // discard ch
		return nil, false, nil

	case isNumRune(ch):
		z, err := p.number(ch)
		if err != nil {
			return nil, true, err
		}
		return Number(z), true, nil
	}
	return nil, false, nil
}

// stringLit reads the text of a string up to its closing quote, or to the end
// of the input. The opening quote has already been consumed. There are no
// escape sequences.
func (p *parser) stringLit() (string, error) {
	p.s.StartToken()
	if _, err := p.s.ReadUntil('"'); err != nil {
		return "", wjson.Errorf(wjson.ReadFailed, p.s.Offset(), "read string: %w", err)
	}
	return string(p.s.Text()), nil
}

// number reads a numeric literal beginning with first.
func (p *parser) number(first rune) (float64, error) {
	pos := p.s.Offset() - 1
	p.s.StartToken()
	p.s.Keep(first)
	if _, err := p.s.ReadWhile(isNumRune); err != nil {
		return 0, wjson.Errorf(wjson.ReadFailed, p.s.Offset(), "read number: %w", err)
	}
	text := mem.B(p.s.Text())
	z, err := mem.ParseFloat(text, 64)
	if err != nil {
		return 0, wjson.Errorf(wjson.MalformedNumber, pos, "invalid number %q: %w", text.StringCopy(), err)
	}
	return z, nil
}

func isNumRune(ch rune) bool { return ch == '.' || ch == '-' || ('0' <= ch && ch <= '9') }
