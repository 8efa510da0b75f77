// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package wjson

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// A Scanner reads characters from an input stream one at a time, with
// unlimited push-back. It also accumulates the text of the current token in a
// buffer that grows as needed.
type Scanner struct {
	r    *bufio.Reader
	back []rune       // pushed-back runes; the last element is read next
	buf  bytes.Buffer // current token
	err  error        // sticky read error, other than io.EOF
	pos  int          // byte offset of the next rune
}

// NewScanner constructs a new scanner that consumes input from r. The input
// is decoded as described by DecodeInput.
func NewScanner(r io.Reader) *Scanner { return newScanner(DecodeInput(r)) }

// NewScannerWithEncoding constructs a new scanner that decodes its input from
// r using enc. If enc == nil, it behaves as NewScanner.
func NewScannerWithEncoding(r io.Reader, enc encoding.Encoding) *Scanner {
	if enc == nil {
		return NewScanner(r)
	}
	return newScanner(enc.NewDecoder().Reader(r))
}

func newScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next reads and returns the next rune of the input. At the end of the input
// Next returns io.EOF. Any other error is recorded, and is reported by every
// subsequent call once pushed-back runes are exhausted.
func (s *Scanner) Next() (rune, error) {
	if n := len(s.back); n > 0 {
		ch := s.back[n-1]
		s.back = s.back[:n-1]
		s.pos += utf8.RuneLen(ch)
		return ch, nil
	}
	if s.err != nil {
		return 0, s.err
	}
	ch, nb, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return 0, err
	}
	s.pos += nb
	return ch, nil
}

// Unread pushes ch back onto the input, so that the next call to Next will
// return it. Runes are returned in the reverse order they were pushed.
func (s *Scanner) Unread(ch rune) {
	s.back = append(s.back, ch)
	s.pos -= utf8.RuneLen(ch)
}

// Match reports whether the input at the current position begins with the
// complete text of keyword. If so, the keyword is consumed. Otherwise, every
// rune read during the attempt is pushed back and the position of s is
// unchanged.
func (s *Scanner) Match(keyword string) bool {
	var got []rune
	for _, want := range keyword {
		ch, err := s.Next()
		if err == nil && ch == want {
			got = append(got, ch)
			continue
		}
		if err == nil {
			s.Unread(ch)
		}
		for i := len(got) - 1; i >= 0; i-- {
			s.Unread(got[i])
		}
		return false
	}
	return true
}

// Offset reports the byte offset in the decoded input of the next rune that
// Next will return.
func (s *Scanner) Offset() int { return s.pos }

// Err reports the read error recorded by s, if any. It does not report io.EOF.
func (s *Scanner) Err() error { return s.err }

// StartToken discards the contents of the current token.
func (s *Scanner) StartToken() { s.buf.Reset() }

// Keep appends ch to the current token.
func (s *Scanner) Keep(ch rune) { s.buf.WriteRune(ch) }

// ReadWhile consumes runes matching f from the input and appends them to the
// current token, until EOF or until a rune not matching f is found. The
// non-matching rune is pushed back. It reports the number of runes consumed.
// Reaching the end of input is not an error.
func (s *Scanner) ReadWhile(f func(rune) bool) (int, error) {
	var nr int
	for {
		ch, err := s.Next()
		if err == io.EOF {
			return nr, nil
		} else if err != nil {
			return nr, err
		} else if !f(ch) {
			s.Unread(ch)
			return nr, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

// ReadUntil consumes runes from the input and appends them to the current
// token until stop is found or the input ends. The stop rune is consumed but
// not kept. It reports whether stop was found.
func (s *Scanner) ReadUntil(stop rune) (bool, error) {
	for {
		ch, err := s.Next()
		if err == io.EOF {
			return false, nil
		} else if err != nil {
			return false, err
		} else if ch == stop {
			return true, nil
		}
		s.buf.WriteRune(ch)
	}
}

// Text returns the text of the current token.  The return value is only
// valid until the token is next modified. The caller must copy the contents
// of the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the text of the current token.
func (s *Scanner) Copy() []byte { return bytes.Clone(s.buf.Bytes()) }
