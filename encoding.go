// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package wjson

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// DecodeInput returns a reader that delivers the contents of r as UTF-8.
//
// A leading byte-order mark selects UTF-16 (big- or little-endian) or UTF-8,
// and is removed. Without a byte-order mark the input is taken to be UTF-8.
// Invalid byte sequences are replaced by the Unicode replacement rune.
//
// Input that precedes a read error is delivered before the error.
func DecodeInput(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(bomUTF8))
	enc, skip := sniffBOM(head)

	var src io.Reader = br
	if err != nil && err != io.EOF {
		// Peek does not retain the error, so deliver it after the bytes
		// that were read ahead of it.
		src = io.MultiReader(bytes.NewReader(head[skip:]), failReader{err})
	} else {
		br.Discard(skip)
	}
	return enc.NewDecoder().Reader(src)
}

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

// sniffBOM reports the encoding selected by the byte-order mark at the start
// of head, if any, and the length of the mark.
func sniffBOM(head []byte) (encoding.Encoding, int) {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		return unicode.UTF8, len(bomUTF8)
	case bytes.HasPrefix(head, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), len(bomUTF16BE)
	case bytes.HasPrefix(head, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), len(bomUTF16LE)
	}
	return unicode.UTF8, 0
}

// failReader is an io.Reader that reports a fixed error.
type failReader struct{ err error }

func (f failReader) Read([]byte) (int, error) { return 0, f.err }
