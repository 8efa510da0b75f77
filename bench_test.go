// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package wjson_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/wjson"
)

// benchInput constructs a document of n records with mixed content.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString(`{"records": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "record number %d", "score": %d.25, "ok": %v, "tags": ["a", "b"]}`,
			i, i, i*7, i%2 == 0)
	}
	sb.WriteString("]}")
	return []byte(sb.String())
}

func isNumRune(ch rune) bool { return ch == '-' || ch == '.' || ('0' <= ch && ch <= '9') }

func BenchmarkScanner(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for b.Loop() {
			s := wjson.NewScanner(bytes.NewReader(input))
			for {
				ch, err := s.Next()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}

				// Accumulate strings and numbers as tokens, as the reader does.
				switch {
				case ch == '"':
					s.StartToken()
					s.ReadUntil('"')
					_ = s.Copy()
				case isNumRune(ch):
					s.StartToken()
					s.Keep(ch)
					s.ReadWhile(isNumRune)
				case ch == 't' || ch == 'f':
					s.Unread(ch)
					if !s.Match("true") && !s.Match("false") {
						s.Next()
					}
				}
			}
		}
	})
}
