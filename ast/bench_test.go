// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/wjson/ast"
)

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString(`{"items": [`)
	for i := range 2000 {
		fmt.Fprintf(&sb, `{"n": %d, "s": "item %d", "b": true, "z": null, "l": [1, 2, null]},`, i, i)
	}
	sb.WriteString(`{}]}`)
	input := sb.String()
	b.Logf("Benchmark input: %d bytes", len(input))

	var root *ast.Container
	b.Run("Parse", func(b *testing.B) {
		for b.Loop() {
			var err error
			root, err = ast.Parse(strings.NewReader(input))
			if err != nil {
				b.Fatalf("Parse: %v", err)
			}
		}
	})
	if root == nil {
		b.Skip("No parsed input to print")
	}
	b.Run("Print", func(b *testing.B) {
		for b.Loop() {
			if err := ast.Print(io.Discard, root, 0); err != nil {
				b.Fatalf("Print: %v", err)
			}
		}
	})
}
