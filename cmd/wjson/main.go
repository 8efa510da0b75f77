// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program wjson reads documents from files or standard input and writes them
// back out in canonical form.
//
// Usage:
//
//	wjson [flags] [file ...]
//
// With no file arguments, or with an argument of "-", input is read from
// stdin. Each document is written to stdout followed by a newline.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/wjson"
	"github.com/creachadair/wjson/ast"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// settings hold the values of the command-line flags.
type settings struct {
	Verbosity     int
	Indent        int
	MaxDepth      int
	KeepListNulls bool
	Encoding      string
	Compact       bool
}

var encodings = map[string]encoding.Encoding{
	"auto":     nil,
	"utf-8":    unicode.UTF8,
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg settings
	cmd := &cobra.Command{
		Use:           "wjson [flags] [file ...]",
		Short:         "Read documents and print them in canonical form",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.run(cmd, args)
		},
	}
	fs := cmd.Flags()
	fs.CountVarP(&cfg.Verbosity, "verbose", "v", "verbose logging (repeat for more)")
	fs.IntVar(&cfg.Indent, "indent", 0, "base indentation level of the output, in tabs")
	fs.IntVar(&cfg.MaxDepth, "max-depth", ast.DefaultMaxDepth, "maximum container nesting depth (negative for no limit)")
	fs.BoolVar(&cfg.KeepListNulls, "keep-list-nulls", false, "keep null elements of lists")
	fs.StringVar(&cfg.Encoding, "encoding", "auto", "input encoding (auto, utf-8, utf-16le, utf-16be)")
	fs.BoolVar(&cfg.Compact, "compact", false, "write compact standard JSON instead of canonical text")
	return cmd
}

func (s settings) logger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if s.Verbosity == 1 {
		level = zerolog.DebugLevel
	} else if s.Verbosity >= 2 {
		level = zerolog.TraceLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func (s settings) options() (*ast.Options, error) {
	enc, ok := encodings[strings.ToLower(s.Encoding)]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", s.Encoding)
	}
	if s.Indent < 0 {
		return nil, fmt.Errorf("invalid indent %d", s.Indent)
	}
	return &ast.Options{
		MaxDepth:      s.MaxDepth,
		KeepListNulls: s.KeepListNulls,
		Encoding:      enc,
	}, nil
}

func (s settings) run(cmd *cobra.Command, args []string) error {
	log := s.logger(cmd.ErrOrStderr())
	opts, err := s.options()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	var nfail int
	for _, name := range args {
		log.Debug().Str("input", name).Msg("reading")
		root, err := s.parse(cmd, name, opts)
		if err != nil {
			nfail++
			log.Error().Err(err).Str("input", name).Str("kind", wjson.KindOf(err).String()).Msg("read failed")
			if root == nil {
				continue
			}
		}
		if log.GetLevel() <= zerolog.DebugLevel {
			logCounts(log, name, root)
		}

		out, err := s.format(root)
		if err != nil {
			nfail++
			log.Error().Err(err).Str("input", name).Msg("format failed")
			continue
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if nfail > 0 {
		return fmt.Errorf("%d of %d inputs failed", nfail, len(args))
	}
	return nil
}

func (s settings) parse(cmd *cobra.Command, name string, opts *ast.Options) (*ast.Container, error) {
	if name == "-" {
		return ast.ParseWithOptions(cmd.InOrStdin(), opts)
	}
	return ast.ParseFile(name, opts)
}

// format renders root as text, followed by a newline.
func (s settings) format(root *ast.Container) ([]byte, error) {
	if s.Compact {
		v, err := toJSON(root)
		if err != nil {
			return nil, fmt.Errorf("convert to JSON: %w", err)
		}
		return append(v.Pack(), '\n'), nil
	}
	var buf bytes.Buffer
	if err := ast.Print(&buf, root, s.Indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// logCounts logs the number of values of each kind in root.
func logCounts(log zerolog.Logger, name string, root *ast.Container) {
	counts := make(ast.KindCounter)
	if err := ast.Walk(ast.Object{Container: root}, counts); err != nil {
		log.Warn().Err(err).Str("input", name).Msg("counting values")
		return
	}
	ev := log.Debug().Str("input", name)
	for k := ast.KindNull; k <= ast.KindList; k++ {
		ev = ev.Int(k.String(), counts[k])
	}
	ev.Msg("parsed")
}
