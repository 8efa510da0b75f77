// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"archive/zip"
	"errors"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/wjson"
	"github.com/creachadair/wjson/ast"
	"github.com/creachadair/wjson/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

var (
	doHardTest = flag.Bool("suite-test", false,
		"Run the reader over the full parsing test suite")
	hardTestURL = flag.String("suite-test-repo", "https://github.com/nst/JSONTestSuite",
		"Parsing test suite repository URL")

	// The inputs exercised here are those described by the article "Parsing
	// JSON is a Minefield", https://seriot.ch/projects/parsing_json.html.
)

func mustGetArchive(t *testing.T, zipFile string) *zip.Reader {
	t.Helper()

	if fi, err := os.Stat(zipFile); err == nil {
		zf, err := os.Open(zipFile)
		if err != nil {
			t.Fatalf("Open archive: %v", err)
		}
		t.Cleanup(func() { zf.Close() })
		zr, err := zip.NewReader(zf, fi.Size())
		if err != nil {
			t.Fatalf("Open reader: %v", err)
		}
		return zr
	} else if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Stat archive: %v", err)
	}

	fullURL := *hardTestURL + "/archive/refs/heads/master.zip"
	t.Logf("Fetching %q ...", fullURL)
	rsp, err := http.Get(fullURL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer rsp.Body.Close()
	if ctype := rsp.Header.Get("content-type"); ctype != "application/zip" {
		t.Fatalf("Unexpected content-type: %q", ctype)
	}

	zf, err := os.Create(zipFile)
	if err != nil {
		t.Fatalf("Create output: %v", err)
	}
	t.Cleanup(func() { zf.Close() })

	size, err := io.Copy(zf, rsp.Body)
	if err != nil {
		t.Fatalf("Write output: %v", err)
	}
	zr, err := zip.NewReader(zf, size)
	if err != nil {
		t.Fatalf("Open reader: %v", err)
	}
	return zr
}

func mustFetchTestFiles(t *testing.T, fn func(*zip.File) error) {
	t.Helper()

	zr := mustGetArchive(t, "hard-test-suite.zip")

	for _, file := range zr.File {
		if err := fn(file); err != nil {
			t.Fatalf("File %q: %v", file.Name, err)
		}
	}
}

// mustParse fully reads the contents of zf and parses it.
// An error from parsing is returned; errors from reading fail the test.
func mustParse(t *testing.T, zf *zip.File) (*ast.Container, error) {
	t.Helper()
	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("Open %q: %v", zf.Name, err)
	}
	defer rc.Close()
	return ast.Parse(rc)
}

// TestSuite feeds every case of the suite to the reader, including the ones
// that are not valid JSON. The reader is lenient, so it is not expected to
// reject anything; but it must always return a root, any error it reports
// must have a known kind, and a document read without error must read back
// the same from its printed text.
func TestSuite(t *testing.T) {
	if !*doHardTest {
		t.Skip("Skipping suite test because --suite-test is false")
	}
	var numCases, numErrs int
	mustFetchTestFiles(t, func(f *zip.File) error {
		_, tail, ok := strings.Cut(f.Name, "/test_parsing/")
		if !ok || filepath.Ext(tail) != ".json" {
			return nil
		}
		tail = strings.TrimSuffix(tail, filepath.Ext(tail))
		numCases++
		t.Run(tail, func(t *testing.T) {
			root, err := mustParse(t, f)
			if root == nil {
				t.Fatalf("Parse %q: no root returned (err=%v)", tail, err)
			}
			if err != nil {
				numErrs++
				if wjson.KindOf(err) == wjson.Unknown {
					t.Errorf("Parse %q: error of unknown kind: %v", tail, err)
				}
				t.Logf("- [error]: %v", err)
				return
			}
			text := ast.FormatToString(root)
			again, err := ast.Parse(strings.NewReader(text))
			if err != nil {
				t.Fatalf("Parse printed %q: %v\n%s", tail, err, text)
			}
			if diff := cmp.Diff(testutil.ObjectShape(root), testutil.ObjectShape(again)); diff != "" {
				t.Errorf("Printed %q reads back differently (-want, +got):\n%s", tail, diff)
			}
		})
		return nil
	})
	t.Logf("Ran %d cases, %d reported errors", numCases, numErrs)
}
