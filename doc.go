// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package wjson implements the character scanner and error taxonomy for a
// lenient reader of JSON-like documents.
//
// # Scanning
//
// The Scanner type reads an input stream one character at a time. Construct
// a scanner from an io.Reader and call its Next method to read characters.
// Next returns io.EOF when the input has been fully consumed:
//
//	s := wjson.NewScanner(input)
//	for {
//	   ch, err := s.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Read failed: %v", err)
//	   }
//	   log.Printf("Next character: %q", ch)
//	}
//
// Any character can be returned to the input with Unread, and Match consumes
// a keyword only if the input begins with all of it:
//
//	if s.Match("true") {
//	   // the input was positioned at "true", and now follows it
//	}
//
// A failed Match leaves the position of the scanner unchanged.
//
// # Encoding
//
// By default the input is decoded as UTF-8, unless it begins with a UTF-16
// byte-order mark. Use NewScannerWithEncoding to force another encoding.
//
// # Errors
//
// Errors reported by this module have concrete type *wjson.Error, whose Kind
// field classifies the failure. Use KindOf to classify an arbitrary error.
//
// The document model, reader and writer are defined by package ast.
package wjson
