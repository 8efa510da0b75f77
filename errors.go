// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package wjson

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this module.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	Unknown           ErrorKind = iota // not an error of this module
	AllocationFailed                   // storage for a value could not be obtained
	StreamUnavailable                  // the input could not be opened
	ReadFailed                         // the input reported an error other than EOF
	MalformedNumber                    // numeric text does not denote a number
	DepthExceeded                      // containers are nested too deeply
	InvalidChild                       // a container cannot take ownership of a value
)

var kindStr = [...]string{
	Unknown:           "unknown error",
	AllocationFailed:  "allocation failed",
	StreamUnavailable: "stream unavailable",
	ReadFailed:        "read failed",
	MalformedNumber:   "malformed number",
	DepthExceeded:     "depth exceeded",
	InvalidChild:      "invalid child",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Unknown]
	}
	return kindStr[v]
}

// Error is the concrete type of errors reported by the scanner, reader, and
// container builder.
type Error struct {
	Kind    ErrorKind
	Offset  int // byte offset in the input, or -1 if not applicable
	Message string
	Err     error // the underlying cause, if any
}

// Errorf constructs an *Error of the given kind and offset, with a message
// formatted from msg and args. If args include an error wrapped with %w, that
// error becomes the cause.
func Errorf(kind ErrorKind, offset int, msg string, args ...any) *Error {
	err := fmt.Errorf(msg, args...)
	return &Error{
		Kind:    kind,
		Offset:  offset,
		Message: err.Error(),
		Err:     errors.Unwrap(err),
	}
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same kind as e.
// This permits checks like:
//
//	errors.Is(err, &wjson.Error{Kind: wjson.MalformedNumber})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf reports the kind of the first *Error in the chain of err.
// It returns Unknown if err == nil or no *Error is found.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
