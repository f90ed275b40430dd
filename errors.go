// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "fmt"

// A Kind classifies the cause of an Error.
type Kind byte

// Constants defining the valid Kind values.
const (
	// InvalidKind is the zero value and is never returned by the decoder.
	InvalidKind Kind = iota

	Encoding   // input is not valid UTF-8
	Lexical    // unterminated string, invalid escape, malformed literal
	Syntax     // unexpected token, missing delimiter
	Semantic   // duplicate key, illegal table redefinition or extension
	Numeric    // integer overflow, float parse failure
	Allocation // the arena refused a request
)

var kindStr = [...]string{
	InvalidKind: "invalid",
	Encoding:    "encoding",
	Lexical:     "lexical",
	Syntax:      "syntax",
	Semantic:    "semantic",
	Numeric:     "numeric",
	Allocation:  "allocation",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidKind]
	}
	return kindStr[k]
}

// An Error is the concrete type of every error the decoder reports. It
// carries the Kind of failure and the Location at which it was detected.
type Error struct {
	Kind     Kind
	Location LineCol
	Message  string

	err error // wrapped cause, if any
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: at %s: %s", e.Kind, e.Location, e.Message)
}

// Unwrap supports error wrapping with errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, loc LineCol, format string, args ...any) *Error {
	return &Error{Kind: kind, Location: loc, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, loc LineCol, err error) *Error {
	return &Error{Kind: kind, Location: loc, Message: err.Error(), err: err}
}
