// File: parse.go
// Title: Parse Failure Errors
// Description: Constructor and accessors for errors raised by the text codecs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

import (
	"errors"
	"fmt"
)

// ParseFailure creates a parse error for input that failed at offset.
// The example is a well-formed string of the expected grammar.
func ParseFailure(code Code, reason, input string, offset int, example string) *Error {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	err := New(fmt.Sprintf("%s in %q at offset %d; expected a value like %q", reason, input, offset, example)).
		WithCode(code)
	err.input = input
	err.offset = offset
	err.example = example
	return err
}

// Input returns the text that failed to parse
func (e *Error) Input() string { return e.input }

// Example returns a well-formed example of the expected grammar
func (e *Error) Example() string { return e.example }

// Offset returns the byte offset of the failure, or -1 for non-parse errors
func (e *Error) Offset() int { return e.offset }

// IsParseFailure reports whether err carries parse failure information
func IsParseFailure(err error) bool {
	var chronoErr *Error
	if errors.As(err, &chronoErr) {
		return chronoErr.offset >= 0
	}
	return false
}

// Remainder returns the unparsed input starting at the failure offset
func (e *Error) Remainder() string {
	if e.offset < 0 {
		return ""
	}
	return e.input[e.offset:]
}
