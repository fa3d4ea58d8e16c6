/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"errors"
	"fmt"
)

// Error is a string type that implements the error interface.
// It is used for the sentinel error kinds of this package.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidArgument is returned when the output URI is nil or the
	// buffer bounds are out of range or inverted.
	ErrInvalidArgument Error = "invalid argument"
	// ErrMalformedInput is matched by every *ParseError: the input violates
	// the RFC 3986 grammar.
	ErrMalformedInput Error = "malformed input"
)

// newInvalidArgumentError wraps ErrInvalidArgument with a formatted reason.
func newInvalidArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ParseError is the error type returned when the input is not a URI
// reference. Pos is the offset, in code units from the start of the buffer,
// of the first character the grammar rejects; it equals the end of the
// parsed range when the input stops too early.
type ParseError struct {
	Pos     int
	Message string
	Err     error
}

// newParseError creates a new ParseError at pos, wrapping err.
// It returns nil if the input error is nil.
func newParseError(pos int, err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Pos: pos, Message: err.Error(), Err: err}
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error at offset %d: %s", e.Pos, e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrMalformedInput, including one built
// without a wrapped cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// ErrorPos returns the offset carried by a *ParseError anywhere in err's chain.
func ErrorPos(err error) (int, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	return 0, false
}

// kindError is a specialized error type used by the parser to provide
// detailed context about a parsing failure.
type kindError struct {
	message string
	char    rune
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s %q", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.details)
	}
	return msg
}

func (e *kindError) Unwrap() error {
	return ErrMalformedInput
}

// errorAt builds the ParseError for the unit at offset pos.
func (p *parserInput[C]) errorAt(pos int, message string) error {
	ke := &kindError{message: message}
	switch {
	case p.atEnd(pos):
		ke.details = "end of input"
	case p.text[pos] == 0:
		ke.details = "NUL"
	default:
		ke.char = rune(p.text[pos])
	}
	return newParseError(pos, ke)
}
