package decoder

import (
	"errors"
	"fmt"
)

// Code categorizes decode failures.
type Code string

const (
	// CodeEmptyEncoding indicates a nil or empty encoding string.
	CodeEmptyEncoding Code = "EMPTY_ENCODING"

	// CodeInvalidCharacter indicates a character outside {'0','1'}.
	CodeInvalidCharacter Code = "INVALID_CHARACTER"

	// CodeMalformedTransition indicates a transition chunk that does not
	// split into exactly 5 unary fields.
	CodeMalformedTransition Code = "MALFORMED_TRANSITION"

	// CodeNoTransitions indicates a well-formed encoding that yields no
	// transitions at all.
	CodeNoTransitions Code = "NO_TRANSITIONS"
)

// DecodeError reports a malformed encoding. It is fatal to the decode call
// that produced it and is never silently recovered in the strict
// discipline.
type DecodeError struct {
	// Code identifies the error category.
	Code Code

	// Message is a human-readable description.
	Message string

	// Chunk is the offending transition substring (malformed transitions).
	Chunk string

	// Offset is the byte position of the offending character (invalid
	// characters), -1 otherwise.
	Offset int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Chunk != "":
		return fmt.Sprintf("%s: %s (chunk %q)", e.Code, e.Message, e.Chunk)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: %s (offset %d)", e.Code, e.Message, e.Offset)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func newEmptyEncodingError() *DecodeError {
	return &DecodeError{
		Code:    CodeEmptyEncoding,
		Message: "encoding is empty",
		Offset:  -1,
	}
}

func newInvalidCharacterError(r rune, offset int) *DecodeError {
	return &DecodeError{
		Code:    CodeInvalidCharacter,
		Message: fmt.Sprintf("encoding must contain only '0' and '1', found %q", r),
		Offset:  offset,
	}
}

func newMalformedTransitionError(chunk string, fields int) *DecodeError {
	return &DecodeError{
		Code:    CodeMalformedTransition,
		Message: fmt.Sprintf("expected 5 unary fields, found %d", fields),
		Chunk:   chunk,
		Offset:  -1,
	}
}

func newNoTransitionsError() *DecodeError {
	return &DecodeError{
		Code:    CodeNoTransitions,
		Message: "encoding yields no transitions",
		Offset:  -1,
	}
}

func hasCode(err error, code Code) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsEmptyEncoding reports whether err is an empty-encoding decode error.
func IsEmptyEncoding(err error) bool { return hasCode(err, CodeEmptyEncoding) }

// IsInvalidCharacter reports whether err is an invalid-character decode error.
func IsInvalidCharacter(err error) bool { return hasCode(err, CodeInvalidCharacter) }

// IsMalformedTransition reports whether err is a malformed-transition decode error.
func IsMalformedTransition(err error) bool { return hasCode(err, CodeMalformedTransition) }

// IsNoTransitions reports whether err is a no-transitions decode error.
func IsNoTransitions(err error) bool { return hasCode(err, CodeNoTransitions) }
