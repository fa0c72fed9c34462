package arith

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). The message strings are part of the
// package contract; callers match on them with [errors.Is].
var (
	ErrNoExpression       = NewError("No expression specified")
	ErrInvalidCharacters  = NewError("Input expression contains invalid characters")
	ErrLeadingCharacter   = NewError("first non-whitespace/non-'(' character must be numeric")
	ErrOperandExpected    = NewError("Operator must be followed by an expression")
	ErrEmptyParens        = NewError("Left parenthesis must be followed by an expression")
	ErrTrailingCharacters = NewError("Expression contains extraneous characters")
	ErrNumberRange        = NewError("integer literal out of range")
	ErrReadInput          = NewError("failed to read input")
)

// Error represents a parse error with an optional character offset and
// structured logging attributes. It implements both error and
// [slog.LogValuer].
type Error struct {
	msg    string
	err    error       // Wrapped error (for errors.Unwrap)
	offset int         // Character offset of the violation, -1 when unknown
	attrs  []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message and no offset.
func NewError(msg string) *Error {
	return &Error{msg: msg, offset: -1}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err, offset: -1}
}

// Error implements the error interface. The offset, when known, is
// appended to the message.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	msg := strings.Join(part, ": ")
	if e.offset >= 0 {
		msg += " at offset " + strconv.Itoa(e.offset)
	}

	return msg
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error carrying the same message, so
// derived errors (offsets or attributes added) still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// Offset returns the character offset of the violation, and whether one
// was recorded.
func (e *Error) Offset() (int, bool) { return e.offset, e.offset >= 0 }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	if e.offset >= 0 {
		attrs = append(attrs, slog.Int("offset", e.offset))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:    e.msg,
		err:    err,
		offset: e.offset,
		attrs:  e.attrs, // Share attrs
	}
}

// WithOffset records the character offset at which the violation was
// detected. This creates a new Error instance to maintain immutability.
func (e *Error) WithOffset(offset int) *Error {
	return &Error{
		msg:    e.msg,
		err:    e.err,
		offset: offset,
		attrs:  e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:    e.msg,
		err:    e.err,
		offset: e.offset,
		attrs:  newAttrs,
	}
}
