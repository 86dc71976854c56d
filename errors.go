package tonecodec

import (
	"errors"
	"fmt"
)

// Sentinel errors for tonecodec.
var (
	// ErrTruncated is returned when a buffer ends before the structure it declares.
	ErrTruncated = errors.New("tonecodec: truncated input")

	// ErrUnreadable is returned when a source file cannot be opened or read,
	// including when another process holds it locked.
	ErrUnreadable = errors.New("tonecodec: source unreadable")

	// ErrUnrecognizedFormat is returned for a format discriminator that names
	// neither known format.
	ErrUnrecognizedFormat = errors.New("tonecodec: unrecognized file extension")

	// ErrParseSyntax is returned when text does not match the expected grammar.
	ErrParseSyntax = errors.New("tonecodec: text syntax error")

	// ErrUnsupported is returned by operations that have no implementation,
	// such as parsing curve text.
	ErrUnsupported = errors.New("tonecodec: operation not supported")

	// ErrNoKnownFormat is returned by the write path when every parser rejects the text.
	ErrNoKnownFormat = errors.New("tonecodec: text matches no known format")

	// ErrTooManyCurves is returned when a curve set has more curves than a 16-bit count holds.
	ErrTooManyCurves = errors.New("tonecodec: too many curves")

	// ErrTooManyPoints is returned when a curve has more points than a 16-bit count holds.
	ErrTooManyPoints = errors.New("tonecodec: too many points")
)

// Parse failure reasons carried by ParseError.
var (
	ErrTooShort     = errors.New("too few lines")
	ErrLabelWidth   = errors.New("line shorter than label")
	ErrTokenCount   = errors.New("wrong number of values")
	ErrInvalidValue = errors.New("value is not a byte")
)

// TruncatedError reports the field that ran past the end of the input.
type TruncatedError struct {
	Field  string
	Offset int
	Len    int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("tonecodec: truncated input: %s at offset %d (input is %d bytes)", e.Field, e.Offset, e.Len)
}

// Is reports whether target is ErrTruncated.
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// ParseError reports where text parsing stopped. Line is 1-based; 0 means the
// failure concerns the text as a whole.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("tonecodec: text syntax error: %v", e.Err)
	case e.Token != "":
		return fmt.Sprintf("tonecodec: text syntax error: line %d: %v: %q", e.Line, e.Err, e.Token)
	default:
		return fmt.Sprintf("tonecodec: text syntax error: line %d: %v", e.Line, e.Err)
	}
}

// Is reports whether target is ErrParseSyntax.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseSyntax
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnreadableError wraps the I/O failure that prevented reading Path.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("tonecodec: cannot read %s: %v", e.Path, e.Err)
}

// Is reports whether target is ErrUnreadable.
func (e *UnreadableError) Is(target error) bool {
	return target == ErrUnreadable
}

func (e *UnreadableError) Unwrap() error { return e.Err }
