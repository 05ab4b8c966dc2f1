package core

import (
	"fmt"

	"github.com/conradludgate/interim/pkg/token"
)

// ErrorKind classifies a DateError. The taxonomy is flat and exhaustive:
// a parse either matches the grammar or fails with exactly one of these.
type ErrorKind int

const (
	// ErrUnexpectedToken: a token that no production can consume at its position.
	ErrUnexpectedToken ErrorKind = iota
	// ErrEndOfInput: the input ended where a production required more tokens.
	ErrEndOfInput
	// ErrEmptyInput: the input held no tokens at all.
	ErrEmptyInput
	// ErrOutOfRange: a syntactically plausible value outside its calendar-valid
	// range, e.g. month 13 or hour 25. Reported before any backend call.
	ErrOutOfRange
	// ErrMissingDate: no date could be derived from the input.
	ErrMissingDate
	// ErrMissingTime: no time could be derived from the input.
	ErrMissingTime
	// ErrUnexpectedDate: a duration parse found a named date ("tuesday").
	ErrUnexpectedDate
	// ErrUnexpectedAbsoluteDate: a duration parse found an exact date.
	ErrUnexpectedAbsoluteDate
	// ErrUnexpectedTime: a duration parse found a time-of-day.
	ErrUnexpectedTime
	// ErrMixedInterval: a duration mixing second-, day- and month-valued
	// units, which a single Interval cannot represent.
	ErrMixedInterval
	// ErrBackendConstruction: the calendar backend rejected the components.
	ErrBackendConstruction
)

// DateError is the classified error returned by every entry point.
// Only the fields relevant to the Kind are populated.
type DateError struct {
	Kind     ErrorKind
	Expected string     // ErrUnexpectedToken, ErrEndOfInput
	Span     token.Span // ErrUnexpectedToken
	Field    string     // ErrOutOfRange
	Value    int        // ErrOutOfRange
	Err      error      // ErrBackendConstruction
}

func (e *DateError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("expected %s at position %s", e.Expected, e.Span)
	case ErrEndOfInput:
		return fmt.Sprintf("expected %s at the end of the input", e.Expected)
	case ErrEmptyInput:
		return "empty input"
	case ErrOutOfRange:
		return fmt.Sprintf("%s %d is out of range", e.Field, e.Value)
	case ErrMissingDate:
		return "date could not be parsed from input"
	case ErrMissingTime:
		return "time could not be parsed from input"
	case ErrUnexpectedDate:
		return "expected relative date, found a named date"
	case ErrUnexpectedAbsoluteDate:
		return "expected relative date, found an exact date"
	case ErrUnexpectedTime:
		return "expected duration, found time"
	case ErrMixedInterval:
		return "duration mixes second, day and month units"
	case ErrBackendConstruction:
		return fmt.Sprintf("calendar backend rejected components: %v", e.Err)
	}
	return fmt.Sprintf("date error (%d)", e.Kind)
}

// Unwrap exposes the backend error for ErrBackendConstruction.
func (e *DateError) Unwrap() error {
	return e.Err
}

// Is matches two DateErrors by kind, so callers can test
// errors.Is(err, &DateError{Kind: ErrOutOfRange}).
func (e *DateError) Is(target error) bool {
	t, ok := target.(*DateError)
	return ok && t.Kind == e.Kind
}

// UnexpectedToken builds an ErrUnexpectedToken error.
func UnexpectedToken(expected string, span token.Span) *DateError {
	return &DateError{Kind: ErrUnexpectedToken, Expected: expected, Span: span}
}

// EndOfInput builds an ErrEndOfInput error.
func EndOfInput(expected string) *DateError {
	return &DateError{Kind: ErrEndOfInput, Expected: expected}
}

// OutOfRange builds an ErrOutOfRange error for a named field.
func OutOfRange(field string, value int) *DateError {
	return &DateError{Kind: ErrOutOfRange, Field: field, Value: value}
}

// KindOf returns the kind of a DateError, or ok=false for any other error.
func KindOf(err error) (ErrorKind, bool) {
	if de, ok := err.(*DateError); ok {
		return de.Kind, true
	}
	return 0, false
}
