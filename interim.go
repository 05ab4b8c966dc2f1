// Package interim parses informal English dates and durations.
//
// It understands absolute dates ("2018-04-01", "April 1, 2017", "20/04/18"),
// named dates relative to a base instant ("friday", "next June", "last 8
// March"), relative adjustments ("2 days ago", "1 day 2 hours"), and times
// in formal and informal notation ("16:30:45.273+02:00", "7.30pm").
//
// Parsed expressions resolve against a pluggable calendar backend; the
// adapters under pkg/adapters cover time.Time, civil date-times and raw
// Unix timestamps.
package interim

import (
	"github.com/conradludgate/interim/pkg/core"
	"github.com/conradludgate/interim/pkg/parser"
)

// Re-exported so most callers only import this package.
type (
	// Dialect selects the ambiguous-form conventions to parse with.
	Dialect = core.Dialect
	// Interval is a duration in one of the three calendar grains.
	Interval = core.Interval
	// DateError is the error type returned by every entry point.
	DateError = core.DateError
	// Calendar is the backend capability dates resolve through.
	Calendar[T any] = core.Calendar[T]
)

const (
	DialectUK = core.DialectUK
	DialectUS = core.DialectUS
)

// ParseDateString parses text and resolves it against base using the given
// calendar backend and dialect.
func ParseDateString[T any](cal core.Calendar[T], text string, base T, dialect core.Dialect) (T, error) {
	var zero T
	spec, err := parser.Parse(text, dialect)
	if err != nil {
		return zero, err
	}
	return core.Resolve[T](cal, spec, base, dialect)
}

// ParseDuration parses text as a plain duration, such as "2 hours" or
// "3 months ago". The expression must be purely relative: absolute or
// named dates and times of day are rejected, and all components must
// share a grain so the result is a single unambiguous interval.
func ParseDuration(text string) (core.Interval, error) {
	spec, err := parser.Parse(text, core.DialectUK)
	if err != nil {
		return core.Interval{}, err
	}
	if spec.Time != nil {
		return core.Interval{}, &core.DateError{Kind: core.ErrUnexpectedTime}
	}

	switch ds := spec.Date.(type) {
	case nil:
		return core.Interval{}, &core.DateError{Kind: core.ErrMissingDate}
	case core.Relative:
		return sumSkips(ds.Skips)
	case core.Absolute:
		return core.Interval{}, &core.DateError{Kind: core.ErrUnexpectedAbsoluteDate}
	default:
		return core.Interval{}, &core.DateError{Kind: core.ErrUnexpectedDate}
	}
}

// sumSkips folds interval components into one value. Components of
// different grains cannot be combined losslessly (a month is not a fixed
// number of days), so mixing them is an error.
func sumSkips(skips []core.Interval) (core.Interval, error) {
	if len(skips) == 0 {
		return core.Interval{}, &core.DateError{Kind: core.ErrMissingDate}
	}
	total := skips[0]
	for _, iv := range skips[1:] {
		if iv.Kind != total.Kind {
			return core.Interval{}, &core.DateError{Kind: core.ErrMixedInterval}
		}
		total.Amount += iv.Amount
	}
	return total, nil
}
