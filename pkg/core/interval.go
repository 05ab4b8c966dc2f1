package core

import "fmt"

// IntervalKind classifies an Interval as second-, day-, or month-valued.
//
// The three kinds are deliberately kept apart: days do not always have the
// same number of seconds (DST), and months do not always have the same
// number of days. The caller decides how to treat each kind.
type IntervalKind int

const (
	IntervalSeconds IntervalKind = iota
	IntervalDays
	IntervalMonths
)

// String returns the unit name for the kind.
func (k IntervalKind) String() string {
	switch k {
	case IntervalSeconds:
		return "seconds"
	case IntervalDays:
		return "days"
	case IntervalMonths:
		return "months"
	}
	return fmt.Sprintf("interval(%d)", k)
}

// Interval is a symbolic duration of exactly one kind. It represents an
// amount of time, not an instant.
type Interval struct {
	Kind   IntervalKind
	Amount int64
}

// Seconds returns a second-valued interval.
func Seconds(n int64) Interval { return Interval{Kind: IntervalSeconds, Amount: n} }

// Days returns a day-valued interval.
func Days(n int64) Interval { return Interval{Kind: IntervalDays, Amount: n} }

// Months returns a month-valued interval.
func Months(n int64) Interval { return Interval{Kind: IntervalMonths, Amount: n} }

// Times scales the interval, e.g. an hour unit times 3.
func (iv Interval) Times(n int64) Interval {
	return Interval{Kind: iv.Kind, Amount: iv.Amount * n}
}

// Neg negates the interval.
func (iv Interval) Neg() Interval {
	return Interval{Kind: iv.Kind, Amount: -iv.Amount}
}

// String formats the interval as "<amount> <unit>".
func (iv Interval) String() string {
	return fmt.Sprintf("%d %s", iv.Amount, iv.Kind)
}
