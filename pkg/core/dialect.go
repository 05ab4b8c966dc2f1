package core

import "fmt"

// Dialect selects the regional disambiguation rules for parsing.
//
// It decides two things: the field order of slash dates ("04/01" is the
// 1st of April in the US, the 4th of January otherwise), and the meaning
// of "next <weekday>" (in the US it is the same as the plain form; in the
// UK it is the occurrence in the following week).
type Dialect int

const (
	// DialectUK reads slash dates day-first and "next friday" as next week's Friday.
	DialectUK Dialect = iota
	// DialectUS reads slash dates month-first and "next friday" as the coming Friday.
	DialectUS
)

// String returns the dialect identifier.
func (d Dialect) String() string {
	switch d {
	case DialectUK:
		return "uk"
	case DialectUS:
		return "us"
	}
	return fmt.Sprintf("dialect(%d)", d)
}

// ParseDialect resolves a dialect identifier ("uk" or "us").
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "uk", "UK", "Uk":
		return DialectUK, nil
	case "us", "US", "Us":
		return DialectUS, nil
	}
	return DialectUK, fmt.Errorf("unknown dialect %q (want uk or us)", name)
}

// Direction is the next/last/this modifier on named dates,
// e.g. "next friday" or "last 4 july".
type Direction int

const (
	// Here is the unmodified form ("friday", "this friday").
	Here Direction = iota
	// Next is an explicit "next" prefix.
	Next
	// Last is an explicit "last" prefix.
	Last
)

// String returns the modifier keyword.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return "this"
	}
}
