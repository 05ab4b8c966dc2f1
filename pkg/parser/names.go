package parser

import "github.com/conradludgate/interim/pkg/core"

// Name vocabulary. Only the first three letters of month, weekday, and unit
// names are significant ("febr", "Thurs" and "minu" all match), while the
// single-letter shorthands s/m/h/d/w/y are accepted for units. The tables
// are immutable and shared by all parses.

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"may": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// 0 = Monday, matching the Calendar weekday mapping.
var weekdayNames = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3,
	"fri": 4, "sat": 5, "sun": 6,
}

var unitNames = map[string]core.Interval{
	"sec": core.Seconds(1), "s": core.Seconds(1),
	"min": core.Seconds(60), "m": core.Seconds(60),
	"hou": core.Seconds(3600), "h": core.Seconds(3600),
	"day": core.Days(1), "d": core.Days(1),
	"wee": core.Days(7), "w": core.Days(7),
	"mon": core.Months(1),
	"yea": core.Months(12), "y": core.Months(12),
}

// monthName resolves a word to a month number, 1-12.
func monthName(word string) (int, bool) {
	if len(word) < 3 {
		return 0, false
	}
	m, ok := monthNames[word[:3]]
	return m, ok
}

// weekdayName resolves a word to a weekday index, 0 = Monday.
func weekdayName(word string) (int, bool) {
	if len(word) < 3 {
		return 0, false
	}
	wd, ok := weekdayNames[word[:3]]
	return wd, ok
}

// timeUnit resolves a word to the interval one unit represents.
func timeUnit(word string) (core.Interval, bool) {
	if len(word) > 3 {
		word = word[:3]
	}
	iv, ok := unitNames[word]
	return iv, ok
}
