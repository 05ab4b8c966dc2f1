package core

// DateSpec is the date half of a parsed expression, before resolution
// against a base instant. Exactly one concrete form is produced per parse;
// a production never overwrites a field set by an earlier one.
type DateSpec interface {
	dateSpec()
}

// Absolute is a fully specified calendar date: "2018-04-01", "4 July 2017",
// "06/30/17" (after pivoting the short year).
type Absolute struct {
	Year  int
	Month int
	Day   int
}

// Relative is a sequence of interval adjustments applied to the base
// instant in parse order: "3h", "2 days ago", "1 day 2 hours".
type Relative struct {
	Skips []Interval
}

// WeekdayDate names a day of the week, optionally modified: "friday",
// "next mon". Weekday uses the fixed mapping 0 = Monday .. 6 = Sunday.
type WeekdayDate struct {
	Weekday   int
	Direction Direction
}

// MonthDate names a bare month: "apr", "last July". The day defaults to 1.
type MonthDate struct {
	Month     int
	Direction Direction
}

// DayMonthDate is a day and month without a year: "4 July", "8/11".
// The year comes from the base instant, shifted by the direction.
type DayMonthDate struct {
	Day       int
	Month     int
	Direction Direction
}

func (Absolute) dateSpec()     {}
func (Relative) dateSpec()     {}
func (WeekdayDate) dateSpec()  {}
func (MonthDate) dateSpec()    {}
func (DayMonthDate) dateSpec() {}

// TimeSpec is the time half of a parsed expression: "10:30", "8.15pm",
// "08:20:30.123 +04:00". Micros carries fractional seconds; Offset, when
// non-nil, is the UTC offset (seconds east) the wall time was given in.
type TimeSpec struct {
	Hour   int
	Minute int
	Second int
	Micros int
	Offset *int64
}

// WithOffset returns a copy of the spec carrying a UTC offset.
func (ts TimeSpec) WithOffset(secs int64) TimeSpec {
	ts.Offset = &secs
	return ts
}

// DateTimeSpec is the accumulated result of a parse: an optional date spec
// and an optional time spec. At least one is present in a successful parse.
type DateTimeSpec struct {
	Date DateSpec
	Time *TimeSpec
}
