package civil

import (
	"fmt"
	"time"

	"github.com/conradludgate/interim/pkg/core"
)

// Calendar implements core.Calendar for DateTime values.
type Calendar struct{}

// New creates a civil calendar.
func New() Calendar {
	return Calendar{}
}

// Now returns the current local wall clock as a civil date-time.
func (Calendar) Now() DateTime {
	t := time.Now()
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return Date(y, int(m), d).At(hh, mm, ss)
}

// Components splits a date-time into its fields.
func (Calendar) Components(t DateTime) (year, month, day, hour, minute, sec int) {
	return t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second
}

// Weekday returns the day of week with Monday as 0 and Sunday as 6.
func (Calendar) Weekday(t DateTime) int {
	days := daysFromCivil(t.Year, t.Month, t.Day)
	// 1970-01-01 was a Thursday, index 3
	wd := (days + 3) % 7
	if wd < 0 {
		wd += 7
	}
	return int(wd)
}

// ZoneOffset returns 0: civil date-times carry no time zone.
func (Calendar) ZoneOffset(DateTime) int64 {
	return 0
}

// FromComponents builds a date-time from its fields.
func (Calendar) FromComponents(year, month, day, hour, minute, sec int) (DateTime, error) {
	if day > core.DaysInMonth(year, month) {
		return DateTime{}, fmt.Errorf("no day %d in month %d of %d", day, month, year)
	}
	return Date(year, month, day).At(hour, minute, sec), nil
}

// AddSeconds shifts a date-time by n seconds, rolling over field
// boundaries as needed.
func (Calendar) AddSeconds(t DateTime, n int64) DateTime {
	total := t.epochSeconds() + n
	days := total / 86400
	rem := total % 86400
	if rem < 0 {
		days--
		rem += 86400
	}
	y, m, d := civilFromDays(days)
	return Date(y, m, d).At(int(rem/3600), int(rem/60%60), int(rem%60))
}

// AddDays shifts a date-time by n days, keeping the time of day.
func (Calendar) AddDays(t DateTime, n int64) DateTime {
	y, m, d := civilFromDays(daysFromCivil(t.Year, t.Month, t.Day) + n)
	return Date(y, m, d).At(t.Hour, t.Minute, t.Second)
}

// AddMonths shifts a date-time by n months, clamping the day to the
// target month's length.
func (Calendar) AddMonths(t DateTime, n int64) DateTime {
	months := int64(t.Year)*12 + int64(t.Month-1) + n
	year := months / 12
	month := months%12 + 1
	if month < 1 {
		year--
		month += 12
	}
	day := t.Day
	if max := core.DaysInMonth(int(year), int(month)); day > max {
		day = max
	}
	return Date(int(year), int(month), day).At(t.Hour, t.Minute, t.Second)
}
