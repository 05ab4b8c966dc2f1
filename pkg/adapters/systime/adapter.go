// Package systime provides a calendar backend built on the standard
// library's time.Time in a fixed location.
package systime

import (
	"fmt"
	"time"

	"github.com/conradludgate/interim/pkg/core"
)

// Calendar implements core.Calendar for time.Time values.
type Calendar struct {
	loc *time.Location
}

// New creates a calendar operating in the given location.
// If loc is nil the local time zone is used.
func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

// UTC creates a calendar operating in UTC.
func UTC() *Calendar {
	return New(time.UTC)
}

// Location returns the calendar's time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the calendar's location.
func (c *Calendar) Now() time.Time {
	return time.Now().In(c.loc)
}

// Components splits an instant into its wall-clock fields.
func (c *Calendar) Components(t time.Time) (year, month, day, hour, minute, sec int) {
	t = t.In(c.loc)
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return y, int(m), d, hh, mm, ss
}

// Weekday returns the day of week with Monday as 0 and Sunday as 6.
func (c *Calendar) Weekday(t time.Time) int {
	return (int(t.In(c.loc).Weekday()) + 6) % 7
}

// ZoneOffset returns the offset from UTC in seconds at the instant.
func (c *Calendar) ZoneOffset(t time.Time) int64 {
	_, offset := t.In(c.loc).Zone()
	return int64(offset)
}

// FromComponents builds an instant from wall-clock fields. The fields are
// assumed to already hold valid calendar values.
func (c *Calendar) FromComponents(year, month, day, hour, minute, sec int) (time.Time, error) {
	if day > core.DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("no day %d in %s %d", day, time.Month(month), year)
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, c.loc), nil
}

// AddSeconds shifts an instant by n seconds.
func (c *Calendar) AddSeconds(t time.Time, n int64) time.Time {
	return t.Add(time.Duration(n) * time.Second)
}

// AddDays shifts an instant by n calendar days, keeping the wall clock.
func (c *Calendar) AddDays(t time.Time, n int64) time.Time {
	return t.In(c.loc).AddDate(0, 0, int(n))
}

// AddMonths shifts an instant by n months, clamping the day to the target
// month's length. time.Time's AddDate normalizes overflow instead (Jan 31
// plus a month becomes Mar 2 or 3), so the fields are adjusted by hand.
func (c *Calendar) AddMonths(t time.Time, n int64) time.Time {
	year, month, day, hour, minute, sec := c.Components(t)

	months := int64(year)*12 + int64(month-1) + n
	year = int(months / 12)
	month = int(months%12) + 1
	if month < 1 {
		// floor division for dates before year zero
		year--
		month += 12
	}
	if max := core.DaysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, c.loc)
}
