// Package epoch provides a calendar backend for plain Unix timestamps:
// instants held as int64 seconds, viewed through a fixed UTC offset.
package epoch

import (
	"fmt"
	"time"

	"github.com/conradludgate/interim/pkg/core"
)

// Seconds is an instant expressed as Unix seconds.
type Seconds int64

// Unix returns the raw timestamp.
func (s Seconds) Unix() int64 {
	return int64(s)
}

// Calendar implements core.Calendar for Seconds, interpreting wall-clock
// fields at a fixed offset east of UTC.
type Calendar struct {
	offset int64 // seconds east of UTC
}

// New creates a calendar with the given fixed offset in seconds.
func New(offset int64) Calendar {
	return Calendar{offset: offset}
}

// UTC creates a calendar with a zero offset.
func UTC() Calendar {
	return New(0)
}

// Now returns the current instant.
func (Calendar) Now() Seconds {
	return Seconds(time.Now().Unix())
}

// Components splits an instant into wall-clock fields at the calendar's
// offset.
func (c Calendar) Components(t Seconds) (year, month, day, hour, minute, sec int) {
	local := int64(t) + c.offset
	days, rem := floorDiv(local, 86400)
	year, month, day = civilFromDays(days)
	return year, month, day, int(rem / 3600), int(rem / 60 % 60), int(rem % 60)
}

// Weekday returns the day of week with Monday as 0 and Sunday as 6.
func (c Calendar) Weekday(t Seconds) int {
	days, _ := floorDiv(int64(t)+c.offset, 86400)
	// 1970-01-01 was a Thursday, index 3
	wd := (days + 3) % 7
	if wd < 0 {
		wd += 7
	}
	return int(wd)
}

// ZoneOffset returns the calendar's fixed offset in seconds.
func (c Calendar) ZoneOffset(Seconds) int64 {
	return c.offset
}

// FromComponents builds the instant whose wall clock at the calendar's
// offset reads the given fields.
func (c Calendar) FromComponents(year, month, day, hour, minute, sec int) (Seconds, error) {
	if day > core.DaysInMonth(year, month) {
		return 0, fmt.Errorf("no day %d in month %d of %d", day, month, year)
	}
	local := daysFromCivil(year, month, day)*86400 +
		int64(hour)*3600 + int64(minute)*60 + int64(sec)
	return Seconds(local - c.offset), nil
}

// AddSeconds shifts an instant by n seconds.
func (Calendar) AddSeconds(t Seconds, n int64) Seconds {
	return t + Seconds(n)
}

// AddDays shifts an instant by n days. With a fixed offset a day is
// always exactly 86400 seconds.
func (Calendar) AddDays(t Seconds, n int64) Seconds {
	return t + Seconds(n*86400)
}

// AddMonths shifts an instant by n months, clamping the day to the
// target month's length.
func (c Calendar) AddMonths(t Seconds, n int64) Seconds {
	year, month, day, hour, minute, sec := c.Components(t)

	months := int64(year)*12 + int64(month-1) + n
	y := months / 12
	m := months%12 + 1
	if m < 1 {
		y--
		m += 12
	}
	if max := core.DaysInMonth(int(y), int(m)); day > max {
		day = max
	}
	local := daysFromCivil(int(y), int(m), day)*86400 +
		int64(hour)*3600 + int64(minute)*60 + int64(sec)
	return Seconds(local - c.offset)
}

// floorDiv divides rounding toward negative infinity, returning the
// quotient and a non-negative remainder.
func floorDiv(a, b int64) (int64, int64) {
	q := a / b
	r := a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// daysFromCivil converts a civil date to days since 1970-01-01.
// Howard Hinnant's algorithm.
func daysFromCivil(y, m, d int) int64 {
	if m <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = int64(y) / 400
	} else {
		era = (int64(y) - 399) / 400
	}
	yoe := int64(y) - era*400
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays converts days since 1970-01-01 back to a civil date.
func civilFromDays(z int64) (y, m, d int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	year := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		year++
	}
	return int(year), m, d
}
