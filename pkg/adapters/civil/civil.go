// Package civil provides a calendar backend for plain civil date-times:
// wall-clock values with no attached time zone. Arithmetic runs on the
// proleptic Gregorian calendar.
package civil

import "fmt"

// DateTime is a naive calendar date with a time of day.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Date builds a DateTime at midnight.
func Date(year, month, day int) DateTime {
	return DateTime{Year: year, Month: month, Day: day}
}

// At returns the date with the given time of day.
func (d DateTime) At(hour, minute, sec int) DateTime {
	d.Hour, d.Minute, d.Second = hour, minute, sec
	return d
}

func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Before reports whether d is earlier than o.
func (d DateTime) Before(o DateTime) bool {
	return d.epochSeconds() < o.epochSeconds()
}

func (d DateTime) epochSeconds() int64 {
	days := daysFromCivil(d.Year, d.Month, d.Day)
	return days*86400 + int64(d.Hour)*3600 + int64(d.Minute)*60 + int64(d.Second)
}

// daysFromCivil converts a civil date to days since 1970-01-01.
// Howard Hinnant's algorithm, valid across the whole proleptic calendar.
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
	yoe := int64(y) - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy      // [0, 146096]
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
	doe := z - era*146097                                   // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365  // [0, 399]
	year := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                // [0, 365]
	mp := (5*doy + 2) / 153                                 // [0, 11]
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
