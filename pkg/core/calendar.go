package core

// Calendar is the capability interface any concrete calendar backend must
// satisfy. The engine manipulates instants only through these operations
// and never stores one beyond a single call, so the instant type T stays
// fully opaque.
//
// All implementations must agree observably: the same weekday mapping
// (0 = Monday), and AddMonths clamping the day-of-month to the target
// month's last valid day rather than overflowing into the next month.
type Calendar[T any] interface {
	// Now returns the current instant. The engine itself never calls this;
	// it exists for convenience wrappers that take no explicit base.
	Now() T

	// Components reads the calendar fields of an instant.
	Components(t T) (year, month, day, hour, minute, sec int)

	// Weekday returns the day of the week, 0 = Monday .. 6 = Sunday.
	Weekday(t T) int

	// ZoneOffset returns the instant's UTC offset in seconds east.
	// Backends without a zone concept return 0.
	ZoneOffset(t T) int64

	// FromComponents constructs an instant from calendar fields.
	FromComponents(year, month, day, hour, minute, sec int) (T, error)

	// AddSeconds adds whole seconds.
	AddSeconds(t T, secs int64) T

	// AddDays adds calendar days, preserving the wall-clock time.
	AddDays(t T, days int64) T

	// AddMonths adds calendar months, clamping the day-of-month.
	AddMonths(t T, months int64) T
}

// IsLeapYear reports whether the year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if the month is out of range.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}
