package core

// Resolve turns a parsed spec into a concrete instant relative to base.
// Explicit fields are applied through the Calendar capability; unset fields
// inherit the base instant's values per the rules of each spec form.
// Fractional seconds survive parsing but are dropped here: the capability
// set works in whole seconds.
func Resolve[T any](cal Calendar[T], spec DateTimeSpec, base T, dialect Dialect) (T, error) {
	var zero T

	if spec.Date == nil {
		if spec.Time == nil {
			return zero, &DateError{Kind: ErrMissingTime}
		}
		// Time only: today's date at the given time.
		y, mo, d, _, _, _ := cal.Components(base)
		return construct(cal, y, mo, d, *spec.Time)
	}

	switch ds := spec.Date.(type) {
	case Absolute:
		if ds.Month < 1 || ds.Month > 12 {
			return zero, OutOfRange("month", ds.Month)
		}
		if ds.Day < 1 || ds.Day > DaysInMonth(ds.Year, ds.Month) {
			return zero, OutOfRange("day", ds.Day)
		}
		return construct(cal, ds.Year, ds.Month, ds.Day, timeOrMidnight(spec.Time))
	case Relative:
		return resolveRelative(cal, ds, base, spec.Time)
	case WeekdayDate:
		return resolveWeekday(cal, ds, base, spec.Time, dialect)
	case MonthDate:
		return resolveDayMonth(cal, DayMonthDate{Day: 1, Month: ds.Month, Direction: ds.Direction}, base, spec.Time)
	case DayMonthDate:
		return resolveDayMonth(cal, ds, base, spec.Time)
	}
	return zero, &DateError{Kind: ErrMissingDate}
}

// resolveRelative applies interval adjustments sequentially in parse order.
// Second-valued adjustments never touch the clock fields; day-valued ones
// preserve the base time unless an explicit time was parsed; month-valued
// ones default the time to midnight.
func resolveRelative[T any](cal Calendar[T], ds Relative, base T, tsp *TimeSpec) (T, error) {
	t := base
	hasDays, hasMonths := false, false
	for _, iv := range ds.Skips {
		switch iv.Kind {
		case IntervalSeconds:
			t = cal.AddSeconds(t, iv.Amount)
		case IntervalDays:
			t = cal.AddDays(t, iv.Amount)
			hasDays = true
		case IntervalMonths:
			t = cal.AddMonths(t, iv.Amount)
			hasMonths = true
		}
	}

	switch {
	case tsp != nil && (hasDays || hasMonths):
		y, mo, d, _, _, _ := cal.Components(t)
		return construct(cal, y, mo, d, *tsp)
	case tsp == nil && hasMonths:
		y, mo, d, _, _, _ := cal.Components(t)
		return construct(cal, y, mo, d, TimeSpec{})
	default:
		return t, nil
	}
}

// resolveWeekday finds the occurrence of a weekday relative to base.
// The plain form means the coming occurrence. An explicit "next" is
// dialect-sensitive: in the US it equals the plain form, elsewhere it adds
// a week. Same-day ties break on the parsed time against the base's
// time-of-day.
func resolveWeekday[T any](cal Calendar[T], ds WeekdayDate, base T, tsp *TimeSpec, dialect Dialect) (T, error) {
	ts := timeOrMidnight(tsp)

	direct := ds.Direction
	extraWeek := false
	switch {
	case direct == Here:
		direct = Next
	case direct == Next && dialect == DialectUK:
		extraWeek = true
	}

	_, _, _, bh, bm, bs := cal.Components(base)
	diff := int64(ds.Weekday - cal.Weekday(base))
	t := cal.AddDays(base, diff)
	if diff != 0 {
		if diff < 0 && direct == Next {
			t = cal.AddDays(t, 7)
		}
		if diff > 0 && direct == Last {
			t = cal.AddDays(t, -7)
		}
	} else {
		// Same day: the parsed time decides which week we land in.
		c := cmpClock(ts.Hour, ts.Minute, ts.Second, bh, bm, bs)
		if c < 0 && direct == Next {
			t = cal.AddDays(t, 7)
		}
		if c > 0 && direct == Last {
			t = cal.AddDays(t, -7)
		}
	}
	if extraWeek {
		t = cal.AddDays(t, 7)
	}

	y, mo, d, _, _, _ := cal.Components(t)
	return construct(cal, y, mo, d, ts)
}

// resolveDayMonth resolves a day/month in the base year, shifting the year
// by one when an explicit next/last falls on the wrong side of the base.
func resolveDayMonth[T any](cal Calendar[T], ds DayMonthDate, base T, tsp *TimeSpec) (T, error) {
	var zero T
	if ds.Month < 1 || ds.Month > 12 {
		return zero, OutOfRange("month", ds.Month)
	}

	by, bmo, bd, _, _, _ := cal.Components(base)
	year := by
	switch c := cmpDate(year, ds.Month, ds.Day, by, bmo, bd); {
	case c > 0 && ds.Direction == Last:
		year--
	case c < 0 && ds.Direction == Next:
		year++
	}

	if ds.Day < 1 || ds.Day > DaysInMonth(year, ds.Month) {
		return zero, OutOfRange("day", ds.Day)
	}
	return construct(cal, year, ds.Month, ds.Day, timeOrMidnight(tsp))
}

// construct builds the final instant, applying a parsed UTC offset when
// present: the wall time is interpreted at that offset and re-expressed in
// the backend's zone. Clock fields are validated before any backend call.
func construct[T any](cal Calendar[T], y, mo, d int, ts TimeSpec) (T, error) {
	var zero T
	if ts.Hour < 0 || ts.Hour > 23 {
		return zero, OutOfRange("hour", ts.Hour)
	}
	if ts.Minute < 0 || ts.Minute > 59 {
		return zero, OutOfRange("minute", ts.Minute)
	}
	if ts.Second < 0 || ts.Second > 59 {
		return zero, OutOfRange("second", ts.Second)
	}

	t, err := cal.FromComponents(y, mo, d, ts.Hour, ts.Minute, ts.Second)
	if err != nil {
		return zero, &DateError{Kind: ErrBackendConstruction, Err: err}
	}
	if ts.Offset != nil {
		t = cal.AddSeconds(t, cal.ZoneOffset(t)-*ts.Offset)
	}
	return t, nil
}

func timeOrMidnight(tsp *TimeSpec) TimeSpec {
	if tsp != nil {
		return *tsp
	}
	return TimeSpec{}
}

func cmpDate(y1, m1, d1, y2, m2, d2 int) int {
	if c := cmpInt(y1, y2); c != 0 {
		return c
	}
	if c := cmpInt(m1, m2); c != 0 {
		return c
	}
	return cmpInt(d1, d2)
}

func cmpClock(h1, m1, s1, h2, m2, s2 int) int {
	if c := cmpInt(h1, h2); c != 0 {
		return c
	}
	if c := cmpInt(m1, m2); c != 0 {
		return c
	}
	return cmpInt(s1, s2)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
