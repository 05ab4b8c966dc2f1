// Package parser turns informal English date expressions into the specs
// defined by pkg/core.
//
// # Grammar Overview
//
// The parser is a recursive descent parser with one token of lookahead.
// Date productions are tried in priority order against the current cursor
// position; the first production matching wins and consumes its tokens.
// A trailing time may follow any date form. The whole stream must be
// consumed for the parse to succeed.
//
//	expression → [date] [time]
//	date       → iso | slash | month-name | weekday | bare-month
//	           | intervals | keyword | bare-year
//	iso        → NUMBER "-" NUMBER "-" NUMBER
//	slash      → NUMBER "/" NUMBER ["/" NUMBER]          (dialect field order)
//	month-name → NUMBER month [NUMBER] | month [NUMBER ["," NUMBER]]
//	weekday    → [direction] weekday-name
//	intervals  → ["-"] NUMBER unit {NUMBER unit} ["ago"]
//	keyword    → "now" | "today" | "yesterday" | "tomorrow"
//	time       → ["T"] (formal | informal)
//	formal     → NUMBER ":" NUMBER [":" NUMBER ["." NUMBER]] [zone | AMPM]
//	informal   → NUMBER ["." NUMBER] [AMPM]
//	zone       → "Z" | ("+"|"-") NUMBER [":" NUMBER]
//
// See each production method for the detailed rules of that form.
package parser

import (
	"strconv"

	"github.com/conradludgate/interim/pkg/core"
	"github.com/conradludgate/interim/pkg/token"
)

// timeKind records which time form a lookahead number belongs to, when the
// date productions run into the start of a time.
type timeKind int

const (
	timeFormal   timeKind = iota // 10:30
	timeInformal                 // 10.30
	timeAm                       // 10am
	timePm                       // 10pm
	timeUnknown                  // separator not yet seen
)

type pendingTime struct {
	hour int
	kind timeKind
}

// DateParser parses one date expression. Create a fresh parser per input.
type DateParser struct {
	lex  *Lexer
	tok  token.Token // current token
	peek token.Token // lookahead token

	// set when a date production consumed the hour of a trailing time
	maybeTime *pendingTime
}

// New creates a parser for the given text.
func New(text string) *DateParser {
	p := &DateParser{lex: NewLexer(text)}
	// read two tokens to initialize current and peek
	p.next()
	p.next()
	return p
}

// Parse runs the full pipeline on text and returns the accumulated spec.
func Parse(text string, dialect core.Dialect) (core.DateTimeSpec, error) {
	return New(text).Parse(dialect)
}

// Parse consumes the whole token stream: an optional date, an optional
// trailing time, then end of input.
func (p *DateParser) Parse(dialect core.Dialect) (core.DateTimeSpec, error) {
	date, err := p.parseDate(dialect)
	if err != nil {
		return core.DateTimeSpec{}, err
	}
	ts, err := p.parseTime()
	if err != nil {
		return core.DateTimeSpec{}, err
	}
	if !p.check(token.EOF) {
		return core.DateTimeSpec{}, core.UnexpectedToken("end of input", p.tok.Span())
	}
	return core.DateTimeSpec{Date: date, Time: ts}, nil
}

// ---------- Token Helpers ----------

// next advances to the next token.
func (p *DateParser) next() {
	p.tok = p.peek
	p.peek = p.lex.Next()
}

// check returns true if the current token is of the given type.
func (p *DateParser) check(t token.Type) bool {
	return p.tok.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *DateParser) match(t token.Type) bool {
	if p.check(t) {
		p.next()
		return true
	}
	return false
}

// number consumes the current token as a number value.
func (p *DateParser) number(expected string) (int, error) {
	if !p.check(token.NUMBER) {
		if p.check(token.EOF) {
			return 0, core.EndOfInput(expected)
		}
		return 0, core.UnexpectedToken(expected, p.tok.Span())
	}
	n, err := strconv.Atoi(p.tok.Literal)
	if err != nil {
		return 0, core.OutOfRange(expected, 0)
	}
	p.next()
	return n, nil
}

// ---------- Date Productions ----------

// parseDate tries the date productions in priority order. It returns a nil
// spec without error when the input opens with a time instead of a date.
func (p *DateParser) parseDate(dialect core.Dialect) (core.DateSpec, error) {
	sign := false
	direct := core.Here
	hasDirect := false

	if p.check(token.DASH) {
		sign = true
		p.next()
	} else if p.check(token.IDENT) {
		switch p.tok.Literal {
		case "now", "today":
			p.next()
			return core.Relative{Skips: []core.Interval{core.Days(0)}}, nil
		case "yesterday":
			p.next()
			return core.Relative{Skips: []core.Interval{core.Days(-1)}}, nil
		case "tomorrow":
			p.next()
			return core.Relative{Skips: []core.Interval{core.Days(1)}}, nil
		case "next":
			direct, hasDirect = core.Next, true
			p.next()
		case "last":
			direct, hasDirect = core.Last, true
			p.next()
		case "this":
			direct, hasDirect = core.Here, true
			p.next()
		}
	}

	switch p.tok.Type {
	case token.EOF:
		if sign || hasDirect {
			return nil, core.EndOfInput("date")
		}
		return nil, &core.DateError{Kind: core.ErrEmptyInput}
	case token.COLON, token.COMMA, token.DASH, token.DOT, token.SLASH, token.PLUS:
		// none of these characters begin a date or duration
		return nil, &core.DateError{Kind: core.ErrMissingDate}
	case token.AMPM:
		return nil, core.UnexpectedToken("unsupported identifier", p.tok.Span())
	case token.IDENT:
		if sign {
			// '-June' doesn't make sense
			return nil, core.UnexpectedToken("number", p.tok.Span())
		}
		return p.namedDate(direct)
	default: // token.NUMBER
		return p.numericDate(dialect, sign, direct, hasDirect)
	}
}

// namedDate handles productions opening with a word:
//
//	{month} [{day} [, {year}]]
//	{weekday}
//	{unit}            (with a direction prefix: "next year", "last week")
func (p *DateParser) namedDate(direct core.Direction) (core.DateSpec, error) {
	word := p.tok
	if month, ok := monthName(word.Literal); ok {
		p.next()
		if !p.check(token.NUMBER) {
			// only a month name to work with
			return core.MonthDate{Month: month, Direction: direct}, nil
		}
		day, err := p.number("day")
		if err != nil {
			return nil, err
		}
		if !p.match(token.COMMA) {
			// no comma, a time component may still follow
			return core.DayMonthDate{Day: day, Month: month, Direction: direct}, nil
		}
		year, err := p.number("year")
		if err != nil {
			return nil, err
		}
		return core.Absolute{Year: year, Month: month, Day: day}, nil
	}
	if wd, ok := weekdayName(word.Literal); ok {
		p.next()
		return core.WeekdayDate{Weekday: wd, Direction: direct}, nil
	}
	if unit, ok := timeUnit(word.Literal); ok {
		p.next()
		var n int64
		switch direct {
		case core.Last:
			n = -1
		case core.Next:
			n = 1
		}
		return core.Relative{Skips: []core.Interval{unit.Times(n)}}, nil
	}
	return nil, core.UnexpectedToken("unsupported identifier", word.Span())
}

// numericDate handles productions opening with a number:
//
//	{year}-{month}-{day}
//	{day}/{month} or {month}/{day}, optionally /{year}
//	{day} {month} [{year}]
//	{n} {unit} ...
//	{hour}:{min}, {hour}.{min}, {hour}am (recorded for the time parser)
//	{year}            (a lone 4-digit number)
func (p *DateParser) numericDate(dialect core.Dialect, sign bool, direct core.Direction, hasDirect bool) (core.DateSpec, error) {
	n, err := p.number("number")
	if err != nil {
		return nil, err
	}

	switch p.tok.Type {
	case token.COMMA, token.PLUS, token.NUMBER:
		return nil, core.UnexpectedToken("date", p.tok.Span())
	case token.EOF:
		if sign {
			return nil, core.EndOfInput("duration")
		}
		if hasDirect {
			return nil, core.EndOfInput("day or month name")
		}
		// no extra tokens, this is just a year
		return core.Absolute{Year: n, Month: 1, Day: 1}, nil
	case token.COLON:
		if hasDirect {
			return nil, core.EndOfInput("day or month name")
		}
		p.maybeTime = &pendingTime{hour: n, kind: timeFormal}
		p.next()
		return nil, nil
	case token.DOT:
		if hasDirect {
			return nil, core.EndOfInput("day or month name")
		}
		p.maybeTime = &pendingTime{hour: n, kind: timeInformal}
		p.next()
		return nil, nil
	case token.AMPM:
		kind := timeAm
		if p.tok.Literal == "pm" {
			kind = timePm
		}
		p.maybeTime = &pendingTime{hour: n, kind: kind}
		p.next()
		return nil, nil
	case token.DASH:
		if hasDirect {
			return nil, core.EndOfInput("day or month name")
		}
		p.next()
		return p.isoDate(n)
	case token.SLASH:
		p.next()
		return p.slashDate(n, dialect, direct)
	default: // token.IDENT
		return p.numberWord(n, sign, direct)
	}
}

// isoDate finishes YYYY-MM-DD after the year and first dash were consumed.
func (p *DateParser) isoDate(year int) (core.DateSpec, error) {
	month, err := p.number("month")
	if err != nil {
		return nil, err
	}
	if !p.check(token.DASH) {
		if p.check(token.EOF) {
			return nil, core.EndOfInput("'-'")
		}
		return nil, core.UnexpectedToken("'-'", p.tok.Span())
	}
	p.next()
	day, err := p.number("day")
	if err != nil {
		return nil, err
	}
	return core.Absolute{Year: year, Month: month, Day: day}, nil
}

// slashDate finishes a slash/dot date after the first number and slash were
// consumed. The dialect picks the field order of the first two numbers:
//
//	US: mm/dd[/yy] or mm/dd[/yyyy]
//	UK: dd/mm[/yy] or dd/mm[/yyyy]
//
// A present third number is always the year and follows the pivot rule.
func (p *DateParser) slashDate(first int, dialect core.Dialect, direct core.Direction) (core.DateSpec, error) {
	second, err := p.number("number")
	if err != nil {
		return nil, err
	}
	day, month := first, second
	if dialect == core.DialectUS {
		day, month = second, first
	}

	if !p.match(token.SLASH) {
		return core.DayMonthDate{Day: day, Month: month, Direction: direct}, nil
	}

	yearTok := p.tok
	year, err := p.number("year")
	if err != nil {
		return nil, err
	}
	if yearTok.Digits() <= 2 {
		year = pivotYear(year)
	}
	return core.Absolute{Year: year, Month: month, Day: day}, nil
}

// pivotYear maps a short year to a 4-digit one: short dates pivot between
// 1940 and 2040.
func pivotYear(y int) int {
	if y <= 40 {
		return 2000 + y
	}
	return 1900 + y
}

// numberWord handles a number followed by a word: a day-month form
// ("4 July [2017]") or one or more interval components ("2 days",
// "1 day 2 hours ago").
func (p *DateParser) numberWord(n int, sign bool, direct core.Direction) (core.DateSpec, error) {
	word := p.tok
	if month, ok := monthName(word.Literal); ok {
		p.next()
		if p.check(token.NUMBER) {
			year, err := p.number("year")
			if err != nil {
				return nil, err
			}
			return core.Absolute{Year: year, Month: month, Day: n}, nil
		}
		return core.DayMonthDate{Day: n, Month: month, Direction: direct}, nil
	}
	if unit, ok := timeUnit(word.Literal); ok {
		p.next()
		return p.intervalSequence(unit.Times(int64(n)), sign)
	}
	return nil, core.UnexpectedToken("month or time unit", word.Span())
}

// intervalSequence accumulates interval components after the first one.
// Each is an independent adjustment applied in parse order. A trailing
// "ago" (or a leading '-') negates every component. A number that is not
// followed by a unit word starts the trailing time instead.
func (p *DateParser) intervalSequence(first core.Interval, sign bool) (core.DateSpec, error) {
	if sign {
		// '-2 days': nothing else to consume here
		return core.Relative{Skips: []core.Interval{first.Neg()}}, nil
	}

	skips := []core.Interval{first}
	for p.check(token.NUMBER) {
		if unit, ok := timeUnit(p.peek.Literal); ok && p.peek.Type == token.IDENT {
			n, err := p.number("number")
			if err != nil {
				return nil, err
			}
			p.next() // the unit word
			skips = append(skips, unit.Times(int64(n)))
			continue
		}
		// hour of a trailing time, separator not yet seen
		h, err := p.number("number")
		if err != nil {
			return nil, err
		}
		p.maybeTime = &pendingTime{hour: h, kind: timeUnknown}
		break
	}

	if p.check(token.IDENT) {
		if p.tok.Literal != "ago" {
			return nil, core.UnexpectedToken("'ago'", p.tok.Span())
		}
		p.next()
		for i := range skips {
			skips[i] = skips[i].Neg()
		}
	}
	return core.Relative{Skips: skips}, nil
}

// ---------- Time Productions ----------

// parseTime parses the trailing time-of-day, if any. The date productions
// may have already consumed the hour and recorded how the time looked.
func (p *DateParser) parseTime() (*core.TimeSpec, error) {
	if mt := p.maybeTime; mt != nil {
		switch mt.kind {
		case timeFormal:
			return p.formalTime(mt.hour)
		case timeInformal:
			return p.informalTime(mt.hour)
		case timeAm:
			return twelveHour(mt.hour, 0, false)
		case timePm:
			return twelveHour(mt.hour, 0, true)
		default: // timeUnknown
			switch {
			case p.match(token.COLON):
				return p.formalTime(mt.hour)
			case p.match(token.DOT):
				return p.informalTime(mt.hour)
			case p.check(token.AMPM):
				pm := p.tok.Literal == "pm"
				p.next()
				return twelveHour(mt.hour, 0, pm)
			case p.check(token.EOF):
				return nil, core.EndOfInput("':' or '.'")
			default:
				return nil, core.UnexpectedToken("':' or '.'", p.tok.Span())
			}
		}
	}

	// optional 'T' time separator
	if p.check(token.IDENT) && p.tok.Literal == "t" {
		p.next()
	}
	if p.check(token.EOF) {
		return nil, nil
	}

	// we're parsing times, so we should expect an hour number
	hour, err := p.number("number")
	if err != nil {
		return nil, err
	}
	switch {
	case p.match(token.COLON):
		return p.formalTime(hour)
	case p.match(token.DOT):
		return p.informalTime(hour)
	case p.check(token.AMPM):
		pm := p.tok.Literal == "pm"
		p.next()
		return twelveHour(hour, 0, pm)
	case p.check(token.EOF):
		return nil, core.EndOfInput("am/pm, ':' or '.'")
	default:
		return nil, core.UnexpectedToken("am/pm, ':' or '.'", p.tok.Span())
	}
}

// formalTime finishes hh:mm[:ss[.frac]] with an optional timezone suffix
// or am/pm, after the hour and colon were consumed.
func (p *DateParser) formalTime(hour int) (*core.TimeSpec, error) {
	minute, err := p.number("minutes")
	if err != nil {
		return nil, err
	}

	sec, micros := 0, 0
	if p.match(token.COLON) {
		sec, err = p.number("seconds")
		if err != nil {
			return nil, err
		}
		if p.match(token.DOT) {
			// subseconds; keep microsecond precision only
			fracTok := p.tok
			frac, err := p.number("fraction")
			if err != nil {
				return nil, err
			}
			micros = scaleMicros(frac, fracTok.Digits())
		}
	} else {
		switch p.tok.Type {
		case token.DASH, token.SLASH, token.DOT, token.COMMA, token.PLUS:
			// we don't expect any of these after parsing minutes
			return nil, core.UnexpectedToken("':'", p.tok.Span())
		}
	}

	ts := core.TimeSpec{Hour: hour, Minute: minute, Second: sec, Micros: micros}

	switch p.tok.Type {
	case token.EOF:
		return &ts, nil
	case token.PLUS, token.DASH:
		// +/- timezone offset, either HH:MM or HHMM
		sign := int64(1)
		if p.tok.Type == token.DASH {
			sign = -1
		}
		p.next()
		hh, err := p.number("timezone hours")
		if err != nil {
			return nil, err
		}
		var mm int
		if p.match(token.COLON) {
			mm, err = p.number("timezone minutes")
			if err != nil {
				return nil, err
			}
		} else {
			// hours and minutes in the single number, e.g. 0400
			mm = hh % 100
			hh /= 100
		}
		ts = ts.WithOffset(sign * int64(60*(mm+60*hh)))
		return &ts, nil
	case token.AMPM:
		pm := p.tok.Literal == "pm"
		p.next()
		out, err := twelveHour(hour, minute, pm)
		if err != nil {
			return nil, err
		}
		out.Second, out.Micros = sec, micros
		return out, nil
	case token.IDENT:
		if p.tok.Literal == "z" {
			// 0-offset timezone
			p.next()
			ts = ts.WithOffset(0)
			return &ts, nil
		}
		return nil, core.UnexpectedToken("expected Z/am/pm", p.tok.Span())
	default:
		return nil, core.UnexpectedToken("expected timezone", p.tok.Span())
	}
}

// informalTime finishes hh.mm with an optional am/pm, after the hour and
// dot were consumed. Without am/pm the hour reads as a 24-hour value.
func (p *DateParser) informalTime(hour int) (*core.TimeSpec, error) {
	minute, err := p.number("minutes")
	if err != nil {
		return nil, err
	}
	switch {
	case p.check(token.EOF):
		return &core.TimeSpec{Hour: hour, Minute: minute}, nil
	case p.check(token.AMPM):
		pm := p.tok.Literal == "pm"
		p.next()
		return twelveHour(hour, minute, pm)
	default:
		return nil, core.UnexpectedToken("expected am/pm", p.tok.Span())
	}
}

// twelveHour converts a 12-hour clock reading: 12am is midnight, 12pm noon.
func twelveHour(hour, minute int, pm bool) (*core.TimeSpec, error) {
	if hour < 1 || hour > 12 {
		return nil, core.OutOfRange("hour", hour)
	}
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return &core.TimeSpec{Hour: hour, Minute: minute}, nil
}

// scaleMicros converts a fraction literal to microseconds using its digit
// count, so "5" is half a second and "123456789" truncates.
func scaleMicros(frac, digits int) int {
	for ; digits < 6; digits++ {
		frac *= 10
	}
	for ; digits > 6; digits-- {
		frac /= 10
	}
	return frac
}
