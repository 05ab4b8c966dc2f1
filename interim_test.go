package interim

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conradludgate/interim/pkg/adapters/civil"
	"github.com/conradludgate/interim/pkg/adapters/epoch"
	"github.com/conradludgate/interim/pkg/adapters/systime"
	"github.com/conradludgate/interim/pkg/core"
)

// All date cases resolve against Wednesday 2018-03-21 11:00:00 at +02:00.
var dateCases = []struct {
	input   string
	dialect Dialect
	want    string // RFC3339 in the base's zone
}{
	// absolute dates
	{"2018-04-01", DialectUK, "2018-04-01T00:00:00+02:00"},
	{"1 April 2017", DialectUK, "2017-04-01T00:00:00+02:00"},
	{"April 1, 2017", DialectUK, "2017-04-01T00:00:00+02:00"},
	{"20/04/18", DialectUK, "2018-04-20T00:00:00+02:00"},
	{"04/20/18", DialectUS, "2018-04-20T00:00:00+02:00"},
	{"01/02/41", DialectUK, "1941-02-01T00:00:00+02:00"},
	{"01/02/40", DialectUK, "2040-02-01T00:00:00+02:00"},
	{"2020", DialectUK, "2020-01-01T00:00:00+02:00"},

	// keywords
	{"now", DialectUK, "2018-03-21T11:00:00+02:00"},
	{"today", DialectUK, "2018-03-21T11:00:00+02:00"},
	{"yesterday", DialectUK, "2018-03-20T11:00:00+02:00"},
	{"tomorrow", DialectUK, "2018-03-22T11:00:00+02:00"},
	{"tomorrow 8am", DialectUK, "2018-03-22T08:00:00+02:00"},

	// named dates (base is a Wednesday)
	{"friday", DialectUK, "2018-03-23T00:00:00+02:00"},
	{"friday 10:30", DialectUK, "2018-03-23T10:30:00+02:00"},
	{"friday 8pm", DialectUK, "2018-03-23T20:00:00+02:00"},
	{"monday", DialectUK, "2018-03-26T00:00:00+02:00"},
	{"next friday", DialectUK, "2018-03-30T00:00:00+02:00"},
	{"next friday", DialectUS, "2018-03-23T00:00:00+02:00"},
	{"last friday", DialectUK, "2018-03-16T00:00:00+02:00"},
	{"June", DialectUK, "2018-06-01T00:00:00+02:00"},
	{"last june", DialectUK, "2017-06-01T00:00:00+02:00"},
	{"next june", DialectUK, "2018-06-01T00:00:00+02:00"},
	{"next february", DialectUK, "2019-02-01T00:00:00+02:00"},
	{"June 10", DialectUK, "2018-06-10T00:00:00+02:00"},
	{"12 June", DialectUK, "2018-06-12T00:00:00+02:00"},
	{"9/11", DialectUS, "2018-09-11T00:00:00+02:00"},
	{"9/11", DialectUK, "2018-11-09T00:00:00+02:00"},

	// relative adjustments
	{"2 days", DialectUK, "2018-03-23T11:00:00+02:00"},
	{"2 days ago", DialectUK, "2018-03-19T11:00:00+02:00"},
	{"-2 days", DialectUK, "2018-03-19T11:00:00+02:00"},
	{"3 weeks", DialectUK, "2018-04-11T11:00:00+02:00"},
	{"2 hours ago", DialectUK, "2018-03-21T09:00:00+02:00"},
	{"12 minutes", DialectUK, "2018-03-21T11:12:00+02:00"},
	{"6 months", DialectUK, "2018-09-21T00:00:00+02:00"},
	{"6 months ago", DialectUK, "2017-09-21T00:00:00+02:00"},
	{"7 years", DialectUK, "2025-03-21T00:00:00+02:00"},
	{"next year", DialectUK, "2019-03-21T00:00:00+02:00"},
	{"last year", DialectUK, "2017-03-21T00:00:00+02:00"},
	{"last week", DialectUK, "2018-03-14T11:00:00+02:00"},
	{"yesterday 6pm", DialectUK, "2018-03-20T18:00:00+02:00"},
	{"2 days ago 5pm", DialectUK, "2018-03-19T17:00:00+02:00"},
	{"1 day 2 hours", DialectUK, "2018-03-22T13:00:00+02:00"},
	{"1 day 2 hours ago", DialectUK, "2018-03-20T09:00:00+02:00"},

	// times
	{"16:30", DialectUK, "2018-03-21T16:30:00+02:00"},
	{"8.30", DialectUK, "2018-03-21T08:30:00+02:00"},
	{"7.30 pm", DialectUK, "2018-03-21T19:30:00+02:00"},
	{"12am", DialectUK, "2018-03-21T00:00:00+02:00"},
	{"12pm", DialectUK, "2018-03-21T12:00:00+02:00"},
	{"2018-04-01 12:34", DialectUK, "2018-04-01T12:34:00+02:00"},
	{"2018-04-01T12:34", DialectUK, "2018-04-01T12:34:00+02:00"},
	{"April 1 8:30pm", DialectUK, "2018-04-01T20:30:00+02:00"},

	// explicit timezones re-expressed in the base's zone
	{"2018-04-01 12:34Z", DialectUK, "2018-04-01T14:34:00+02:00"},
	{"2018-04-01 12:34:56+02:00", DialectUK, "2018-04-01T12:34:56+02:00"},
	{"2018-04-01 12:34:00-0500", DialectUK, "2018-04-01T19:34:00+02:00"},
}

func TestParseDateStringSystime(t *testing.T) {
	zone := time.FixedZone("+02:00", 7200)
	cal := systime.New(zone)
	base := time.Date(2018, time.March, 21, 11, 0, 0, 0, zone)

	for _, tt := range dateCases {
		t.Run(tt.input+"/"+tt.dialect.String(), func(t *testing.T) {
			got, err := ParseDateString[time.Time](cal, tt.input, base, tt.dialect)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(time.RFC3339))
		})
	}
}

func TestParseDateStringEpoch(t *testing.T) {
	cal := epoch.New(7200)
	base, err := cal.FromComponents(2018, 3, 21, 11, 0, 0)
	require.NoError(t, err)

	zone := time.FixedZone("+02:00", 7200)
	for _, tt := range dateCases {
		t.Run(tt.input+"/"+tt.dialect.String(), func(t *testing.T) {
			got, err := ParseDateString[epoch.Seconds](cal, tt.input, base, tt.dialect)
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Unix(got.Unix(), 0).In(zone).Format(time.RFC3339))
		})
	}
}

func TestParseDateStringCivil(t *testing.T) {
	// civil date-times have no zone; timezone suffixes shift the wall clock
	// to UTC
	cal := civil.New()
	base := civil.Date(2018, 3, 21).At(11, 0, 0)

	tests := []struct {
		input string
		want  civil.DateTime
	}{
		{"2018-04-01", civil.Date(2018, 4, 1)},
		{"friday 8pm", civil.Date(2018, 3, 23).At(20, 0, 0)},
		{"2 days ago", civil.Date(2018, 3, 19).At(11, 0, 0)},
		{"16:30", civil.Date(2018, 3, 21).At(16, 30, 0)},
		{"2018-04-01 12:34:00+02:00", civil.Date(2018, 4, 1).At(10, 34, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateString[civil.DateTime](cal, tt.input, base, DialectUK)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendsAgree(t *testing.T) {
	// every backend must observe the same wall-clock result for inputs
	// that don't involve a zone
	sysCal := systime.UTC()
	civCal := civil.New()
	epoCal := epoch.UTC()

	sysBase := time.Date(2018, time.March, 21, 11, 0, 0, 0, time.UTC)
	civBase := civil.Date(2018, 3, 21).At(11, 0, 0)
	epoBase, err := epoCal.FromComponents(2018, 3, 21, 11, 0, 0)
	require.NoError(t, err)

	for _, tt := range dateCases {
		if strings.ContainsAny(tt.input, "Z+") || strings.Contains(tt.input, "-0500") {
			continue
		}
		t.Run(tt.input+"/"+tt.dialect.String(), func(t *testing.T) {
			sysGot, err := ParseDateString[time.Time](sysCal, tt.input, sysBase, tt.dialect)
			require.NoError(t, err)
			civGot, err := ParseDateString[civil.DateTime](civCal, tt.input, civBase, tt.dialect)
			require.NoError(t, err)
			epoGot, err := ParseDateString[epoch.Seconds](epoCal, tt.input, epoBase, tt.dialect)
			require.NoError(t, err)

			var comps [3][6]int
			comps[0][0], comps[0][1], comps[0][2], comps[0][3], comps[0][4], comps[0][5] = sysCal.Components(sysGot)
			comps[1][0], comps[1][1], comps[1][2], comps[1][3], comps[1][4], comps[1][5] = civCal.Components(civGot)
			comps[2][0], comps[2][1], comps[2][2], comps[2][3], comps[2][4], comps[2][5] = epoCal.Components(epoGot)
			assert.Equal(t, comps[0], comps[1], "systime vs civil")
			assert.Equal(t, comps[0], comps[2], "systime vs epoch")
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  Interval
	}{
		{"2 days", core.Days(2)},
		{"2 days ago", core.Days(-2)},
		{"-2 days", core.Days(-2)},
		{"3 weeks", core.Days(21)},
		{"5 minutes", core.Seconds(300)},
		{"1 hour 30 minutes", core.Seconds(5400)},
		{"6 months", core.Months(6)},
		{"2 years", core.Months(24)},
		{"next year", core.Months(12)},
		{"last week", core.Days(-7)},
		{"tomorrow", core.Days(1)},
		{"yesterday", core.Days(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  core.ErrorKind
	}{
		{"2018-04-01", core.ErrUnexpectedAbsoluteDate},
		{"friday", core.ErrUnexpectedDate},
		{"next june", core.ErrUnexpectedDate},
		{"16:30", core.ErrUnexpectedTime},
		{"friday 8pm", core.ErrUnexpectedTime},
		{"1 day 2 hours", core.ErrMixedInterval},
		{"", core.ErrEmptyInput},
		{"bananas", core.ErrUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			require.Error(t, err)
			kind, ok := core.KindOf(err)
			require.True(t, ok, "error is not a DateError: %v", err)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestParseDateStringErrors(t *testing.T) {
	cal := civil.New()
	base := civil.Date(2018, 3, 21).At(11, 0, 0)

	tests := []struct {
		input string
		kind  core.ErrorKind
	}{
		{"2018-13-01", core.ErrOutOfRange},
		{"2018-02-30", core.ErrOutOfRange},
		{"25:00", core.ErrOutOfRange},
		{"", core.ErrEmptyInput},
		{"bananas", core.ErrUnexpectedToken},
		{"friday friday", core.ErrUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDateString[civil.DateTime](cal, tt.input, base, DialectUK)
			require.Error(t, err)
			kind, ok := core.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}
