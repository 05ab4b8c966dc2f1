package systime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents(t *testing.T) {
	cal := UTC()
	instant := time.Date(2018, time.March, 21, 11, 0, 30, 0, time.UTC)

	year, month, day, hour, minute, sec := cal.Components(instant)
	assert.Equal(t, 2018, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 21, day)
	assert.Equal(t, 11, hour)
	assert.Equal(t, 0, minute)
	assert.Equal(t, 30, sec)
}

func TestWeekdayMondayBased(t *testing.T) {
	cal := UTC()

	// 2018-03-19 was a Monday
	monday := time.Date(2018, time.March, 19, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, cal.Weekday(monday.AddDate(0, 0, i)))
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	cal := UTC()

	tests := []struct {
		start string
		n     int64
		want  string
	}{
		{"2018-01-30", 1, "2018-02-28"},
		{"2020-01-30", 1, "2020-02-29"},
		{"2018-01-31", 3, "2018-04-30"},
		{"2018-03-21", 12, "2019-03-21"},
		{"2018-03-21", -2, "2018-01-21"},
		{"2018-01-15", -1, "2017-12-15"},
	}
	for _, tt := range tests {
		start, err := time.Parse("2006-01-02", tt.start)
		require.NoError(t, err)
		got := cal.AddMonths(start, tt.n)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "%s + %d months", tt.start, tt.n)
	}
}

func TestAddMonthsKeepsClock(t *testing.T) {
	cal := UTC()
	start := time.Date(2018, time.March, 21, 11, 30, 15, 0, time.UTC)

	got := cal.AddMonths(start, 1)
	assert.Equal(t, time.Date(2018, time.April, 21, 11, 30, 15, 0, time.UTC), got)
}

func TestFromComponentsRejectsMissingDays(t *testing.T) {
	cal := UTC()

	_, err := cal.FromComponents(2018, 2, 30, 0, 0, 0)
	assert.Error(t, err)

	got, err := cal.FromComponents(2020, 2, 29, 12, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.February, 29, 12, 0, 0, 0, time.UTC), got)
}

func TestZoneOffset(t *testing.T) {
	cal := New(time.FixedZone("+02:00", 7200))

	assert.Equal(t, int64(7200), cal.ZoneOffset(time.Now()))
	assert.Equal(t, int64(0), UTC().ZoneOffset(time.Now()))
}
