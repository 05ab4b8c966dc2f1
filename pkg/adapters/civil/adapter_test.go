package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayConversionRoundTrip(t *testing.T) {
	tests := []struct {
		y, m, d int
		days    int64
	}{
		{1970, 1, 1, 0},
		{1970, 1, 2, 1},
		{1969, 12, 31, -1},
		{2000, 3, 1, 11017},
		{2018, 3, 21, 17611},
		{1900, 1, 1, -25567},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.days, daysFromCivil(tt.y, tt.m, tt.d), "%04d-%02d-%02d", tt.y, tt.m, tt.d)
		y, m, d := civilFromDays(tt.days)
		assert.Equal(t, [3]int{tt.y, tt.m, tt.d}, [3]int{y, m, d})
	}
}

func TestWeekday(t *testing.T) {
	cal := New()

	// 2018-03-19 was a Monday
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, cal.Weekday(Date(2018, 3, 19+i)))
	}
	// 1970-01-01 was a Thursday
	assert.Equal(t, 3, cal.Weekday(Date(1970, 1, 1)))
}

func TestAddSecondsRollsOver(t *testing.T) {
	cal := New()

	got := cal.AddSeconds(Date(2018, 3, 21).At(23, 59, 30), 45)
	assert.Equal(t, Date(2018, 3, 22).At(0, 0, 15), got)

	got = cal.AddSeconds(Date(2018, 1, 1).At(0, 0, 10), -20)
	assert.Equal(t, Date(2017, 12, 31).At(23, 59, 50), got)
}

func TestAddDaysKeepsClock(t *testing.T) {
	cal := New()

	got := cal.AddDays(Date(2018, 2, 27).At(9, 30, 0), 3)
	assert.Equal(t, Date(2018, 3, 2).At(9, 30, 0), got)
}

func TestAddMonthsClampsDay(t *testing.T) {
	cal := New()

	assert.Equal(t, Date(2018, 2, 28), cal.AddMonths(Date(2018, 1, 30), 1))
	assert.Equal(t, Date(2020, 2, 29), cal.AddMonths(Date(2020, 1, 30), 1))
	assert.Equal(t, Date(2017, 12, 15), cal.AddMonths(Date(2018, 1, 15), -1))
	assert.Equal(t, Date(2019, 3, 21), cal.AddMonths(Date(2018, 3, 21), 12))
}

func TestFromComponentsValidatesDay(t *testing.T) {
	cal := New()

	_, err := cal.FromComponents(2018, 2, 29, 0, 0, 0)
	assert.Error(t, err)

	got, err := cal.FromComponents(2018, 2, 28, 18, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Date(2018, 2, 28).At(18, 0, 0), got)
}

func TestBeforeOrdering(t *testing.T) {
	a := Date(2018, 3, 21).At(10, 30, 0)
	b := Date(2018, 3, 21).At(11, 0, 0)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
