package epoch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentsMatchStdlib(t *testing.T) {
	cal := UTC()

	for _, unix := range []int64{0, 86399, 86400, 1521630000, -1, -86401} {
		ref := time.Unix(unix, 0).UTC()
		year, month, day, hour, minute, sec := cal.Components(Seconds(unix))
		assert.Equal(t, ref.Year(), year, "unix %d", unix)
		assert.Equal(t, int(ref.Month()), month, "unix %d", unix)
		assert.Equal(t, ref.Day(), day, "unix %d", unix)
		assert.Equal(t, ref.Hour(), hour, "unix %d", unix)
		assert.Equal(t, ref.Minute(), minute, "unix %d", unix)
		assert.Equal(t, ref.Second(), sec, "unix %d", unix)
	}
}

func TestComponentsWithOffset(t *testing.T) {
	cal := New(7200)

	// 2018-03-21 09:00:00 UTC is 11:00 at +02:00
	year, month, day, hour, _, _ := cal.Components(Seconds(1521622800))
	assert.Equal(t, 2018, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 21, day)
	assert.Equal(t, 11, hour)
}

func TestFromComponentsRoundTrip(t *testing.T) {
	cal := New(7200)

	got, err := cal.FromComponents(2018, 3, 21, 11, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Seconds(1521622800), got)

	_, err = cal.FromComponents(2018, 2, 30, 0, 0, 0)
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	cal := UTC()

	// epoch day zero was a Thursday
	assert.Equal(t, 3, cal.Weekday(Seconds(0)))
	// 2018-03-21 was a Wednesday
	assert.Equal(t, 2, cal.Weekday(Seconds(1521622800)))
}

func TestAddDays(t *testing.T) {
	cal := UTC()

	assert.Equal(t, Seconds(86400*3), cal.AddDays(Seconds(0), 3))
	assert.Equal(t, Seconds(-86400), cal.AddDays(Seconds(0), -1))
}

func TestAddMonthsClampsDay(t *testing.T) {
	cal := UTC()

	jan30, err := cal.FromComponents(2018, 1, 30, 10, 0, 0)
	require.NoError(t, err)

	got := cal.AddMonths(jan30, 1)
	year, month, day, hour, _, _ := cal.Components(got)
	assert.Equal(t, [4]int{2018, 2, 28, 10}, [4]int{year, month, day, hour})
}

func TestAddMonthsKeepsOffset(t *testing.T) {
	// the shifted instant must read back through Components at the same
	// fixed offset it was built with
	cal := New(7200)

	start, err := cal.FromComponents(2018, 3, 21, 23, 30, 15)
	require.NoError(t, err)

	got := cal.AddMonths(start, 11)
	year, month, day, hour, minute, sec := cal.Components(got)
	assert.Equal(t, [6]int{2019, 2, 21, 23, 30, 15}, [6]int{year, month, day, hour, minute, sec})

	want, err := cal.FromComponents(2019, 2, 21, 23, 30, 15)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
