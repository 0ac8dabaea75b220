package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.January, 2024, 31},
		{time.February, 2024, 29},
		{time.February, 2023, 28},
		{time.April, 2025, 30},
		{time.December, 2025, 31},
	}
	for _, tt := range tests {
		days := DaysInMonth(tt.month, tt.year)
		require.Len(t, days, tt.want, "%s %d", tt.month, tt.year)
		assert.Equal(t, 1, days[0].Day())
		assert.Equal(t, tt.want, days[len(days)-1].Day())
		for i := 1; i < len(days); i++ {
			assert.True(t, days[i].After(days[i-1]))
			assert.Equal(t, tt.month, days[i].Month())
		}
	}
}

func TestIsHoliday(t *testing.T) {
	assert.True(t, IsHoliday(date(2024, time.January, 1)))
	assert.False(t, IsHoliday(date(2024, time.January, 2)))
	assert.True(t, IsHoliday(date(2024, time.January, 7)), "sunday")
	assert.True(t, IsHoliday(date(2025, time.April, 25)))
	assert.True(t, IsHoliday(date(2031, time.December, 26)))
	assert.False(t, IsHoliday(date(2025, time.April, 21)), "easter monday is not a fixed holiday")

	for _, d := range DaysInMonth(time.March, 2025) {
		if d.Weekday() == time.Sunday {
			assert.True(t, IsHoliday(d), FormatDateISO(d))
		}
	}
}

func TestFormatAndParseISO(t *testing.T) {
	d := date(2025, time.March, 9)
	assert.Equal(t, "2025-03-09", FormatDateISO(d))

	late := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2025-03-01", FormatDateISO(late))

	parsed, err := ParseDateISO("2025-03-09")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))

	_, err = ParseDateISO("09/03/2025")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(time.February, 2024)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)
}

func TestCalendarClosures(t *testing.T) {
	var zero Calendar
	assert.False(t, zero.IsHoliday(date(2025, time.August, 12)))
	assert.True(t, zero.IsHoliday(date(2025, time.August, 15)))

	cal := New([]string{"2025-08-12"})
	assert.True(t, cal.IsHoliday(date(2025, time.August, 12)))
	assert.True(t, cal.IsClosure(date(2025, time.August, 12)))
	assert.False(t, cal.IsClosure(date(2025, time.August, 15)))
	assert.Equal(t, 1, cal.Closures())
}

func TestParseClosures(t *testing.T) {
	data := []byte(`{"year":2025,"months":[{"month":8,"days":"11,12+, 13*"},{"month":12,"days":"24"}]}`)
	days, err := ParseClosures(data)
	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, "2025-08-11", days[0].Date)
	assert.Equal(t, "2025-08-13", days[2].Date)
	assert.Equal(t, 12, days[3].Month)

	_, err = ParseClosures([]byte(`{"year":2025,"months":[{"month":2,"days":"30"}]}`))
	assert.Error(t, err)

	_, err = ParseClosures([]byte(`{"year":2025,"months":[{"month":2,"days":"x"}]}`))
	assert.Error(t, err)
}

func TestParseClosuresDropsDuplicateDays(t *testing.T) {
	days, err := ParseClosures([]byte(`{"year":2025,"months":[{"month":8,"days":"11,12,11"},{"month":8,"days":"12*"}]}`))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-08-11", days[0].Date)
	assert.Equal(t, "2025-08-12", days[1].Date)
}

func TestParseClosuresFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"year":2026,"months":[{"month":1,"days":"2"}]}`), 0o644))

	days, err := ParseClosuresFile(path)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-01-02", days[0].Date)

	_, err = ParseClosuresFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
