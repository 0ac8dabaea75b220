package calendar

import (
	"fmt"
	"time"
)

// ISOLayout is the day-granularity layout used for every stored date.
const ISOLayout = "2006-01-02"

type fixedHoliday struct {
	month time.Month
	day   int
}

// Italian public holidays that fall on the same day every year.
// Moveable feasts (Easter Monday) are not included.
var fixedHolidays = []fixedHoliday{
	{time.January, 1},
	{time.January, 6},
	{time.April, 25},
	{time.May, 1},
	{time.June, 2},
	{time.August, 15},
	{time.November, 1},
	{time.December, 8},
	{time.December, 25},
	{time.December, 26},
}

// DaysInMonth returns every day of the month at local midnight, ascending.
func DaysInMonth(month time.Month, year int) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1).Day()

	days := make([]time.Time, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, time.Local))
	}
	return days
}

// IsHoliday reports whether date is a Sunday or a fixed public holiday.
// Only the local calendar fields of date are inspected.
func IsHoliday(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return true
	}
	for _, h := range fixedHolidays {
		if date.Month() == h.month && date.Day() == h.day {
			return true
		}
	}
	return false
}

// FormatDateISO renders date as YYYY-MM-DD from its local fields, never
// converting to UTC first.
func FormatDateISO(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}

// ParseDateISO parses YYYY-MM-DD into local midnight.
func ParseDateISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// MonthBounds returns the ISO first and last day of the month.
func MonthBounds(month time.Month, year int) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return FormatDateISO(first), FormatDateISO(first.AddDate(0, 1, -1))
}

// Calendar combines the fixed holiday rule with company closure days.
// The zero value behaves like IsHoliday.
type Calendar struct {
	closures map[string]struct{}
}

// New builds a Calendar with the given closure days (ISO strings).
func New(closures []string) Calendar {
	c := Calendar{closures: make(map[string]struct{}, len(closures))}
	for _, d := range closures {
		c.closures[d] = struct{}{}
	}
	return c
}

// IsHoliday reports whether no work is expected on date.
func (c Calendar) IsHoliday(date time.Time) bool {
	if IsHoliday(date) {
		return true
	}
	_, closed := c.closures[FormatDateISO(date)]
	return closed
}

// IsClosure reports whether date is a company closure day.
func (c Calendar) IsClosure(date time.Time) bool {
	_, closed := c.closures[FormatDateISO(date)]
	return closed
}

// Closures returns the number of closure days known to the calendar.
func (c Calendar) Closures() int {
	return len(c.closures)
}
