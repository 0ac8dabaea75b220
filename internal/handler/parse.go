package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseDate accepts DD.MM.YYYY, DD-MM-YYYY, DD/MM/YYYY, ISO dates, DD.MM
// (current year), "oggi" and "ieri".
func parseDate(dateStr string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	switch strings.ToLower(dateStr) {
	case "oggi", "":
		return today, nil
	case "ieri":
		return today.AddDate(0, 0, -1), nil
	}

	formats := []string{
		"02.01.2006",
		"02-01-2006",
		"02/01/2006",
		"2006-01-02",
		"02.01",
		"02/01",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			if !strings.Contains(format, "2006") {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato data non valido, usa GG.MM.AAAA o GG.MM")
}

// parsePeriod accepts MM.YYYY, MM/YYYY, YYYY-MM or MM (current year). An
// empty string is the current month.
func parsePeriod(s string, now time.Time) (time.Month, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.Month(), now.Year(), nil
	}

	for _, format := range []string{"01.2006", "1.2006", "01/2006", "1/2006", "2006-01"} {
		if t, err := time.Parse(format, s); err == nil {
			return t.Month(), t.Year(), nil
		}
	}
	if m, err := strconv.Atoi(s); err == nil && m >= 1 && m <= 12 {
		return time.Month(m), now.Year(), nil
	}

	return 0, 0, fmt.Errorf("periodo non valido, usa MM.AAAA")
}

// parseYear reads a four-digit year.
func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 {
		return 0, false
	}
	return y, true
}

// isPeriod reports whether s looks like a period rather than an employee
// reference.
func isPeriod(s string) bool {
	return strings.ContainsAny(s, "./-")
}
