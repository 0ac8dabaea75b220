// Package hours converts fractional hours to and from the "8,30" notation
// used on timesheets, where ",30" means half an hour.
package hours

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const epsilon = 0.01

// FormatDisplay renders h for a timesheet cell. Zero and NaN render as an
// empty string so blank days stay blank.
func FormatDisplay(h float64) string {
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return ""
	}

	sign := ""
	if h < 0 {
		sign = "-"
	}
	abs := math.Abs(h)
	whole := math.Floor(abs)
	frac := abs - whole

	switch {
	case math.Abs(frac-0.5) < epsilon:
		return fmt.Sprintf("%s%d,30", sign, int64(whole))
	case frac < epsilon:
		return fmt.Sprintf("%s%d", sign, int64(whole))
	}
	return strings.Replace(strconv.FormatFloat(h, 'f', 2, 64), ".", ",", 1)
}

// ParseInput reads a quick-entry value. "7,30" and "7.3" both mean seven
// and a half hours; anything unparsable yields 0.
func ParseInput(input string) float64 {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}

	sign := 1.0
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0
	}

	if whole, ok := strings.CutSuffix(s, ".30"); ok {
		return sign * halfHour(whole)
	}
	if whole, ok := strings.CutSuffix(s, ".3"); ok {
		return sign * halfHour(whole)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return sign * v
}

func halfHour(whole string) float64 {
	if whole == "" {
		return 0.5
	}
	n, err := strconv.Atoi(whole)
	if err != nil || n < 0 {
		return 0
	}
	return float64(n) + 0.5
}

// Equal compares two hour values within the display tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
