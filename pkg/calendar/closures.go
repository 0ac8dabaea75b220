package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ClosureFile is the JSON layout for company closure days:
//
//	{"year": 2025, "months": [{"month": 8, "days": "11,12,13*"}]}
type ClosureFile struct {
	Year   int             `json:"year"`
	Months []ClosureMonths `json:"months"`
}

type ClosureMonths struct {
	Month int    `json:"month"`
	Days  string `json:"days"`
}

// ClosureDay is one parsed closure day.
type ClosureDay struct {
	Date  string
	Year  int
	Month int
	Day   int
}

// ParseClosuresFile reads and parses a closure-day JSON file.
func ParseClosuresFile(filePath string) ([]ClosureDay, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read closures file: %w", err)
	}
	return ParseClosures(data)
}

// ParseClosures parses closure-day JSON. Day lists are comma separated;
// trailing "+" or "*" markers are ignored and a day listed twice is kept once.
func ParseClosures(data []byte) ([]ClosureDay, error) {
	var file ClosureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal closures: %w", err)
	}
	if file.Year < 1 {
		return nil, fmt.Errorf("closures: missing year")
	}

	days := []ClosureDay{}
	seen := make(map[string]bool)
	for _, m := range file.Months {
		if m.Month < 1 || m.Month > 12 {
			return nil, fmt.Errorf("closures: invalid month %d", m.Month)
		}
		for _, dayStr := range strings.Split(m.Days, ",") {
			dayStr = strings.TrimSpace(dayStr)
			dayStr = strings.TrimSuffix(dayStr, "+")
			dayStr = strings.TrimSuffix(dayStr, "*")
			if dayStr == "" {
				continue
			}

			day, err := strconv.Atoi(dayStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse day '%s' in month %d: %w", dayStr, m.Month, err)
			}

			date := time.Date(file.Year, time.Month(m.Month), day, 0, 0, 0, 0, time.Local)
			if date.Month() != time.Month(m.Month) {
				return nil, fmt.Errorf("closures: day %d out of range for month %d", day, m.Month)
			}

			iso := FormatDateISO(date)
			if seen[iso] {
				continue
			}
			seen[iso] = true

			days = append(days, ClosureDay{
				Date:  iso,
				Year:  file.Year,
				Month: m.Month,
				Day:   day,
			})
		}
	}
	return days, nil
}
