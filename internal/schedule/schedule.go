// Package schedule expands a recurring calendar block into concrete dates
package schedule

import (
	"fmt"
	"time"

	"github.com/studyshelf/backend/internal/models"
)

// Frequency selects which days of each week receive a block
type Frequency string

const (
	// Daily repeats every day
	Daily Frequency = "daily"
	// BusinessDays repeats Monday through Friday
	BusinessDays Frequency = "business_days"
	// Custom repeats on an explicit set of weekdays
	Custom Frequency = "custom"
)

// MaxWeeks caps how far ahead a recurrence may reach
const MaxWeeks = 52

// ParseFrequency validates a frequency name
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case Daily, BusinessDays, Custom:
		return f, nil
	default:
		return "", fmt.Errorf("invalid frequency %q: must be daily, business_days or custom", s)
	}
}

// GenerateDates scans weeks*7 days starting at start and returns the days
// matching freq, in ascending order.
// weekdays is only consulted for Custom; duplicates in it are ignored.
func GenerateDates(start models.Date, freq Frequency, weekdays []time.Weekday, weeks int) ([]models.Date, error) {
	if weeks < 1 {
		return nil, fmt.Errorf("weeks must be at least 1")
	}
	if weeks > MaxWeeks {
		return nil, fmt.Errorf("weeks must be at most %d", MaxWeeks)
	}

	var match func(time.Weekday) bool
	switch freq {
	case Daily:
		match = func(time.Weekday) bool { return true }
	case BusinessDays:
		match = func(d time.Weekday) bool { return d != time.Saturday && d != time.Sunday }
	case Custom:
		if len(weekdays) == 0 {
			return nil, fmt.Errorf("custom frequency requires at least one weekday")
		}
		var set [7]bool
		for _, d := range weekdays {
			if d < time.Sunday || d > time.Saturday {
				return nil, fmt.Errorf("invalid weekday %d: must be between 0 (Sunday) and 6 (Saturday)", d)
			}
			set[d] = true
		}
		match = func(d time.Weekday) bool { return set[d] }
	default:
		return nil, fmt.Errorf("invalid frequency %q", freq)
	}

	start = models.NewDate(start.Time)
	days := weeks * 7
	dates := make([]models.Date, 0, days)
	for offset := 0; offset < days; offset++ {
		day := start.AddDays(offset)
		if match(day.Weekday()) {
			dates = append(dates, day)
		}
	}

	return dates, nil
}

// Weekdays converts wire weekday numbers (Sunday = 0) into time.Weekday values
func Weekdays(values []int) []time.Weekday {
	weekdays := make([]time.Weekday, len(values))
	for i, v := range values {
		weekdays[i] = time.Weekday(v)
	}
	return weekdays
}
