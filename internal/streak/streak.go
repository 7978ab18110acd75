// Package streak computes consecutive study days
package streak

import (
	"time"

	"github.com/studyshelf/backend/internal/models"
)

// LookbackDays is how many latest day records callers need to load
const LookbackDays = 365

// Compute returns the number of consecutive calendar days ending at today
// with at least one completed lesson. Records may come in any order;
// records after today are ignored and repeated dates are summed.
func Compute(days []models.DailyStreak, today time.Time) int {
	counts := make(map[string]int, len(days))
	for _, d := range days {
		counts[d.Date.String()] += d.LessonsCompleted
	}

	current := models.NewDate(today)
	streak := 0
	for counts[current.String()] > 0 {
		streak++
		current = current.AddDays(-1)
	}

	return streak
}
