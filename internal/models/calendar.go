package models

import "time"

// CalendarBlock is a scheduled study interval on a given date
type CalendarBlock struct {
	ID          int       `json:"id"`
	Date        Date      `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recurrence repeats a new block over several weeks
type Recurrence struct {
	// Frequency is one of daily, business_days or custom
	Frequency string `json:"frequency"`
	// Weekdays are used by the custom frequency, Sunday = 0
	Weekdays []int `json:"weekdays"`
	Weeks    int   `json:"weeks"`
}

// CalendarBlockRequest is the body for creating or updating blocks
type CalendarBlockRequest struct {
	Date        string      `json:"date"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
}

// CreateBlocksResponse lists the ids of created blocks
type CreateBlocksResponse struct {
	IDs   []int `json:"ids"`
	Count int   `json:"count"`
}

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date             Date               `json:"date"`
	Day              int                `json:"day"`
	IsToday          bool               `json:"is_today"`
	Blocks           []CalendarBlock    `json:"blocks"`
	CompletedLessons []LessonCompletion `json:"completed_lessons"`
}

// CalendarMonth is the month grid with blocks and completed lessons per day
type CalendarMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	// LeadingBlanks is the number of empty cells before the 1st, Sunday-first
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
	Streak        int           `json:"streak"`
}
