package models

import "time"

// DailyStreak counts lessons completed on one calendar day
type DailyStreak struct {
	Date             Date `json:"date"`
	LessonsCompleted int  `json:"lessons_completed"`
}

// MonthlyProgress aggregates activity of one calendar month
type MonthlyProgress struct {
	Year             int `json:"year"`
	Month            int `json:"month"`
	LessonsCompleted int `json:"lessons_completed"`
	CoursesStarted   int `json:"courses_started"`
	CoursesCompleted int `json:"courses_completed"`
}

// MonthlyProgressDelta is added to a month's counters
type MonthlyProgressDelta struct {
	LessonsCompleted int
	CoursesStarted   int
	CoursesCompleted int
}

// LessonCompletion is a completed lesson with its course, used for activity feeds
type LessonCompletion struct {
	LessonID    int       `json:"lesson_id"`
	LessonTitle string    `json:"lesson_title"`
	CourseID    int       `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	CompletedAt time.Time `json:"completed_at"`
}

// StreakResponse is the current streak and today's completions
type StreakResponse struct {
	Streak       int  `json:"streak"`
	TodayLessons int  `json:"today_lessons"`
	Today        Date `json:"today"`
}

// Dashboard summarizes study activity
type Dashboard struct {
	Streak           int                `json:"streak"`
	TodayLessons     int                `json:"today_lessons"`
	TotalCourses     int                `json:"total_courses"`
	TotalBooks       int                `json:"total_books"`
	TotalLessons     int                `json:"total_lessons"`
	CompletedLessons int                `json:"completed_lessons"`
	ActiveCourses    []CourseListItem   `json:"active_courses"`
	RecentActivity   []LessonCompletion `json:"recent_activity"`
}
