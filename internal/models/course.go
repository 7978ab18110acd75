package models

import "time"

// Course groups ordered lessons under a title
type Course struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Topic         string    `json:"topic"`
	Description   string    `json:"description"`
	Notes         string    `json:"notes"`
	CoverImageURL string    `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CourseProgress holds lesson completion numbers of a course
type CourseProgress struct {
	TotalLessons     int `json:"total_lessons"`
	CompletedLessons int `json:"completed_lessons"`
	Percentage       int `json:"percentage"`
}

// NewCourseProgress computes the rounded completion percentage
func NewCourseProgress(total, completed int) CourseProgress {
	progress := CourseProgress{TotalLessons: total, CompletedLessons: completed}
	if total > 0 {
		progress.Percentage = (completed*100 + total/2) / total
	}
	return progress
}

// IsActive reports whether the course is started but not finished
func (p CourseProgress) IsActive() bool {
	return p.Percentage > 0 && p.Percentage < 100
}

// CourseListItem is a course with its tags and progress, used in lists
type CourseListItem struct {
	Course
	Tags     []Tag          `json:"tags"`
	Progress CourseProgress `json:"progress"`
}

// CourseDetail is a course with tags, progress and ordered lessons
type CourseDetail struct {
	Course
	Tags     []Tag                `json:"tags"`
	Lessons  []LessonWithProgress `json:"lessons"`
	Progress CourseProgress       `json:"progress"`
}

// CourseRequest is the body for creating or replacing a course
type CourseRequest struct {
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	Topic         string        `json:"topic"`
	Description   string        `json:"description"`
	Notes         string        `json:"notes"`
	CoverImageURL string        `json:"cover_image_url"`
	TagIDs        []int         `json:"tag_ids"`
	Lessons       []LessonInput `json:"lessons"`
}
