package models

import "time"

// LessonContentType describes what a lesson shows
type LessonContentType string

const (
	// LessonContentVideo plays an uploaded video from ContentURL
	LessonContentVideo LessonContentType = "video"
	// LessonContentImage shows an uploaded image from ContentURL
	LessonContentImage LessonContentType = "image"
	// LessonContentNote is a short written note kept in Notes
	LessonContentNote LessonContentType = "note"
	// LessonContentText is a longer written lesson kept in Notes
	LessonContentText LessonContentType = "text"
	// LessonContentBook points at a book from the library through BookID
	LessonContentBook LessonContentType = "book"
)

// IsValid reports whether t is one of the known content types
func (t LessonContentType) IsValid() bool {
	switch t {
	case LessonContentVideo, LessonContentImage, LessonContentNote, LessonContentText, LessonContentBook:
		return true
	default:
		return false
	}
}

// Lesson is one unit of course content
type Lesson struct {
	ID          int               `json:"id"`
	CourseID    int               `json:"course_id"`
	Title       string            `json:"title"`
	ContentType LessonContentType `json:"content_type"`
	ContentURL  string            `json:"content_url"`
	BookID      *int              `json:"book_id,omitempty"`
	Notes       string            `json:"notes"`
	OrderIndex  int               `json:"order_index"`
	CreatedAt   time.Time         `json:"created_at"`
}

// LessonWithProgress is a lesson together with its completion state
type LessonWithProgress struct {
	Lesson
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// LessonInput describes a lesson inside a course create/update request
type LessonInput struct {
	Title       string            `json:"title"`
	ContentType LessonContentType `json:"content_type"`
	ContentURL  string            `json:"content_url"`
	BookID      *int              `json:"book_id"`
	Notes       string            `json:"notes"`
}

// ToggleCompletionResponse reports the completion state after a toggle
type ToggleCompletionResponse struct {
	LessonID  int  `json:"lesson_id"`
	Completed bool `json:"completed"`
}
