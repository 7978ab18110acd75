package models

import "time"

// Book is an uploaded PDF with its metadata and personal notes
type Book struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Summary       string    `json:"summary"`
	Notes         string    `json:"notes"`
	PDFURL        string    `json:"pdf_url"`
	CoverImageURL string    `json:"cover_image_url"`
	PageCount     int       `json:"page_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookFilter narrows the book list
type BookFilter struct {
	// Search matches title or topic, case-insensitive
	Search string
	// Topic matches the topic exactly
	Topic string
}

// UpdateBookRequest is a partial update of book metadata; nil fields are left untouched
type UpdateBookRequest struct {
	Title   *string `json:"title"`
	Topic   *string `json:"topic"`
	Summary *string `json:"summary"`
}

// UpdateNotesRequest replaces the notes of a book, course or lesson
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
