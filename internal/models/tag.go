package models

import "time"

// DefaultTagColor is used when a tag is created without a color
const DefaultTagColor = "#3B82F6"

// TagPalette lists the colors offered when creating a tag
var TagPalette = []string{
	"#3B82F6",
	"#8B5CF6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#EC4899",
	"#06B6D4",
	"#84CC16",
}

// Tag labels courses for library filtering
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// TagRequest is the body for creating or updating a tag
type TagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
