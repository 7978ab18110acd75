package models

// Library content types
const (
	LibraryTypeAll    = "all"
	LibraryTypeCourse = "course"
	LibraryTypeBook   = "book"
)

// LibraryFilter selects library content
type LibraryFilter struct {
	Type   string
	TagIDs []int
	Search string
}

// LibraryResponse holds the filtered courses and books
type LibraryResponse struct {
	Courses []CourseListItem `json:"courses"`
	Books   []Book           `json:"books"`
}
