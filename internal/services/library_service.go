package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/studyshelf/backend/internal/models"
)

type libraryService struct {
	courseRepo CourseRepository
	bookRepo   BookRepository
	lessonRepo LessonRepository
	tagRepo    TagRepository
}

// NewLibraryService creates a new library service
func NewLibraryService(courseRepo CourseRepository, bookRepo BookRepository, lessonRepo LessonRepository, tagRepo TagRepository) *libraryService {
	return &libraryService{
		courseRepo: courseRepo,
		bookRepo:   bookRepo,
		lessonRepo: lessonRepo,
		tagRepo:    tagRepo,
	}
}

// GetLibrary returns courses and books matching filter.
// Books carry no tags, so any tag selection leaves the book list empty.
func (s *libraryService) GetLibrary(ctx context.Context, filter models.LibraryFilter) (*models.LibraryResponse, error) {
	libraryType := filter.Type
	if libraryType == "" {
		libraryType = models.LibraryTypeAll
	}
	switch libraryType {
	case models.LibraryTypeAll, models.LibraryTypeCourse, models.LibraryTypeBook:
	default:
		return nil, invalidf("invalid type %q: must be all, course or book", filter.Type)
	}

	for _, id := range filter.TagIDs {
		if id <= 0 {
			return nil, invalidf("invalid tag id %d", id)
		}
	}

	search := strings.TrimSpace(filter.Search)
	tagIDs := uniqueIDs(filter.TagIDs)

	response := &models.LibraryResponse{
		Courses: []models.CourseListItem{},
		Books:   []models.Book{},
	}

	if libraryType != models.LibraryTypeBook {
		courses, err := s.courseRepo.GetAll(ctx, search, tagIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get courses: %w", err)
		}
		items, err := buildCourseListItems(ctx, courses, s.lessonRepo, s.tagRepo)
		if err != nil {
			return nil, err
		}
		response.Courses = items
	}

	if libraryType != models.LibraryTypeCourse && len(tagIDs) == 0 {
		books, err := s.bookRepo.GetAll(ctx, models.BookFilter{Search: search})
		if err != nil {
			return nil, fmt.Errorf("failed to get books: %w", err)
		}
		response.Books = books
	}

	return response, nil
}

// GetTopics returns the distinct non-empty topics of courses and books, sorted
func (s *libraryService) GetTopics(ctx context.Context) ([]string, error) {
	courseTopics, err := s.courseRepo.GetTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get course topics: %w", err)
	}

	bookTopics, err := s.bookRepo.GetTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get book topics: %w", err)
	}

	topics := make([]string, 0, len(courseTopics)+len(bookTopics))
	topics = append(topics, courseTopics...)
	topics = append(topics, bookTopics...)
	slices.Sort(topics)
	return slices.Compact(topics), nil
}
