package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyshelf/backend/internal/models"
)

func TestLibraryService_GetLibrary(t *testing.T) {
	tests := []struct {
		name            string
		filter          models.LibraryFilter
		expectedCourses int
		expectedBooks   int
		coursesQueried  bool
		expectedError   string
	}{
		{
			name:            "everything by default",
			filter:          models.LibraryFilter{},
			expectedCourses: 2,
			expectedBooks:   1,
			coursesQueried:  true,
		},
		{
			name:            "courses only",
			filter:          models.LibraryFilter{Type: "course"},
			expectedCourses: 2,
			coursesQueried:  true,
		},
		{
			name:          "books only",
			filter:        models.LibraryFilter{Type: "book", Search: " go "},
			expectedBooks: 1,
		},
		{
			name:            "tags exclude books",
			filter:          models.LibraryFilter{Type: "all", TagIDs: []int{2, 2, 1}},
			expectedCourses: 2,
			coursesQueried:  true,
		},
		{
			name:          "unknown type",
			filter:        models.LibraryFilter{Type: "video"},
			expectedError: "invalid type",
		},
		{
			name:          "negative tag",
			filter:        models.LibraryFilter{TagIDs: []int{-1}},
			expectedError: "invalid tag id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courseRepo := &mockCourseRepository{courses: []models.Course{{ID: 1}, {ID: 2}}}
			bookRepo := &mockBookRepository{books: []models.Book{{ID: 9}}}
			service := NewLibraryService(courseRepo, bookRepo, &mockLessonRepository{}, &mockTagRepository{})

			result, err := service.GetLibrary(context.Background(), tt.filter)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.True(t, IsValidationError(err))
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, result.Courses)
			assert.NotNil(t, result.Books)
			assert.Len(t, result.Courses, tt.expectedCourses)
			assert.Len(t, result.Books, tt.expectedBooks)
			assert.Equal(t, tt.coursesQueried, courseRepo.getAllCalled)
			if tt.coursesQueried && len(tt.filter.TagIDs) > 0 {
				assert.Equal(t, []int{2, 1}, courseRepo.lastTagIDs)
			}
			if tt.expectedBooks > 0 {
				assert.Equal(t, models.BookFilter{Search: strings.TrimSpace(tt.filter.Search)}, bookRepo.lastFilter)
			}
		})
	}
}

func TestLibraryService_GetLibrary_Errors(t *testing.T) {
	t.Run("courses", func(t *testing.T) {
		service := NewLibraryService(&mockCourseRepository{err: errDatabase}, &mockBookRepository{}, &mockLessonRepository{}, &mockTagRepository{})
		_, err := service.GetLibrary(context.Background(), models.LibraryFilter{})
		assert.ErrorIs(t, err, errDatabase)
	})

	t.Run("books", func(t *testing.T) {
		service := NewLibraryService(&mockCourseRepository{}, &mockBookRepository{err: errDatabase}, &mockLessonRepository{}, &mockTagRepository{})
		_, err := service.GetLibrary(context.Background(), models.LibraryFilter{})
		assert.ErrorIs(t, err, errDatabase)
	})
}

func TestLibraryService_GetTopics(t *testing.T) {
	courseRepo := &mockCourseRepository{topics: []string{"Go", "SQL"}}
	bookRepo := &mockBookRepository{topics: []string{"Algorithms", "Go"}}
	service := NewLibraryService(courseRepo, bookRepo, &mockLessonRepository{}, &mockTagRepository{})

	topics, err := service.GetTopics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Algorithms", "Go", "SQL"}, topics)

	courseRepo.topics = nil
	bookRepo.topics = nil
	topics, err = service.GetTopics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)

	bookRepo.err = errDatabase
	_, err = service.GetTopics(context.Background())
	assert.ErrorIs(t, err, errDatabase)
}
