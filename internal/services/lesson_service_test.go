package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyshelf/backend/internal/models"
)

type lessonServiceMocks struct {
	lessons  *mockLessonRepository
	progress *mockLessonProgressRepository
	streaks  *mockDailyStreakRepository
	monthly  *mockMonthlyProgressRepository
	cache    *mockCache
}

func newTestLessonService(now time.Time, lesson *models.LessonWithProgress, before models.CourseProgress) (*lessonService, lessonServiceMocks) {
	mocks := lessonServiceMocks{
		lessons:  &mockLessonRepository{lesson: lesson, courseProgress: before},
		progress: &mockLessonProgressRepository{},
		streaks:  &mockDailyStreakRepository{},
		monthly:  &mockMonthlyProgressRepository{},
		cache:    &mockCache{},
	}
	service := NewLessonService(mocks.lessons, mocks.progress, mocks.streaks, mocks.monthly, mocks.cache)
	service.now = fixedClock(now)
	return service, mocks
}

func TestLessonService_ToggleCompletion_Complete(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	now := time.Date(2024, 1, 31, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name          string
		before        models.CourseProgress
		expectedDelta models.MonthlyProgressDelta
	}{
		{
			name:          "first lesson of a course",
			before:        models.NewCourseProgress(3, 0),
			expectedDelta: models.MonthlyProgressDelta{LessonsCompleted: 1, CoursesStarted: 1},
		},
		{
			name:          "middle lesson",
			before:        models.NewCourseProgress(3, 1),
			expectedDelta: models.MonthlyProgressDelta{LessonsCompleted: 1},
		},
		{
			name:          "last lesson",
			before:        models.NewCourseProgress(3, 2),
			expectedDelta: models.MonthlyProgressDelta{LessonsCompleted: 1, CoursesCompleted: 1},
		},
		{
			name:          "single lesson course",
			before:        models.NewCourseProgress(1, 0),
			expectedDelta: models.MonthlyProgressDelta{LessonsCompleted: 1, CoursesStarted: 1, CoursesCompleted: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := &models.LessonWithProgress{Lesson: models.Lesson{ID: 6, CourseID: 2}}
			service, mocks := newTestLessonService(now, lesson, tt.before)

			result, err := service.ToggleCompletion(context.Background(), 6)

			require.NoError(t, err)
			assert.Equal(t, &models.ToggleCompletionResponse{LessonID: 6, Completed: true}, result)
			assert.Equal(t, []int{6}, mocks.progress.created)
			assert.Equal(t, time.UTC, mocks.progress.createdAt.Location())
			require.Len(t, mocks.streaks.incremented, 1)
			assert.Equal(t, "2024-02-01", mocks.streaks.incremented[0].String())
			require.Len(t, mocks.monthly.added, 1)
			assert.Equal(t, monthlyAdd{year: 2024, month: 2, delta: tt.expectedDelta}, mocks.monthly.added[0])
			assert.Equal(t, 1, mocks.cache.invalidated)
		})
	}
}

func TestLessonService_ToggleCompletion_Uncomplete(t *testing.T) {
	completedAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	lesson := &models.LessonWithProgress{Lesson: models.Lesson{ID: 6, CourseID: 2}, Completed: true, CompletedAt: &completedAt}
	service, mocks := newTestLessonService(time.Now(), lesson, models.NewCourseProgress(3, 3))

	result, err := service.ToggleCompletion(context.Background(), 6)

	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Equal(t, []int{6}, mocks.progress.deleted)
	assert.Empty(t, mocks.progress.created)
	assert.Empty(t, mocks.streaks.incremented)
	assert.Empty(t, mocks.monthly.added)
	assert.Equal(t, 1, mocks.cache.invalidated)
}

func TestLessonService_ToggleCompletion_Errors(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		lesson        *models.LessonWithProgress
		setup         func(m lessonServiceMocks)
		expectedError string
	}{
		{
			name:          "invalid id",
			id:            0,
			expectedError: "invalid lesson id",
		},
		{
			name:          "lesson not found",
			id:            3,
			expectedError: "lesson not found",
		},
		{
			name:   "progress lookup",
			id:     3,
			lesson: &models.LessonWithProgress{Lesson: models.Lesson{ID: 3}},
			setup: func(m lessonServiceMocks) {
				m.lessons.progressErr = errDatabase
			},
			expectedError: "failed to get course progress",
		},
		{
			name:   "create completion",
			id:     3,
			lesson: &models.LessonWithProgress{Lesson: models.Lesson{ID: 3}},
			setup: func(m lessonServiceMocks) {
				m.progress.createErr = errDatabase
			},
			expectedError: "failed to save completion",
		},
		{
			name:   "streak update",
			id:     3,
			lesson: &models.LessonWithProgress{Lesson: models.Lesson{ID: 3}},
			setup: func(m lessonServiceMocks) {
				m.streaks.incrementErr = errDatabase
			},
			expectedError: "failed to update daily streak",
		},
		{
			name:   "monthly update",
			id:     3,
			lesson: &models.LessonWithProgress{Lesson: models.Lesson{ID: 3}},
			setup: func(m lessonServiceMocks) {
				m.monthly.addErr = errDatabase
			},
			expectedError: "failed to update monthly progress",
		},
		{
			name:   "remove completion",
			id:     3,
			lesson: &models.LessonWithProgress{Lesson: models.Lesson{ID: 3}, Completed: true},
			setup: func(m lessonServiceMocks) {
				m.progress.deleteErr = fmt.Errorf("progress record not found")
			},
			expectedError: "failed to remove completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := newTestLessonService(time.Now(), tt.lesson, models.CourseProgress{})
			if tt.setup != nil {
				tt.setup(mocks)
			}

			result, err := service.ToggleCompletion(context.Background(), tt.id)

			assert.ErrorContains(t, err, tt.expectedError)
			assert.Nil(t, result)
			assert.Zero(t, mocks.cache.invalidated)
		})
	}
}

func TestLessonService_GetLessonAndNotes(t *testing.T) {
	lesson := &models.LessonWithProgress{Lesson: models.Lesson{ID: 3, Title: "Pointers"}}
	service, mocks := newTestLessonService(time.Now(), lesson, models.CourseProgress{})

	got, err := service.GetLesson(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Pointers", got.Title)

	_, err = service.GetLesson(context.Background(), -3)
	assert.True(t, IsValidationError(err))

	assert.NoError(t, service.UpdateLessonNotes(context.Background(), 3, "notes"))
	assert.True(t, IsValidationError(service.UpdateLessonNotes(context.Background(), 0, "notes")))

	mocks.lessons.err = fmt.Errorf("lesson not found")
	assert.EqualError(t, service.UpdateLessonNotes(context.Background(), 3, "notes"), "lesson not found")
}
