package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/studyshelf/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lessonRowColumns = []string{"id", "course_id", "title", "content_type", "content_url", "book_id", "notes", "order_index", "created_at", "completed_at"}

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewLessonRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewLessonRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestLessonRepository_GetByCourseID(t *testing.T) {
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		validate      func(*testing.T, []models.LessonWithProgress)
	}{
		{
			name: "success with mixed completion",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(1, 5, "Intro", "video", "/media/lessons/videos/a.mp4", nil, "", 0, now, now).
					AddRow(2, 5, "Chapter 1", "book", "", 9, "", 1, now, nil)
				mock.ExpectQuery(`FROM lessons l LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id WHERE l.course_id = \? ORDER BY l.order_index, l.id`).
					WithArgs(5).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, lessons []models.LessonWithProgress) {
				require.Len(t, lessons, 2)
				assert.True(t, lessons[0].Completed)
				require.NotNil(t, lessons[0].CompletedAt)
				assert.True(t, lessons[0].CompletedAt.Equal(now))
				assert.Nil(t, lessons[0].BookID)
				assert.Equal(t, models.LessonContentVideo, lessons[0].ContentType)

				assert.False(t, lessons[1].Completed)
				assert.Nil(t, lessons[1].CompletedAt)
				require.NotNil(t, lessons[1].BookID)
				assert.Equal(t, 9, *lessons[1].BookID)
			},
		},
		{
			name: "empty course",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM lessons l`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows(lessonRowColumns))
			},
			validate: func(t *testing.T, lessons []models.LessonWithProgress) {
				assert.NotNil(t, lessons)
				assert.Len(t, lessons, 0)
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM lessons l`).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "rows iteration error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(1, 5, "Intro", "video", "", nil, "", 0, now, nil).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`FROM lessons l`).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByCourseID(context.Background(), 5)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				tt.validate(t, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`FROM lessons l LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id WHERE l.id = \? LIMIT 1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(lessonRowColumns).AddRow(1, 5, "Intro", "note", "", nil, "remember", 0, now, nil))
	mock.ExpectQuery(`WHERE l.id = \?`).
		WithArgs(2).
		WillReturnError(sql.ErrNoRows)

	lesson, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, lesson.CourseID)
	assert.Equal(t, "remember", lesson.Notes)
	assert.False(t, lesson.Completed)

	lesson, err = repo.GetByID(context.Background(), 2)
	assert.EqualError(t, err, "lesson not found")
	assert.Nil(t, lesson)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_UpdateNotes(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE lessons SET notes = \? WHERE id = \?`).
		WithArgs("key idea", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE lessons SET notes = \? WHERE id = \?`).
		WithArgs("key idea", 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateNotes(context.Background(), 1, "key idea"))
	assert.EqualError(t, repo.UpdateNotes(context.Background(), 2, "key idea"), "lesson not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_CountAll(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(l.id\), COUNT\(lp.id\) FROM lessons l LEFT JOIN lesson_progress lp`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(12, 5))
	mock.ExpectQuery(`SELECT COUNT\(l.id\), COUNT\(lp.id\)`).
		WillReturnError(errors.New("database error"))

	total, completed, err := repo.CountAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, 5, completed)

	_, _, err = repo.CountAll(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_GetCourseProgress(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"course_id", "total", "completed"}).
		AddRow(1, 3, 1).
		AddRow(2, 4, 4)
	mock.ExpectQuery(`SELECT l.course_id, COUNT\(l.id\), COUNT\(lp.id\) .+ GROUP BY l.course_id`).
		WillReturnRows(rows)

	progress, err := repo.GetCourseProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CourseProgress{TotalLessons: 3, CompletedLessons: 1, Percentage: 33}, progress[1])
	assert.Equal(t, models.CourseProgress{TotalLessons: 4, CompletedLessons: 4, Percentage: 100}, progress[2])
	_, ok := progress[3]
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_GetCourseProgressByID(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`WHERE l.course_id = \?`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(2, 1))
	mock.ExpectQuery(`WHERE l.course_id = \?`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(0, 0))

	progress, err := repo.GetCourseProgressByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 50, progress.Percentage)

	progress, err = repo.GetCourseProgressByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, progress.Percentage)
	assert.Equal(t, 0, progress.TotalLessons)

	assert.NoError(t, mock.ExpectationsWereMet())
}
