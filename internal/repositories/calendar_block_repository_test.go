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

var blockRowColumns = []string{"id", "date", "start_time", "end_time", "title", "description", "created_at"}

// setupCalendarBlockTestRepository creates a calendar block repository with a mock database
func setupCalendarBlockTestRepository(t *testing.T) (*calendarBlockRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCalendarBlockRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewCalendarBlockRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCalendarBlockRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestTrimSeconds(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"09:30:00", "09:30"},
		{"23:59:59", "23:59"},
		{"09:30", "09:30"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, trimSeconds(tt.in))
		})
	}
}

func TestCalendarBlockRepository_GetBetween(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(blockRowColumns).
					AddRow(1, "2024-05-01", "09:00:00", "10:30:00", "Go", "", now).
					AddRow(2, "2024-05-03", "18:00:00", "19:00:00", "SQL", "joins", now)
				mock.ExpectQuery(`FROM calendar_blocks WHERE date BETWEEN \? AND \? ORDER BY date, start_time, id`).
					WithArgs("2024-05-01", "2024-05-31").
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM calendar_blocks`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(blockRowColumns).
					AddRow(1, "not-a-date", "09:00:00", "10:00:00", "Go", "", now)
				mock.ExpectQuery(`FROM calendar_blocks`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCalendarBlockTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetBetween(context.Background(), mustDate(t, "2024-05-01"), mustDate(t, "2024-05-31"))

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.Len(t, result, tt.expectedCount)
				assert.Equal(t, "09:00", result[0].StartTime)
				assert.Equal(t, "10:30", result[0].EndTime)
				assert.Equal(t, "2024-05-01", result[0].Date.String())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCalendarBlockRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := setupCalendarBlockTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`FROM calendar_blocks WHERE id = \? LIMIT 1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(blockRowColumns).AddRow(1, "2024-05-01", "09:00:00", "10:00:00", "Go", "", time.Now()))
	mock.ExpectQuery(`FROM calendar_blocks WHERE id = \? LIMIT 1`).
		WithArgs(2).
		WillReturnError(sql.ErrNoRows)

	block, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "09:00", block.StartTime)

	block, err = repo.GetByID(context.Background(), 2)
	assert.EqualError(t, err, "calendar block not found")
	assert.Nil(t, block)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarBlockRepository_CreateBatch(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name:  "success",
			count: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO calendar_blocks \(date, start_time, end_time, title, description\)`).
					WithArgs("2024-05-01", "09:00", "10:00", "Go", "").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec(`INSERT INTO calendar_blocks`).
					WithArgs("2024-05-02", "09:00", "10:00", "Go", "").
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:          "empty batch",
			count:         0,
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedError: true,
		},
		{
			name:  "insert error rolls back",
			count: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO calendar_blocks`).
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec(`INSERT INTO calendar_blocks`).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCalendarBlockTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			start := mustDate(t, "2024-05-01")
			blocks := make([]*models.CalendarBlock, tt.count)
			for i := range blocks {
				blocks[i] = &models.CalendarBlock{Date: start.AddDays(i), StartTime: "09:00", EndTime: "10:00", Title: "Go"}
			}

			err := repo.CreateBatch(context.Background(), blocks)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, blocks[0].ID)
				assert.Equal(t, 12, blocks[1].ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCalendarBlockRepository_UpdateAndDelete(t *testing.T) {
	repo, mock, cleanup := setupCalendarBlockTestRepository(t)
	defer cleanup()

	block := &models.CalendarBlock{
		ID:        4,
		Date:      mustDate(t, "2024-05-10"),
		StartTime: "07:00",
		EndTime:   "08:00",
		Title:     "Morning review",
	}

	mock.ExpectExec(`UPDATE calendar_blocks SET date = \?, start_time = \?, end_time = \?, title = \?, description = \? WHERE id = \?`).
		WithArgs("2024-05-10", "07:00", "08:00", "Morning review", "", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE calendar_blocks`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM calendar_blocks WHERE id = \?`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), block))
	assert.EqualError(t, repo.Update(context.Background(), block), "calendar block not found")
	assert.NoError(t, repo.Delete(context.Background(), 4))

	assert.NoError(t, mock.ExpectationsWereMet())
}
