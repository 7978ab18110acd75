package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyshelf/backend/internal/models"
)

type dailyStreakRepository struct {
	db *sql.DB
}

// NewDailyStreakRepository creates a new daily streak repository
func NewDailyStreakRepository(db *sql.DB) *dailyStreakRepository {
	return &dailyStreakRepository{
		db: db,
	}
}

// Increment adds one completed lesson to the given day, creating the day if needed
func (r *dailyStreakRepository) Increment(ctx context.Context, date models.Date) error {
	query := `
		INSERT INTO daily_streaks (date, lessons_completed)
		VALUES (?, 1)
		ON DUPLICATE KEY UPDATE lessons_completed = lessons_completed + 1
	`

	if _, err := r.db.ExecContext(ctx, query, date); err != nil {
		return fmt.Errorf("failed to increment daily streak: %w", err)
	}

	return nil
}

// GetRecent returns up to limit latest day records, newest first
func (r *dailyStreakRepository) GetRecent(ctx context.Context, limit int) ([]models.DailyStreak, error) {
	query := `
		SELECT date, lessons_completed
		FROM daily_streaks
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily streaks: %w", err)
	}
	defer rows.Close()

	days := []models.DailyStreak{}
	for rows.Next() {
		var day models.DailyStreak
		if err := rows.Scan(&day.Date, &day.LessonsCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan daily streak: %w", err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return days, nil
}

// GetByDate returns the lessons completed on a day, 0 when the day has no record
func (r *dailyStreakRepository) GetByDate(ctx context.Context, date models.Date) (int, error) {
	query := `SELECT lessons_completed FROM daily_streaks WHERE date = ? LIMIT 1`

	var count int
	err := r.db.QueryRowContext(ctx, query, date).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get daily streak: %w", err)
	}

	return count, nil
}

type monthlyProgressRepository struct {
	db *sql.DB
}

// NewMonthlyProgressRepository creates a new monthly progress repository
func NewMonthlyProgressRepository(db *sql.DB) *monthlyProgressRepository {
	return &monthlyProgressRepository{
		db: db,
	}
}

// Add adds delta to the counters of a month, creating the month if needed
func (r *monthlyProgressRepository) Add(ctx context.Context, year, month int, delta models.MonthlyProgressDelta) error {
	query := `
		INSERT INTO monthly_progress (year, month, lessons_completed, courses_started, courses_completed)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			lessons_completed = lessons_completed + VALUES(lessons_completed),
			courses_started = courses_started + VALUES(courses_started),
			courses_completed = courses_completed + VALUES(courses_completed)
	`

	_, err := r.db.ExecContext(ctx, query,
		year,
		month,
		delta.LessonsCompleted,
		delta.CoursesStarted,
		delta.CoursesCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to add monthly progress: %w", err)
	}

	return nil
}

// GetByYear returns the stored months of a year in month order
func (r *monthlyProgressRepository) GetByYear(ctx context.Context, year int) ([]models.MonthlyProgress, error) {
	query := `
		SELECT year, month, lessons_completed, courses_started, courses_completed
		FROM monthly_progress
		WHERE year = ?
		ORDER BY month
	`

	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly progress: %w", err)
	}
	defer rows.Close()

	months := []models.MonthlyProgress{}
	for rows.Next() {
		var m models.MonthlyProgress
		if err := rows.Scan(&m.Year, &m.Month, &m.LessonsCompleted, &m.CoursesStarted, &m.CoursesCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan monthly progress: %w", err)
		}
		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return months, nil
}
