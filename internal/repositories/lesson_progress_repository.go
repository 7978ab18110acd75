package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyshelf/backend/internal/models"
)

type lessonProgressRepository struct {
	db *sql.DB
}

// NewLessonProgressRepository creates a new lesson progress repository
func NewLessonProgressRepository(db *sql.DB) *lessonProgressRepository {
	return &lessonProgressRepository{
		db: db,
	}
}

// Exists checks whether a lesson is completed
func (r *lessonProgressRepository) Exists(ctx context.Context, lessonID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lesson_progress WHERE lesson_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, lessonID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check progress existence: %w", err)
	}

	return exists, nil
}

// Create marks a lesson as completed at completedAt
func (r *lessonProgressRepository) Create(ctx context.Context, lessonID int, completedAt time.Time) error {
	query := `INSERT INTO lesson_progress (lesson_id, completed_at) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, lessonID, completedAt); err != nil {
		return fmt.Errorf("failed to create progress record: %w", err)
	}

	return nil
}

// Delete removes the completion of a lesson
func (r *lessonProgressRepository) Delete(ctx context.Context, lessonID int) error {
	query := `DELETE FROM lesson_progress WHERE lesson_id = ?`
	return execAffectingOne(ctx, r.db, "progress record", "delete progress record", query, lessonID)
}

const lessonCompletionQuery = `
	SELECT l.id, l.title, c.id, c.title, lp.completed_at
	FROM lesson_progress lp
	INNER JOIN lessons l ON l.id = lp.lesson_id
	INNER JOIN courses c ON c.id = l.course_id
`

// GetRecent returns the latest completions, newest first
func (r *lessonProgressRepository) GetRecent(ctx context.Context, limit int) ([]models.LessonCompletion, error) {
	query := lessonCompletionQuery + `
		ORDER BY lp.completed_at DESC, lp.id DESC
		LIMIT ?
	`
	return r.queryCompletions(ctx, query, limit)
}

// GetBetween returns completions with from <= completed_at < to, oldest first
func (r *lessonProgressRepository) GetBetween(ctx context.Context, from, to time.Time) ([]models.LessonCompletion, error) {
	query := lessonCompletionQuery + `
		WHERE lp.completed_at >= ? AND lp.completed_at < ?
		ORDER BY lp.completed_at, lp.id
	`
	return r.queryCompletions(ctx, query, from, to)
}

func (r *lessonProgressRepository) queryCompletions(ctx context.Context, query string, args ...any) ([]models.LessonCompletion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	completions := []models.LessonCompletion{}
	for rows.Next() {
		var c models.LessonCompletion
		if err := rows.Scan(&c.LessonID, &c.LessonTitle, &c.CourseID, &c.CourseTitle, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return completions, nil
}
