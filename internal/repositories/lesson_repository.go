package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyshelf/backend/internal/models"
)

const lessonWithProgressColumns = `
	l.id, l.course_id, l.title, l.content_type, l.content_url, l.book_id,
	l.notes, l.order_index, l.created_at, lp.completed_at
`

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

func scanLessonWithProgress(row interface{ Scan(...any) error }, lesson *models.LessonWithProgress) error {
	var bookID sql.NullInt64
	var completedAt sql.NullTime

	err := row.Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.ContentType,
		&lesson.ContentURL,
		&bookID,
		&lesson.Notes,
		&lesson.OrderIndex,
		&lesson.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return err
	}

	if bookID.Valid {
		id := int(bookID.Int64)
		lesson.BookID = &id
	}
	if completedAt.Valid {
		lesson.Completed = true
		lesson.CompletedAt = &completedAt.Time
	}

	return nil
}

// GetByCourseID retrieves the lessons of a course in order, with completion state
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.LessonWithProgress, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id
		WHERE l.course_id = ?
		ORDER BY l.order_index, l.id
	`, lessonWithProgressColumns)

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.LessonWithProgress{}
	for rows.Next() {
		var lesson models.LessonWithProgress
		if err := scanLessonWithProgress(rows, &lesson); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetByID retrieves a lesson with its completion state
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.LessonWithProgress, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id
		WHERE l.id = ?
		LIMIT 1
	`, lessonWithProgressColumns)

	var lesson models.LessonWithProgress
	err := scanLessonWithProgress(r.db.QueryRowContext(ctx, query, id), &lesson)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lesson not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return &lesson, nil
}

// UpdateNotes replaces the notes of a lesson
func (r *lessonRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	query := `UPDATE lessons SET notes = ? WHERE id = ?`
	return execAffectingOne(ctx, r.db, "lesson", "update lesson notes", query, notes, id)
}

// CountAll returns the total number of lessons and how many of them are completed
func (r *lessonRepository) CountAll(ctx context.Context) (total int, completed int, err error) {
	query := `
		SELECT COUNT(l.id), COUNT(lp.id)
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id
	`

	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("failed to count lessons: %w", err)
	}

	return total, completed, nil
}

// GetCourseProgress returns lesson totals per course.
// Courses without lessons are absent from the map.
func (r *lessonRepository) GetCourseProgress(ctx context.Context) (map[int]models.CourseProgress, error) {
	query := `
		SELECT l.course_id, COUNT(l.id), COUNT(lp.id)
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id
		GROUP BY l.course_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query course progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[int]models.CourseProgress)
	for rows.Next() {
		var courseID, total, completed int
		if err := rows.Scan(&courseID, &total, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan course progress: %w", err)
		}
		progress[courseID] = models.NewCourseProgress(total, completed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return progress, nil
}

// GetCourseProgressByID returns lesson totals of one course
func (r *lessonRepository) GetCourseProgressByID(ctx context.Context, courseID int) (models.CourseProgress, error) {
	query := `
		SELECT COUNT(l.id), COUNT(lp.id)
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id
		WHERE l.course_id = ?
	`

	var total, completed int
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&total, &completed); err != nil {
		return models.CourseProgress{}, fmt.Errorf("failed to get course progress: %w", err)
	}

	return models.NewCourseProgress(total, completed), nil
}
