package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/studyshelf/backend/internal/models"
)

const courseColumns = `c.id, c.title, c.category, c.topic, c.description, c.notes, c.cover_image_url, c.created_at, c.updated_at`

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

func scanCourse(row interface{ Scan(...any) error }, course *models.Course) error {
	return row.Scan(
		&course.ID,
		&course.Title,
		&course.Category,
		&course.Topic,
		&course.Description,
		&course.Notes,
		&course.CoverImageURL,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
}

// GetAll retrieves courses newest first.
// search matches title or topic case-insensitively; tagIDs keeps courses having any of the tags.
func (r *courseRepository) GetAll(ctx context.Context, search string, tagIDs []int) ([]models.Course, error) {
	var whereClauses []string
	var args []any

	if search != "" {
		whereClauses = append(whereClauses, "(LOWER(c.title) LIKE ? OR LOWER(c.topic) LIKE ?)")
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	if len(tagIDs) > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM course_tags ct WHERE ct.course_id = c.id AND ct.tag_id IN (%s))",
			placeholders(len(tagIDs)),
		))
		args = append(args, intArgs(tagIDs)...)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		%s
		ORDER BY c.created_at DESC, c.id DESC
	`, courseColumns, whereClause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		WHERE c.id = ?
		LIMIT 1
	`, courseColumns)

	var course models.Course
	err := scanCourse(r.db.QueryRowContext(ctx, query, id), &course)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return &course, nil
}

// CreateWithContent inserts a course with its lessons and tag links in one transaction.
// IDs are set on course and on every lesson.
func (r *courseRepository) CreateWithContent(ctx context.Context, course *models.Course, lessons []models.Lesson, tagIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO courses (title, category, topic, description, notes, cover_image_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		course.Title,
		course.Category,
		course.Topic,
		course.Description,
		course.Notes,
		course.CoverImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	course.ID = int(id)

	if err := insertCourseContent(ctx, tx, course.ID, lessons, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReplaceWithContent updates a course row and replaces its lessons and tag links in one transaction
func (r *courseRepository) ReplaceWithContent(ctx context.Context, course *models.Course, lessons []models.Lesson, tagIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE courses
		SET title = ?, category = ?, topic = ?, description = ?, notes = ?, cover_image_url = ?
		WHERE id = ?
	`
	err = execAffectingOne(ctx, tx, "course", "update course", query,
		course.Title,
		course.Category,
		course.Topic,
		course.Description,
		course.Notes,
		course.CoverImageURL,
		course.ID,
	)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM lessons WHERE course_id = ?`, course.ID); err != nil {
		return fmt.Errorf("failed to delete lessons: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM course_tags WHERE course_id = ?`, course.ID); err != nil {
		return fmt.Errorf("failed to delete course tags: %w", err)
	}

	if err := insertCourseContent(ctx, tx, course.ID, lessons, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// insertCourseContent inserts lessons one by one (their IDs are needed) and tag links in one batch
func insertCourseContent(ctx context.Context, tx *sql.Tx, courseID int, lessons []models.Lesson, tagIDs []int) error {
	lessonQuery := `
		INSERT INTO lessons (course_id, title, content_type, content_url, book_id, notes, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i := range lessons {
		lesson := &lessons[i]
		lesson.CourseID = courseID

		var bookID any
		if lesson.BookID != nil {
			bookID = *lesson.BookID
		}

		result, err := tx.ExecContext(ctx, lessonQuery,
			courseID,
			lesson.Title,
			lesson.ContentType,
			lesson.ContentURL,
			bookID,
			lesson.Notes,
			lesson.OrderIndex,
		)
		if err != nil {
			return fmt.Errorf("failed to create lesson: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		lesson.ID = int(id)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	values := make([]string, len(tagIDs))
	args := make([]any, 0, len(tagIDs)*2)
	for i, tagID := range tagIDs {
		values[i] = "(?, ?)"
		args = append(args, courseID, tagID)
	}

	tagQuery := fmt.Sprintf(`INSERT INTO course_tags (course_id, tag_id) VALUES %s`, strings.Join(values, ", "))
	if _, err := tx.ExecContext(ctx, tagQuery, args...); err != nil {
		return fmt.Errorf("failed to create course tags: %w", err)
	}

	return nil
}

// UpdateNotes replaces the notes of a course
func (r *courseRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	query := `UPDATE courses SET notes = ? WHERE id = ?`
	return execAffectingOne(ctx, r.db, "course", "update course notes", query, notes, id)
}

// Delete deletes a course; lessons, progress and tag links cascade
func (r *courseRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM courses WHERE id = ?`
	return execAffectingOne(ctx, r.db, "course", "delete course", query, id)
}

// Count returns the number of courses
func (r *courseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// GetTopics returns the distinct non-empty course topics
func (r *courseRepository) GetTopics(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, r.db, `SELECT DISTINCT topic FROM courses WHERE topic <> '' ORDER BY topic`)
}
