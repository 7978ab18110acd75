package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyshelf/backend/internal/models"
)

type tagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *sql.DB) *tagRepository {
	return &tagRepository{
		db: db,
	}
}

// GetAll retrieves all tags ordered by name
func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	query := `
		SELECT id, name, color, created_at
		FROM tags
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tags, nil
}

// GetByID retrieves a tag by its ID
func (r *tagRepository) GetByID(ctx context.Context, id int) (*models.Tag, error) {
	query := `
		SELECT id, name, color, created_at
		FROM tags
		WHERE id = ?
		LIMIT 1
	`

	var tag models.Tag
	err := r.db.QueryRowContext(ctx, query, id).Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return &tag, nil
}

// Create inserts a new tag and sets its ID.
// A duplicate name yields "tag already exists".
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	query := `INSERT INTO tags (name, color) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, tag.Name, tag.Color)
	if isDuplicateEntry(err) {
		return fmt.Errorf("tag already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	tag.ID = int(id)
	return nil
}

// Update replaces name and color of a tag
func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	query := `UPDATE tags SET name = ?, color = ? WHERE id = ?`

	err := execAffectingOne(ctx, r.db, "tag", "update tag", query, tag.Name, tag.Color, tag.ID)
	if isDuplicateEntry(err) {
		return fmt.Errorf("tag already exists")
	}
	return err
}

// Delete deletes a tag by ID; course links go with it
func (r *tagRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tags WHERE id = ?`
	return execAffectingOne(ctx, r.db, "tag", "delete tag", query, id)
}

// CountByIDs returns how many of the given tag IDs exist
func (r *tagRepository) CountByIDs(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM tags WHERE id IN (%s)`, placeholders(len(ids)))

	var count int
	if err := r.db.QueryRowContext(ctx, query, intArgs(ids)...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}

	return count, nil
}

// GetByCourseIDs retrieves tags of several courses keyed by course ID.
// Courses without tags are absent from the map.
func (r *tagRepository) GetByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]models.Tag, error) {
	result := make(map[int][]models.Tag)
	if len(courseIDs) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		SELECT ct.course_id, t.id, t.name, t.color, t.created_at
		FROM course_tags ct
		INNER JOIN tags t ON t.id = ct.tag_id
		WHERE ct.course_id IN (%s)
		ORDER BY t.name
	`, placeholders(len(courseIDs)))

	rows, err := r.db.QueryContext(ctx, query, intArgs(courseIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query course tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int
		var tag models.Tag
		if err := rows.Scan(&courseID, &tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course tag: %w", err)
		}
		result[courseID] = append(result[courseID], tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
