package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/studyshelf/backend/internal/models"
)

type calendarBlockRepository struct {
	db *sql.DB
}

// NewCalendarBlockRepository creates a new calendar block repository
func NewCalendarBlockRepository(db *sql.DB) *calendarBlockRepository {
	return &calendarBlockRepository{
		db: db,
	}
}

// trimSeconds turns MySQL TIME values ("09:30:00") into "09:30"
func trimSeconds(t string) string {
	if len(t) >= 8 && t[len(t)-3] == ':' {
		return t[:len(t)-3]
	}
	return t
}

func scanCalendarBlock(row interface{ Scan(...any) error }, block *models.CalendarBlock) error {
	err := row.Scan(
		&block.ID,
		&block.Date,
		&block.StartTime,
		&block.EndTime,
		&block.Title,
		&block.Description,
		&block.CreatedAt,
	)
	if err != nil {
		return err
	}

	block.StartTime = trimSeconds(block.StartTime)
	block.EndTime = trimSeconds(block.EndTime)
	return nil
}

// GetBetween returns blocks with from <= date <= to ordered by date and start time
func (r *calendarBlockRepository) GetBetween(ctx context.Context, from, to models.Date) ([]models.CalendarBlock, error) {
	query := `
		SELECT id, date, start_time, end_time, title, description, created_at
		FROM calendar_blocks
		WHERE date BETWEEN ? AND ?
		ORDER BY date, start_time, id
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar blocks: %w", err)
	}
	defer rows.Close()

	blocks := []models.CalendarBlock{}
	for rows.Next() {
		var block models.CalendarBlock
		if err := scanCalendarBlock(rows, &block); err != nil {
			return nil, fmt.Errorf("failed to scan calendar block: %w", err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return blocks, nil
}

// GetByID retrieves a block by its ID
func (r *calendarBlockRepository) GetByID(ctx context.Context, id int) (*models.CalendarBlock, error) {
	query := `
		SELECT id, date, start_time, end_time, title, description, created_at
		FROM calendar_blocks
		WHERE id = ?
		LIMIT 1
	`

	var block models.CalendarBlock
	err := scanCalendarBlock(r.db.QueryRowContext(ctx, query, id), &block)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("calendar block not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar block by id: %w", err)
	}

	return &block, nil
}

// CreateBatch inserts blocks in one transaction and sets their IDs
func (r *calendarBlockRepository) CreateBatch(ctx context.Context, blocks []*models.CalendarBlock) error {
	if len(blocks) == 0 {
		return fmt.Errorf("no calendar blocks to create")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO calendar_blocks (date, start_time, end_time, title, description)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, block := range blocks {
		result, err := tx.ExecContext(ctx, query,
			block.Date,
			block.StartTime,
			block.EndTime,
			block.Title,
			block.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to create calendar block: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		block.ID = int(id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Update replaces all editable fields of a block
func (r *calendarBlockRepository) Update(ctx context.Context, block *models.CalendarBlock) error {
	setParts := []string{"date = ?", "start_time = ?", "end_time = ?", "title = ?", "description = ?"}
	query := fmt.Sprintf(`UPDATE calendar_blocks SET %s WHERE id = ?`, strings.Join(setParts, ", "))

	return execAffectingOne(ctx, r.db, "calendar block", "update calendar block", query,
		block.Date,
		block.StartTime,
		block.EndTime,
		block.Title,
		block.Description,
		block.ID,
	)
}

// Delete deletes a block by ID
func (r *calendarBlockRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM calendar_blocks WHERE id = ?`
	return execAffectingOne(ctx, r.db, "calendar block", "delete calendar block", query, id)
}
