package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/studyshelf/backend/internal/models"
)

const bookColumns = `id, title, topic, summary, notes, pdf_url, cover_image_url, page_count, created_at, updated_at`

type bookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *sql.DB) *bookRepository {
	return &bookRepository{
		db: db,
	}
}

func scanBook(row interface{ Scan(...any) error }, book *models.Book) error {
	return row.Scan(
		&book.ID,
		&book.Title,
		&book.Topic,
		&book.Summary,
		&book.Notes,
		&book.PDFURL,
		&book.CoverImageURL,
		&book.PageCount,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}

// GetAll retrieves books matching the filter, newest first
func (r *bookRepository) GetAll(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	var whereClauses []string
	var args []any

	if filter.Search != "" {
		whereClauses = append(whereClauses, "(LOWER(title) LIKE ? OR LOWER(topic) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Topic != "" {
		whereClauses = append(whereClauses, "topic = ?")
		args = append(args, filter.Topic)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY created_at DESC, id DESC
	`, bookColumns, whereClause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return books, nil
}

// GetByID retrieves a book by its ID
func (r *bookRepository) GetByID(ctx context.Context, id int) (*models.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE id = ?
		LIMIT 1
	`, bookColumns)

	var book models.Book
	err := scanBook(r.db.QueryRowContext(ctx, query, id), &book)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("book not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &book, nil
}

// ExistsByID checks whether a book exists
func (r *bookRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new book and sets its ID
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (title, topic, summary, notes, pdf_url, cover_image_url, page_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		book.Title,
		book.Topic,
		book.Summary,
		book.Notes,
		book.PDFURL,
		book.CoverImageURL,
		book.PageCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	book.ID = int(id)
	return nil
}

// Update applies a partial update to book metadata
func (r *bookRepository) Update(ctx context.Context, id int, req *models.UpdateBookRequest) error {
	var setParts []string
	var args []any

	if req.Title != nil {
		setParts = append(setParts, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Topic != nil {
		setParts = append(setParts, "topic = ?")
		args = append(args, *req.Topic)
	}
	if req.Summary != nil {
		setParts = append(setParts, "summary = ?")
		args = append(args, *req.Summary)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(`
		UPDATE books
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	return execAffectingOne(ctx, r.db, "book", "update book", query, args...)
}

// UpdateNotes replaces the notes of a book
func (r *bookRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	query := `UPDATE books SET notes = ? WHERE id = ?`
	return execAffectingOne(ctx, r.db, "book", "update book notes", query, notes, id)
}

// Delete deletes a book by ID
func (r *bookRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM books WHERE id = ?`
	return execAffectingOne(ctx, r.db, "book", "delete book", query, id)
}

// Count returns the number of books
func (r *bookRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// GetTopics returns the distinct non-empty book topics
func (r *bookRepository) GetTopics(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, r.db, `SELECT DISTINCT topic FROM books WHERE topic <> '' ORDER BY topic`)
}
