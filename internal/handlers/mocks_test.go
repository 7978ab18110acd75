package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/services"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type routeRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// newTestRouter mounts h under /api/v1 the same way main does
func newTestRouter(h routeRegistrar) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", h.RegisterRoutes)
	return r
}

func serve(t *testing.T, handler http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.ErrorLevel)
	return zap.New(core), logs
}

// mockBookService is a mock implementation of BookService
type mockBookService struct {
	books    []models.Book
	book     *models.Book
	err      error
	upload   services.BookUpload
	uploaded []byte
	patch    *models.UpdateBookRequest
	notes    string
}

func (m *mockBookService) ListBooks(ctx context.Context, search, topic string) ([]models.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.books, nil
}

func (m *mockBookService) GetBook(ctx context.Context, id int) (*models.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.book, nil
}

func (m *mockBookService) UploadBook(ctx context.Context, upload services.BookUpload) (*models.Book, error) {
	m.upload = upload
	if upload.PDF.File != nil {
		m.uploaded, _ = io.ReadAll(upload.PDF.File)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.book, nil
}

func (m *mockBookService) UpdateBook(ctx context.Context, id int, req *models.UpdateBookRequest) error {
	m.patch = req
	return m.err
}

func (m *mockBookService) UpdateBookNotes(ctx context.Context, id int, notes string) error {
	m.notes = notes
	return m.err
}

func (m *mockBookService) DeleteBook(ctx context.Context, id int) error {
	return m.err
}

// mockCourseService is a mock implementation of CourseService
type mockCourseService struct {
	courses    []models.CourseListItem
	course     *models.CourseDetail
	id         int
	err        error
	lastSearch string
	lastID     int
	req        *models.CourseRequest
}

func (m *mockCourseService) ListCourses(ctx context.Context, search string) ([]models.CourseListItem, error) {
	m.lastSearch = search
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseService) GetCourse(ctx context.Context, id int) (*models.CourseDetail, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.course, nil
}

func (m *mockCourseService) CreateCourse(ctx context.Context, req *models.CourseRequest) (int, error) {
	m.req = req
	if m.err != nil {
		return 0, m.err
	}
	return m.id, nil
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, id int, req *models.CourseRequest) error {
	m.lastID = id
	m.req = req
	return m.err
}

func (m *mockCourseService) UpdateCourseNotes(ctx context.Context, id int, notes string) error {
	m.lastID = id
	return m.err
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, id int) error {
	m.lastID = id
	return m.err
}

// mockLessonService is a mock implementation of LessonService
type mockLessonService struct {
	lesson *models.LessonWithProgress
	toggle *models.ToggleCompletionResponse
	err    error
	notes  string
}

func (m *mockLessonService) GetLesson(ctx context.Context, id int) (*models.LessonWithProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

func (m *mockLessonService) UpdateLessonNotes(ctx context.Context, id int, notes string) error {
	m.notes = notes
	return m.err
}

func (m *mockLessonService) ToggleCompletion(ctx context.Context, id int) (*models.ToggleCompletionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.toggle, nil
}

// mockUploadService is a mock implementation of UploadService
type mockUploadService struct {
	result       *models.UploadResult
	err          error
	kind         string
	file         services.UploadedFile
	deletedName  string
	uploadedData []byte
}

func (m *mockUploadService) Upload(ctx context.Context, kind string, file services.UploadedFile) (*models.UploadResult, error) {
	m.kind = kind
	m.file = file
	m.uploadedData, _ = io.ReadAll(file.File)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockUploadService) Delete(ctx context.Context, kind, filename string) error {
	m.kind = kind
	m.deletedName = filename
	return m.err
}

// mockTagService is a mock implementation of TagService
type mockTagService struct {
	tags []models.Tag
	tag  *models.Tag
	err  error
	req  *models.TagRequest
}

func (m *mockTagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tags, nil
}

func (m *mockTagService) CreateTag(ctx context.Context, req *models.TagRequest) (*models.Tag, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return m.tag, nil
}

func (m *mockTagService) UpdateTag(ctx context.Context, id int, req *models.TagRequest) (*models.Tag, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return m.tag, nil
}

func (m *mockTagService) DeleteTag(ctx context.Context, id int) error {
	return m.err
}

func (m *mockTagService) Palette() []string {
	return models.TagPalette
}

// mockLibraryService is a mock implementation of LibraryService
type mockLibraryService struct {
	library *models.LibraryResponse
	topics  []string
	err     error
	filter  models.LibraryFilter
}

func (m *mockLibraryService) GetLibrary(ctx context.Context, filter models.LibraryFilter) (*models.LibraryResponse, error) {
	m.filter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.library, nil
}

func (m *mockLibraryService) GetTopics(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

// mockCalendarService is a mock implementation of CalendarService
type mockCalendarService struct {
	month       *models.CalendarMonth
	blocks      []models.CalendarBlock
	created     *models.CreateBlocksResponse
	err         error
	year, mon   int
	from, to    string
	req         *models.CalendarBlockRequest
	lastBlockID int
}

func (m *mockCalendarService) GetMonth(ctx context.Context, year, month int) (*models.CalendarMonth, error) {
	m.year, m.mon = year, month
	if m.err != nil {
		return nil, m.err
	}
	return m.month, nil
}

func (m *mockCalendarService) GetBlocks(ctx context.Context, from, to string) ([]models.CalendarBlock, error) {
	m.from, m.to = from, to
	if m.err != nil {
		return nil, m.err
	}
	return m.blocks, nil
}

func (m *mockCalendarService) CreateBlocks(ctx context.Context, req *models.CalendarBlockRequest) (*models.CreateBlocksResponse, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return m.created, nil
}

func (m *mockCalendarService) UpdateBlock(ctx context.Context, id int, req *models.CalendarBlockRequest) error {
	m.lastBlockID = id
	m.req = req
	return m.err
}

func (m *mockCalendarService) DeleteBlock(ctx context.Context, id int) error {
	m.lastBlockID = id
	return m.err
}

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct {
	dashboard *models.Dashboard
	streak    *models.StreakResponse
	daily     []models.DailyStreak
	monthly   []models.MonthlyProgress
	err       error
	days      int
	year      int
}

func (m *mockProgressService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.dashboard, nil
}

func (m *mockProgressService) GetStreak(ctx context.Context) (*models.StreakResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.streak, nil
}

func (m *mockProgressService) GetDaily(ctx context.Context, days int) ([]models.DailyStreak, error) {
	m.days = days
	if m.err != nil {
		return nil, m.err
	}
	return m.daily, nil
}

func (m *mockProgressService) GetMonthly(ctx context.Context, year int) ([]models.MonthlyProgress, error) {
	m.year = year
	if m.err != nil {
		return nil, m.err
	}
	return m.monthly, nil
}
