package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/storage"
)

var errDatabase = errors.New("database error")

// mockBookRepository is a mock implementation of BookRepository
type mockBookRepository struct {
	books      []models.Book
	book       *models.Book
	exists     bool
	count      int
	topics     []string
	err        error
	getErr     error
	createErr  error
	deleteErr  error
	nextID     int
	created    *models.Book
	updated    *models.UpdateBookRequest
	lastFilter models.BookFilter
	deletedID  int
	existsIDs  []int
}

func (m *mockBookRepository) GetAll(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.books, nil
}

func (m *mockBookRepository) GetByID(ctx context.Context, id int) (*models.Book, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.book == nil {
		return nil, fmt.Errorf("book not found")
	}
	return m.book, nil
}

func (m *mockBookRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	m.existsIDs = append(m.existsIDs, id)
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func (m *mockBookRepository) Create(ctx context.Context, book *models.Book) error {
	if m.createErr != nil {
		return m.createErr
	}
	book.ID = m.nextID
	m.created = book
	return nil
}

func (m *mockBookRepository) Update(ctx context.Context, id int, req *models.UpdateBookRequest) error {
	if m.err != nil {
		return m.err
	}
	m.updated = req
	return nil
}

func (m *mockBookRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	return m.err
}

func (m *mockBookRepository) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockBookRepository) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func (m *mockBookRepository) GetTopics(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses        []models.Course
	course         *models.Course
	count          int
	topics         []string
	err            error
	writeErr       error
	deleteErr      error
	nextID         int
	lastSearch     string
	lastTagIDs     []int
	getAllCalled   bool
	written        *models.Course
	writtenLessons []models.Lesson
	writtenTagIDs  []int
	replaced       bool
	deletedID      int
}

func (m *mockCourseRepository) GetAll(ctx context.Context, search string, tagIDs []int) ([]models.Course, error) {
	m.getAllCalled = true
	m.lastSearch = search
	m.lastTagIDs = tagIDs
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.course == nil {
		return nil, fmt.Errorf("course not found")
	}
	return m.course, nil
}

func (m *mockCourseRepository) CreateWithContent(ctx context.Context, course *models.Course, lessons []models.Lesson, tagIDs []int) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	course.ID = m.nextID
	m.written = course
	m.writtenLessons = lessons
	m.writtenTagIDs = tagIDs
	return nil
}

func (m *mockCourseRepository) ReplaceWithContent(ctx context.Context, course *models.Course, lessons []models.Lesson, tagIDs []int) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.replaced = true
	m.written = course
	m.writtenLessons = lessons
	m.writtenTagIDs = tagIDs
	return nil
}

func (m *mockCourseRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	return m.err
}

func (m *mockCourseRepository) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockCourseRepository) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func (m *mockCourseRepository) GetTopics(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lessons        []models.LessonWithProgress
	lesson         *models.LessonWithProgress
	progress       map[int]models.CourseProgress
	courseProgress models.CourseProgress
	total          int
	completed      int
	err            error
	progressErr    error
}

func (m *mockLessonRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.LessonWithProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id int) (*models.LessonWithProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.lesson == nil {
		return nil, fmt.Errorf("lesson not found")
	}
	return m.lesson, nil
}

func (m *mockLessonRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	return m.err
}

func (m *mockLessonRepository) CountAll(ctx context.Context) (int, int, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	return m.total, m.completed, nil
}

func (m *mockLessonRepository) GetCourseProgress(ctx context.Context) (map[int]models.CourseProgress, error) {
	if m.progressErr != nil {
		return nil, m.progressErr
	}
	if m.progress == nil {
		return map[int]models.CourseProgress{}, nil
	}
	return m.progress, nil
}

func (m *mockLessonRepository) GetCourseProgressByID(ctx context.Context, courseID int) (models.CourseProgress, error) {
	if m.progressErr != nil {
		return models.CourseProgress{}, m.progressErr
	}
	return m.courseProgress, nil
}

// mockTagRepository is a mock implementation of TagRepository
type mockTagRepository struct {
	tags      []models.Tag
	tag       *models.Tag
	count     int
	byCourse  map[int][]models.Tag
	err       error
	createErr error
	updateErr error
	nextID    int
	created   *models.Tag
	updated   *models.Tag
	countIDs  []int
}

func (m *mockTagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tags, nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, id int) (*models.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.tag == nil {
		return nil, fmt.Errorf("tag not found")
	}
	return m.tag, nil
}

func (m *mockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if m.createErr != nil {
		return m.createErr
	}
	tag.ID = m.nextID
	m.created = tag
	return nil
}

func (m *mockTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = tag
	return nil
}

func (m *mockTagRepository) Delete(ctx context.Context, id int) error {
	return m.err
}

func (m *mockTagRepository) CountByIDs(ctx context.Context, ids []int) (int, error) {
	m.countIDs = ids
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func (m *mockTagRepository) GetByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]models.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.byCourse == nil {
		return map[int][]models.Tag{}, nil
	}
	return m.byCourse, nil
}

// mockLessonProgressRepository is a mock implementation of LessonProgressRepository
type mockLessonProgressRepository struct {
	exists      bool
	recent      []models.LessonCompletion
	between     []models.LessonCompletion
	err         error
	createErr   error
	deleteErr   error
	created     []int
	createdAt   time.Time
	deleted     []int
	recentLimit int
	from, to    time.Time
}

func (m *mockLessonProgressRepository) Exists(ctx context.Context, lessonID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func (m *mockLessonProgressRepository) Create(ctx context.Context, lessonID int, completedAt time.Time) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, lessonID)
	m.createdAt = completedAt
	return nil
}

func (m *mockLessonProgressRepository) Delete(ctx context.Context, lessonID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, lessonID)
	return nil
}

func (m *mockLessonProgressRepository) GetRecent(ctx context.Context, limit int) ([]models.LessonCompletion, error) {
	m.recentLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.recent, nil
}

func (m *mockLessonProgressRepository) GetBetween(ctx context.Context, from, to time.Time) ([]models.LessonCompletion, error) {
	m.from, m.to = from, to
	if m.err != nil {
		return nil, m.err
	}
	return m.between, nil
}

// mockDailyStreakRepository is a mock implementation of DailyStreakRepository
type mockDailyStreakRepository struct {
	days         []models.DailyStreak
	today        int
	err          error
	incrementErr error
	incremented  []models.Date
	lastLimit    int
}

func (m *mockDailyStreakRepository) Increment(ctx context.Context, date models.Date) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}
	m.incremented = append(m.incremented, date)
	return nil
}

func (m *mockDailyStreakRepository) GetRecent(ctx context.Context, limit int) ([]models.DailyStreak, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.days, nil
}

func (m *mockDailyStreakRepository) GetByDate(ctx context.Context, date models.Date) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.today, nil
}

type monthlyAdd struct {
	year  int
	month int
	delta models.MonthlyProgressDelta
}

// mockMonthlyProgressRepository is a mock implementation of MonthlyProgressRepository
type mockMonthlyProgressRepository struct {
	months []models.MonthlyProgress
	err    error
	addErr error
	added  []monthlyAdd
}

func (m *mockMonthlyProgressRepository) Add(ctx context.Context, year, month int, delta models.MonthlyProgressDelta) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, monthlyAdd{year: year, month: month, delta: delta})
	return nil
}

func (m *mockMonthlyProgressRepository) GetByYear(ctx context.Context, year int) ([]models.MonthlyProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.months, nil
}

// mockCalendarBlockRepository is a mock implementation of CalendarBlockRepository
type mockCalendarBlockRepository struct {
	blocks    []models.CalendarBlock
	block     *models.CalendarBlock
	err       error
	createErr error
	updateErr error
	nextID    int
	created   []*models.CalendarBlock
	updated   *models.CalendarBlock
	deletedID int
	from, to  models.Date
}

func (m *mockCalendarBlockRepository) GetBetween(ctx context.Context, from, to models.Date) ([]models.CalendarBlock, error) {
	m.from, m.to = from, to
	if m.err != nil {
		return nil, m.err
	}
	return m.blocks, nil
}

func (m *mockCalendarBlockRepository) GetByID(ctx context.Context, id int) (*models.CalendarBlock, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.block == nil {
		return nil, fmt.Errorf("calendar block not found")
	}
	return m.block, nil
}

func (m *mockCalendarBlockRepository) CreateBatch(ctx context.Context, blocks []*models.CalendarBlock) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, block := range blocks {
		m.nextID++
		block.ID = m.nextID
	}
	m.created = blocks
	return nil
}

func (m *mockCalendarBlockRepository) Update(ctx context.Context, block *models.CalendarBlock) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = block
	return nil
}

func (m *mockCalendarBlockRepository) Delete(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

const mockMediaURL = "http://media.test/media/"

// mockStorage is a mock implementation of FileStorage
type mockStorage struct {
	objects     map[string][]byte
	failPutCall int
	putCalls    int
	deleteErr   error
	deleted     []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{objects: map[string][]byte{}}
}

func (m *mockStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	m.putCalls++
	if m.failPutCall == m.putCalls {
		return errors.New("storage error")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.objects[key]; !ok {
		return storage.ErrNotFound
	}
	delete(m.objects, key)
	return nil
}

func (m *mockStorage) URL(key string) string {
	return mockMediaURL + key
}

func (m *mockStorage) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, mockMediaURL)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// mockCache is a mock implementation of DashboardCache
type mockCache struct {
	dashboard   *models.Dashboard
	getCalls    int
	set         *models.Dashboard
	invalidated int
}

func (m *mockCache) Get(ctx context.Context) (*models.Dashboard, bool) {
	m.getCalls++
	if m.dashboard == nil {
		return nil, false
	}
	return m.dashboard, true
}

func (m *mockCache) Set(ctx context.Context, dashboard *models.Dashboard) {
	m.set = dashboard
}

func (m *mockCache) Invalidate(ctx context.Context) {
	m.invalidated++
}

// testFile is an in-memory multipart.File
type testFile struct {
	*bytes.Reader
}

func (testFile) Close() error { return nil }

func newUploadedFile(filename, contentType string, data []byte) UploadedFile {
	return UploadedFile{
		File:        testFile{bytes.NewReader(data)},
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
}

// samplePDF writes a minimal well-formed PDF with the given number of empty pages
func samplePDF(pages int) []byte {
	var buf bytes.Buffer
	offsets := []int{}

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		writeObj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOffset)

	return buf.Bytes()
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
