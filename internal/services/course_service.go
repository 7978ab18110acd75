package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for Courses table data access
type CourseRepository interface {
	// Method GetAll retrieves courses newest first.
	//
	// "search" parameter matches title or topic, case-insensitive.
	// "tagIDs" parameter keeps only courses having any of the tags; empty means no tag filter.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, search string, tagIDs []int) ([]models.Course, error)
	// Method GetByID retrieves a course by its ID.
	//
	// If the course does not exist, the "course not found" error will be returned.
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// Method CreateWithContent inserts a course, its lessons and its tag links in one transaction.
	//
	// IDs are set on course and lessons.
	//
	// If some error will occur, nothing is written and the error will be returned.
	CreateWithContent(ctx context.Context, course *models.Course, lessons []models.Lesson, tagIDs []int) error
	// Method ReplaceWithContent updates a course and replaces its lessons and tag links in one transaction.
	//
	// If the course does not exist, the "course not found" error will be returned.
	ReplaceWithContent(ctx context.Context, course *models.Course, lessons []models.Lesson, tagIDs []int) error
	// Method UpdateNotes replaces the personal notes of a course.
	UpdateNotes(ctx context.Context, id int, notes string) error
	// Method Delete deletes a course; lessons, progress and tag links go with it.
	Delete(ctx context.Context, id int) error
	// Method Count returns the number of courses.
	Count(ctx context.Context) (int, error)
	// Method GetTopics returns distinct non-empty course topics in alphabetical order.
	GetTopics(ctx context.Context) ([]string, error)
}

// LessonRepository is the interface that wraps methods for Lessons table data access
type LessonRepository interface {
	// Method GetByCourseID retrieves the lessons of a course ordered by position, with completion state.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetByCourseID(ctx context.Context, courseID int) ([]models.LessonWithProgress, error)
	// Method GetByID retrieves a lesson with its completion state.
	//
	// If the lesson does not exist, the "lesson not found" error will be returned.
	GetByID(ctx context.Context, id int) (*models.LessonWithProgress, error)
	// Method UpdateNotes replaces the notes of a lesson.
	UpdateNotes(ctx context.Context, id int, notes string) error
	// Method CountAll returns the total number of lessons and the number of completed ones.
	CountAll(ctx context.Context) (total int, completed int, err error)
	// Method GetCourseProgress returns lesson totals keyed by course ID.
	//
	// Courses without lessons are absent from the map.
	GetCourseProgress(ctx context.Context) (map[int]models.CourseProgress, error)
	// Method GetCourseProgressByID returns lesson totals of one course.
	GetCourseProgressByID(ctx context.Context, courseID int) (models.CourseProgress, error)
}

type courseService struct {
	courseRepo CourseRepository
	lessonRepo LessonRepository
	tagRepo    TagRepository
	bookRepo   BookRepository
	storage    FileStorage
	cache      DashboardCache
	logger     *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	tagRepo TagRepository,
	bookRepo BookRepository,
	storage FileStorage,
	cache DashboardCache,
	logger *zap.Logger,
) *courseService {
	return &courseService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		tagRepo:    tagRepo,
		bookRepo:   bookRepo,
		storage:    storage,
		cache:      cache,
		logger:     logger,
	}
}

// ListCourses returns courses matching search with their tags and progress
func (s *courseService) ListCourses(ctx context.Context, search string) ([]models.CourseListItem, error) {
	courses, err := s.courseRepo.GetAll(ctx, strings.TrimSpace(search), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	return buildCourseListItems(ctx, courses, s.lessonRepo, s.tagRepo)
}

// GetCourse returns a course with its tags, ordered lessons and progress
func (s *courseService) GetCourse(ctx context.Context, id int) (*models.CourseDetail, error) {
	if id <= 0 {
		return nil, invalidf("invalid course id")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	tags, err := s.tagRepo.GetByCourseIDs(ctx, []int{id})
	if err != nil {
		return nil, fmt.Errorf("failed to get course tags: %w", err)
	}

	completed := 0
	for _, lesson := range lessons {
		if lesson.Completed {
			completed++
		}
	}

	return &models.CourseDetail{
		Course:   *course,
		Tags:     tagsOrEmpty(tags[id]),
		Lessons:  lessons,
		Progress: models.NewCourseProgress(len(lessons), completed),
	}, nil
}

// CreateCourse validates the request and stores the course with its lessons and tags.
// Returns the new course ID.
func (s *courseService) CreateCourse(ctx context.Context, req *models.CourseRequest) (int, error) {
	course, lessons, tagIDs, err := s.prepareCourse(ctx, req)
	if err != nil {
		return 0, err
	}

	if err := s.courseRepo.CreateWithContent(ctx, course, lessons, tagIDs); err != nil {
		return 0, fmt.Errorf("failed to create course: %w", err)
	}

	s.cache.Invalidate(ctx)
	return course.ID, nil
}

// UpdateCourse validates the request and replaces the course, its lessons and its tags.
// Completion of replaced lessons is dropped.
func (s *courseService) UpdateCourse(ctx context.Context, id int, req *models.CourseRequest) error {
	if id <= 0 {
		return invalidf("invalid course id")
	}

	course, lessons, tagIDs, err := s.prepareCourse(ctx, req)
	if err != nil {
		return err
	}
	course.ID = id

	if err := s.courseRepo.ReplaceWithContent(ctx, course, lessons, tagIDs); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	return nil
}

// UpdateCourseNotes replaces the notes of a course
func (s *courseService) UpdateCourseNotes(ctx context.Context, id int, notes string) error {
	if id <= 0 {
		return invalidf("invalid course id")
	}
	return s.courseRepo.UpdateNotes(ctx, id, notes)
}

// DeleteCourse deletes a course and then, best effort, its cover and lesson media
func (s *courseService) DeleteCourse(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid course id")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get lessons: %w", err)
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	deleteBlobByURL(ctx, s.storage, s.logger, course.CoverImageURL)
	for _, lesson := range lessons {
		if lesson.ContentType == models.LessonContentVideo || lesson.ContentType == models.LessonContentImage {
			deleteBlobByURL(ctx, s.storage, s.logger, lesson.ContentURL)
		}
	}

	s.cache.Invalidate(ctx)
	return nil
}

// prepareCourse validates req and converts it into the rows to write
func (s *courseService) prepareCourse(ctx context.Context, req *models.CourseRequest) (*models.Course, []models.Lesson, []int, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, nil, nil, invalidf("title is required")
	}

	lessons := make([]models.Lesson, len(req.Lessons))
	for i, input := range req.Lessons {
		if !input.ContentType.IsValid() {
			return nil, nil, nil, invalidf("lesson %d: invalid content type %q", i+1, input.ContentType)
		}

		lessonTitle := strings.TrimSpace(input.Title)
		if lessonTitle == "" {
			lessonTitle = fmt.Sprintf("Lesson %d", i+1)
		}

		lesson := models.Lesson{
			Title:       lessonTitle,
			ContentType: input.ContentType,
			Notes:       input.Notes,
			OrderIndex:  i,
		}

		switch input.ContentType {
		case models.LessonContentBook:
			if input.BookID == nil || *input.BookID <= 0 {
				return nil, nil, nil, invalidf("lesson %d: book_id is required for book lessons", i+1)
			}
			exists, err := s.bookRepo.ExistsByID(ctx, *input.BookID)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to check book: %w", err)
			}
			if !exists {
				return nil, nil, nil, invalidf("lesson %d: book %d does not exist", i+1, *input.BookID)
			}
			bookID := *input.BookID
			lesson.BookID = &bookID
		case models.LessonContentVideo, models.LessonContentImage:
			lesson.ContentURL = strings.TrimSpace(input.ContentURL)
		}

		lessons[i] = lesson
	}

	for _, id := range req.TagIDs {
		if id <= 0 {
			return nil, nil, nil, invalidf("invalid tag id %d", id)
		}
	}

	tagIDs := uniqueIDs(req.TagIDs)
	if len(tagIDs) > 0 {
		count, err := s.tagRepo.CountByIDs(ctx, tagIDs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to check tags: %w", err)
		}
		if count != len(tagIDs) {
			return nil, nil, nil, invalidf("one or more tags do not exist")
		}
	}

	course := &models.Course{
		Title:         title,
		Category:      strings.TrimSpace(req.Category),
		Topic:         strings.TrimSpace(req.Topic),
		Description:   req.Description,
		Notes:         req.Notes,
		CoverImageURL: strings.TrimSpace(req.CoverImageURL),
	}

	return course, lessons, tagIDs, nil
}

// buildCourseListItems attaches tags and progress to courses, keeping their order
func buildCourseListItems(ctx context.Context, courses []models.Course, lessonRepo LessonRepository, tagRepo TagRepository) ([]models.CourseListItem, error) {
	items := make([]models.CourseListItem, 0, len(courses))
	if len(courses) == 0 {
		return items, nil
	}

	progress, err := lessonRepo.GetCourseProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get course progress: %w", err)
	}

	courseIDs := make([]int, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	tags, err := tagRepo.GetByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get course tags: %w", err)
	}

	for _, course := range courses {
		items = append(items, models.CourseListItem{
			Course:   course,
			Tags:     tagsOrEmpty(tags[course.ID]),
			Progress: progress[course.ID],
		})
	}

	return items, nil
}

func tagsOrEmpty(tags []models.Tag) []models.Tag {
	if tags == nil {
		return []models.Tag{}
	}
	return tags
}

// uniqueIDs drops repeated IDs, keeping the first occurrence order
func uniqueIDs(ids []int) []int {
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}
