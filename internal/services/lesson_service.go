package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studyshelf/backend/internal/models"
)

// LessonProgressRepository is the interface that wraps methods for LessonProgress table data access
type LessonProgressRepository interface {
	// Method Exists checks if a lesson is completed.
	Exists(ctx context.Context, lessonID int) (bool, error)
	// Method Create marks a lesson as completed.
	//
	// "completedAt" parameter is the completion time, in UTC.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, lessonID int, completedAt time.Time) error
	// Method Delete removes the completion of a lesson.
	//
	// If the lesson is not completed, the "progress record not found" error will be returned.
	Delete(ctx context.Context, lessonID int) error
	// Method GetRecent returns up to "limit" latest completions with lesson and course titles.
	GetRecent(ctx context.Context, limit int) ([]models.LessonCompletion, error)
	// Method GetBetween returns completions with from <= completed_at < to, oldest first.
	GetBetween(ctx context.Context, from, to time.Time) ([]models.LessonCompletion, error)
}

// DailyStreakRepository is the interface that wraps methods for DailyStreaks table data access
type DailyStreakRepository interface {
	// Method Increment adds one completed lesson to the given day, creating the day when needed.
	Increment(ctx context.Context, date models.Date) error
	// Method GetRecent returns up to "limit" latest day records, newest first.
	GetRecent(ctx context.Context, limit int) ([]models.DailyStreak, error)
	// Method GetByDate returns the number of lessons completed on a day, 0 when there is no record.
	GetByDate(ctx context.Context, date models.Date) (int, error)
}

// MonthlyProgressRepository is the interface that wraps methods for MonthlyProgress table data access
type MonthlyProgressRepository interface {
	// Method Add adds "delta" to the counters of a month, creating the month when needed.
	Add(ctx context.Context, year, month int, delta models.MonthlyProgressDelta) error
	// Method GetByYear returns the stored months of a year in month order.
	//
	// Months without activity are absent.
	GetByYear(ctx context.Context, year int) ([]models.MonthlyProgress, error)
}

type lessonService struct {
	lessonRepo   LessonRepository
	progressRepo LessonProgressRepository
	streakRepo   DailyStreakRepository
	monthlyRepo  MonthlyProgressRepository
	cache        DashboardCache
	now          func() time.Time
}

// NewLessonService creates a new lesson service
func NewLessonService(
	lessonRepo LessonRepository,
	progressRepo LessonProgressRepository,
	streakRepo DailyStreakRepository,
	monthlyRepo MonthlyProgressRepository,
	cache DashboardCache,
) *lessonService {
	return &lessonService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		streakRepo:   streakRepo,
		monthlyRepo:  monthlyRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// GetLesson returns a lesson with its completion state
func (s *lessonService) GetLesson(ctx context.Context, id int) (*models.LessonWithProgress, error) {
	if id <= 0 {
		return nil, invalidf("invalid lesson id")
	}
	return s.lessonRepo.GetByID(ctx, id)
}

// UpdateLessonNotes replaces the notes of a lesson
func (s *lessonService) UpdateLessonNotes(ctx context.Context, id int, notes string) error {
	if id <= 0 {
		return invalidf("invalid lesson id")
	}
	return s.lessonRepo.UpdateNotes(ctx, id, notes)
}

// ToggleCompletion flips the completion state of a lesson.
//
// Completing a lesson bumps today's streak day and this month's counters.
// Un-completing only removes the completion; counters are never decremented.
func (s *lessonService) ToggleCompletion(ctx context.Context, id int) (*models.ToggleCompletionResponse, error) {
	if id <= 0 {
		return nil, invalidf("invalid lesson id")
	}

	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lesson.Completed {
		if err := s.progressRepo.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to remove completion: %w", err)
		}
		s.cache.Invalidate(ctx)
		return &models.ToggleCompletionResponse{LessonID: id, Completed: false}, nil
	}

	before, err := s.lessonRepo.GetCourseProgressByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course progress: %w", err)
	}

	now := s.now().UTC()
	if err := s.progressRepo.Create(ctx, id, now); err != nil {
		return nil, fmt.Errorf("failed to save completion: %w", err)
	}

	if err := s.streakRepo.Increment(ctx, models.NewDate(now)); err != nil {
		return nil, fmt.Errorf("failed to update daily streak: %w", err)
	}

	delta := models.MonthlyProgressDelta{LessonsCompleted: 1}
	if before.CompletedLessons == 0 {
		delta.CoursesStarted = 1
	}
	if before.TotalLessons > 0 && before.CompletedLessons+1 == before.TotalLessons {
		delta.CoursesCompleted = 1
	}
	if err := s.monthlyRepo.Add(ctx, now.Year(), int(now.Month()), delta); err != nil {
		return nil, fmt.Errorf("failed to update monthly progress: %w", err)
	}

	s.cache.Invalidate(ctx)
	return &models.ToggleCompletionResponse{LessonID: id, Completed: true}, nil
}
